package models

// Verdict is the structured result of an authenticity check.
type Verdict struct {
	IsAuthentic bool     `json:"isAuthentic"`
	Confidence  float64  `json:"confidence"`
	Analysis    string   `json:"analysis"`
	Flags       []string `json:"flags"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn of the assistant conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatContext is the transcript kept for one session.
type ChatContext struct {
	Messages []ChatMessage `json:"messages"`
}
