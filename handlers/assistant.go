package handlers

import (
	"net/http"

	"statutesync/middleware"
	"statutesync/services/assistant"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type AssistantHandler struct {
	Assistant assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Assistant: svc}
}

// sessionKey scopes transcripts to the signed-in email.
func sessionKey(c *gin.Context) string {
	if profile := middleware.CurrentProfile(c); profile != nil {
		return profile.Email
	}
	return ""
}

// ChatHandler handles POST /api/assistant/chat.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat message", err.Error())
		return
	}

	reply, err := h.Assistant.Chat(c.Request.Context(), sessionKey(c), req.Message)
	if err != nil {
		respondError(c, "Chat failed", err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *AssistantHandler) ChatTranscriptHandler(c *gin.Context) {
	msgs, err := h.Assistant.Transcript(c.Request.Context(), sessionKey(c))
	if err != nil {
		respondError(c, "Failed to load conversation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func (h *AssistantHandler) ClearChatHandler(c *gin.Context) {
	if err := h.Assistant.Clear(c.Request.Context(), sessionKey(c)); err != nil {
		respondError(c, "Failed to clear conversation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation cleared"})
}
