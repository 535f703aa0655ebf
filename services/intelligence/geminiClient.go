package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"statutesync/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const forensicPrompt = `Analyze this legal document or media for authenticity.
Identify potential deepfake artifacts (if video/audio) or fraudulent alterations (if document).
Check for:
1. Inconsistent fonts/styles.
2. Suspect signatures.
3. Logical fallacies in legal phrasing.
4. Metadata mismatches or compression artifacts.

Respond ONLY in JSON format following the schema.`

const advicePrompt = `You are a highly experienced legal assistant. Provide a helpful, clear, but cautious overview for the following query: %q.
Important: Always include a disclaimer that you are an AI and this is not professional legal advice.`

var verdictSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"isAuthentic": {Type: genai.TypeBoolean},
		"confidence":  {Type: genai.TypeNumber},
		"analysis":    {Type: genai.TypeString},
		"flags": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"isAuthentic", "confidence", "analysis", "flags"},
}

type GeminiClient struct {
	client *genai.Client
	verify *genai.GenerativeModel
	advice *genai.GenerativeModel
	logger *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, verifyModel, adviceModel string, logger *zap.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	verify := client.GenerativeModel(verifyModel)
	verify.ResponseMIMEType = "application/json"
	verify.ResponseSchema = verdictSchema

	return &GeminiClient{
		client: client,
		verify: verify,
		advice: client.GenerativeModel(adviceModel),
		logger: logger,
	}, nil
}

func (g *GeminiClient) Name() string { return "gemini" }

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func (g *GeminiClient) Verify(ctx context.Context, payload []byte, mimeType, instruction string) (*models.Verdict, error) {
	parts := []genai.Part{genai.Blob{MIMEType: mimeType, Data: payload}}
	if instruction != "" {
		parts = append(parts, genai.Text(instruction))
	}
	parts = append(parts, genai.Text(forensicPrompt))

	resp, err := g.verify.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini verify: %v", ErrUnavailable, err)
	}
	text := responseText(resp)
	verdict, err := parseVerdict(text)
	if err != nil {
		g.logger.Warn("Unparseable verification verdict", zap.String("text", text), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return verdict, nil
}

func (g *GeminiClient) Advise(ctx context.Context, query string) (string, error) {
	resp, err := g.advice.GenerateContent(ctx, genai.Text(fmt.Sprintf(advicePrompt, query)))
	if err != nil {
		return "", fmt.Errorf("%w: gemini advise: %v", ErrUnavailable, err)
	}
	return responseText(resp), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

// parseVerdict decodes the model's JSON answer. Missing fields are an error; confidence is clamped to 0..1.
func parseVerdict(text string) (*models.Verdict, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var raw struct {
		IsAuthentic *bool    `json:"isAuthentic"`
		Confidence  *float64 `json:"confidence"`
		Analysis    *string  `json:"analysis"`
		Flags       []string `json:"flags"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("decode verdict: %w", err)
	}
	if raw.IsAuthentic == nil || raw.Confidence == nil || raw.Analysis == nil {
		return nil, fmt.Errorf("verdict is missing required fields")
	}
	flags := raw.Flags
	if flags == nil {
		flags = []string{}
	}
	return &models.Verdict{
		IsAuthentic: *raw.IsAuthentic,
		Confidence:  clampConfidence(*raw.Confidence),
		Analysis:    *raw.Analysis,
		Flags:       flags,
	}, nil
}
