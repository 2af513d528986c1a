package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// GeminiAIService implements AIService against the Gemini API with
// JSON-constrained responses.
type GeminiAIService struct {
	client *genai.Client
}

// NewGeminiAIService creates the Gemini-backed AIService.
func NewGeminiAIService(apiKey string) (*GeminiAIService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAIService{client: client}, nil
}

// jsonModel returns a model configured for schema-constrained JSON output.
func (g *GeminiAIService) jsonModel(schema *genai.Schema) *genai.GenerativeModel {
	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema
	return model
}

// generateJSON runs the request and returns the raw JSON text of the first candidate.
func generateJSON(ctx context.Context, model *genai.GenerativeModel, parts ...genai.Part) (string, error) {
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return cleanJSONBlock(sb.String()), nil
}

// cleanJSONBlock strips markdown code fences a model sometimes wraps around JSON.
func cleanJSONBlock(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
