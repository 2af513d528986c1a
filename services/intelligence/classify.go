package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"akplaw/models"

	genai "github.com/google/generative-ai-go/genai"
)

func classificationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"practiceArea": {
				Type: genai.TypeString,
				Enum: models.PracticeAreas,
			},
			"urgency": {
				Type: genai.TypeString,
				Enum: []string{models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh},
			},
		},
		Required: []string{"practiceArea", "urgency"},
	}
}

// ClassifyInquiry labels a free-text inquiry with a practice area and urgency.
func (g *GeminiAIService) ClassifyInquiry(ctx context.Context, text string) (*models.InquiryClassification, error) {
	prompt := fmt.Sprintf(`You are the intake triage assistant of a law firm.
Classify the client inquiry below into one practice area from this list:
%s
and an urgency level (low, medium, high). Urgency is high when the inquiry
mentions deadlines, arrests, injunctions, or imminent hearings.

Inquiry:
"""
%s
"""`, strings.Join(models.PracticeAreas, ", "), text)

	model := g.jsonModel(classificationSchema())
	raw, err := generateJSON(ctx, model, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	var result models.InquiryClassification
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse classification response: %w", err)
	}
	if result.PracticeArea == "" || result.Urgency == "" {
		return nil, fmt.Errorf("classification response missing fields")
	}
	return &result, nil
}
