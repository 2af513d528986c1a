package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"akplaw/models"

	genai "github.com/google/generative-ai-go/genai"
)

func extractionSchema() *genai.Schema {
	educationItem := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"institution": {Type: genai.TypeString},
			"degree":      {Type: genai.TypeString},
			"field":       {Type: genai.TypeString},
			"startYear":   {Type: genai.TypeString},
			"endYear":     {Type: genai.TypeString},
		},
		Required: []string{"institution", "degree"},
	}
	experienceItem := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"company":     {Type: genai.TypeString},
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"startDate":   {Type: genai.TypeString},
			"endDate":     {Type: genai.TypeString},
		},
		Required: []string{"company", "title"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":       {Type: genai.TypeString},
			"email":      {Type: genai.TypeString},
			"phone":      {Type: genai.TypeString},
			"education":  {Type: genai.TypeArray, Items: educationItem},
			"experience": {Type: genai.TypeArray, Items: experienceItem},
		},
		Required: []string{"name"},
	}
}

const extractPrompt = `You are a recruitment assistant. Extract the candidate's
name, email, phone, education history, and work experience from the attached
resume. Copy values from the document; do not invent anything. Leave fields
you cannot find empty.`

// ExtractResume pulls structured applicant fields out of an uploaded resume.
func (g *GeminiAIService) ExtractResume(ctx context.Context, data []byte, mimeType string) (*models.ResumeExtraction, error) {
	model := g.jsonModel(extractionSchema())
	raw, err := generateJSON(ctx, model,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(extractPrompt),
	)
	if err != nil {
		return nil, err
	}

	var result models.ResumeExtraction
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	if result.Name == "" {
		return nil, fmt.Errorf("extraction response missing candidate name")
	}
	return &result, nil
}
