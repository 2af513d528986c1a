package ai

import (
	"context"

	"akplaw/models"
)

// AIService wraps the two generative calls the portal makes. Both are
// best-effort: callers treat any error as a nil result and continue.
type AIService interface {
	// ClassifyInquiry labels free text with a practice area and urgency.
	ClassifyInquiry(ctx context.Context, text string) (*models.InquiryClassification, error)
	// ExtractResume pulls structured fields out of an uploaded resume.
	ExtractResume(ctx context.Context, data []byte, mimeType string) (*models.ResumeExtraction, error)
}
