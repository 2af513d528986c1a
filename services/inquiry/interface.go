package inquiry

import (
	"context"

	inquiryRepo "akplaw/database/repository/inquiry"
	"akplaw/models"
	ai "akplaw/services/intelligence"
	"akplaw/services/mailer"
)

// SubmitRequest is a new inbound lead from the booking, RFP, or contact flow.
type SubmitRequest struct {
	Type    string                 `json:"type" binding:"required"`
	Name    string                 `json:"name" binding:"required"`
	Email   string                 `json:"email" binding:"required,email"`
	Phone   string                 `json:"phone"`
	Details map[string]interface{} `json:"details"`
}

// InquiryService manages inbound leads.
type InquiryService interface {
	// Submit stores exactly one inquiry and returns it with its generated
	// AKP-###### reference.
	Submit(ctx context.Context, req SubmitRequest) (*models.Inquiry, error)
	List(filter inquiryRepo.InquiryFilter) ([]models.Inquiry, error)
	Get(id string) (*models.Inquiry, error)
	GetByReference(ref string) (*models.Inquiry, error)
	UpdateStatus(id, status string) (*models.Inquiry, error)
	Delete(id string) error
}

// DefaultInquiryService is the production implementation.
type DefaultInquiryService struct {
	Repo       inquiryRepo.InquiryRepository
	AI         ai.AIService
	Mailer     mailer.Mailer
	AdminEmail string
}
