package inquiry

import (
	"context"
	"fmt"
	"time"

	inquiryRepo "akplaw/database/repository/inquiry"
	"akplaw/models"
	"akplaw/services/mailer"
	"akplaw/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const classifyTimeout = 8 * time.Second

// Submit validates the request, assigns a unique public reference, stores
// the inquiry, and triggers best-effort classification and emails. Exactly
// one record is written per call.
func (s *DefaultInquiryService) Submit(ctx context.Context, req SubmitRequest) (*models.Inquiry, error) {
	if err := validateSubmit(req); err != nil {
		return nil, err
	}

	ref, err := s.uniqueReference()
	if err != nil {
		return nil, err
	}

	inq := &models.Inquiry{
		ID:        uuid.New().String(),
		Reference: ref,
		Type:      req.Type,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Details:   req.Details,
		Status:    models.InquiryStatusNew,
	}
	inq.Classification = s.classify(ctx, inq)

	if err := s.Repo.Create(inq); err != nil {
		return nil, fmt.Errorf("failed to store inquiry: %w", err)
	}

	if s.Mailer != nil {
		s.Mailer.Enqueue(mailer.InquiryAcknowledgementEmail(inq))
		if s.AdminEmail != "" {
			s.Mailer.Enqueue(mailer.AdminInquiryAlertEmail(inq, s.AdminEmail))
		}
	}
	return inq, nil
}

func validateSubmit(req SubmitRequest) error {
	if !models.ValidInquiryType(req.Type) {
		return fmt.Errorf("invalid inquiry type %q", req.Type)
	}
	if req.Name == "" || req.Email == "" {
		return fmt.Errorf("name and email are required")
	}
	switch req.Type {
	case models.InquiryTypeAppointment:
		if req.Details["preferredDate"] == nil {
			return fmt.Errorf("appointment requests require a preferred date")
		}
	case models.InquiryTypeRFP:
		if req.Details["scope"] == nil {
			return fmt.Errorf("RFP submissions require a scope of work")
		}
	}
	return nil
}

// uniqueReference generates an AKP-###### reference not yet held by any
// inquiry. Collisions over a 6-digit space are rare but checked anyway.
func (s *DefaultInquiryService) uniqueReference() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref := utils.NewInquiryReference()
		existing, err := s.Repo.GetByReference(ref)
		if err != nil {
			return "", fmt.Errorf("failed to check reference uniqueness: %w", err)
		}
		if existing == nil {
			return ref, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique inquiry reference")
}

// classify runs the AI triage call. Any failure degrades to nil; the inquiry
// is simply stored unclassified.
func (s *DefaultInquiryService) classify(ctx context.Context, inq *models.Inquiry) *models.InquiryClassification {
	if s.AI == nil {
		return nil
	}

	text := fmt.Sprintf("%v", inq.Details["message"])
	if text == "" || text == "<nil>" {
		text = fmt.Sprintf("%v", inq.Details)
	}

	cctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()
	result, err := s.AI.ClassifyInquiry(cctx, text)
	if err != nil {
		utils.GetLogger().Warn("inquiry classification failed", zap.String("reference", inq.Reference), zap.Error(err))
		return nil
	}
	return result
}

// List returns inquiries matching the filter.
func (s *DefaultInquiryService) List(filter inquiryRepo.InquiryFilter) ([]models.Inquiry, error) {
	return s.Repo.GetAll(filter)
}

// Get retrieves an inquiry by ID.
func (s *DefaultInquiryService) Get(id string) (*models.Inquiry, error) {
	return s.Repo.GetByID(id)
}

// GetByReference retrieves an inquiry by its public reference.
func (s *DefaultInquiryService) GetByReference(ref string) (*models.Inquiry, error) {
	inq, err := s.Repo.GetByReference(ref)
	if err != nil {
		return nil, err
	}
	if inq == nil {
		return nil, fmt.Errorf("no inquiry with reference %s", ref)
	}
	return inq, nil
}

// UpdateStatus moves an inquiry along its lifecycle: new → reviewed → archived.
func (s *DefaultInquiryService) UpdateStatus(id, status string) (*models.Inquiry, error) {
	if !models.ValidInquiryStatus(status) {
		return nil, fmt.Errorf("invalid inquiry status %q", status)
	}
	inq, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inq.Status == models.InquiryStatusArchived && status != models.InquiryStatusArchived {
		return nil, fmt.Errorf("archived inquiries cannot be reopened")
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	inq.Status = status
	return inq, nil
}

// Delete removes an inquiry.
func (s *DefaultInquiryService) Delete(id string) error {
	return s.Repo.Delete(id)
}
