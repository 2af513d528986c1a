package inquiry

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	inquiryRepo "akplaw/database/repository/inquiry"
	"akplaw/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInquiryRepo struct {
	inquiries []models.Inquiry
	createErr error
}

func (f *fakeInquiryRepo) Create(inq *models.Inquiry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.inquiries = append(f.inquiries, *inq)
	return nil
}

func (f *fakeInquiryRepo) GetByID(id string) (*models.Inquiry, error) {
	for i := range f.inquiries {
		if f.inquiries[i].ID == id {
			return &f.inquiries[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeInquiryRepo) GetByReference(ref string) (*models.Inquiry, error) {
	for i := range f.inquiries {
		if f.inquiries[i].Reference == ref {
			return &f.inquiries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeInquiryRepo) GetAll(filter inquiryRepo.InquiryFilter) ([]models.Inquiry, error) {
	return f.inquiries, nil
}

func (f *fakeInquiryRepo) UpdateStatus(id, status string) error {
	for i := range f.inquiries {
		if f.inquiries[i].ID == id {
			f.inquiries[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeInquiryRepo) Delete(id string) error { return nil }

type fakeAI struct {
	classification *models.InquiryClassification
	err            error
}

func (f *fakeAI) ClassifyInquiry(ctx context.Context, text string) (*models.InquiryClassification, error) {
	return f.classification, f.err
}

func (f *fakeAI) ExtractResume(ctx context.Context, data []byte, mimeType string) (*models.ResumeExtraction, error) {
	return nil, errors.New("not implemented")
}

type fakeMailer struct {
	sent []models.EmailMessage
}

func (f *fakeMailer) Send(ctx context.Context, msg models.EmailMessage) (string, error) {
	f.sent = append(f.sent, msg)
	return "msg_1", nil
}

func (f *fakeMailer) Enqueue(msg models.EmailMessage) {
	f.sent = append(f.sent, msg)
}

func newTestService(repo *fakeInquiryRepo, aiSvc *fakeAI, m *fakeMailer) *DefaultInquiryService {
	svc := &DefaultInquiryService{Repo: repo, AdminEmail: "admin@akplaw.com"}
	if aiSvc != nil {
		svc.AI = aiSvc
	}
	if m != nil {
		svc.Mailer = m
	}
	return svc
}

func TestSubmitCreatesSingleRecordWithReference(t *testing.T) {
	repo := &fakeInquiryRepo{}
	m := &fakeMailer{}
	svc := newTestService(repo, nil, m)

	inq, err := svc.Submit(context.Background(), SubmitRequest{
		Type:    models.InquiryTypeContact,
		Name:    "Jane Mwangi",
		Email:   "jane@example.com",
		Details: map[string]interface{}{"message": "Need advice on a land dispute"},
	})
	require.NoError(t, err)

	assert.Len(t, repo.inquiries, 1)
	assert.Regexp(t, regexp.MustCompile(`^AKP-\d{6}$`), inq.Reference)
	assert.Equal(t, models.InquiryStatusNew, inq.Status)

	// Acknowledgement to the client plus the admin alert.
	require.Len(t, m.sent, 2)
	assert.Equal(t, []string{"jane@example.com"}, m.sent[0].To)
	assert.Contains(t, m.sent[0].Subject, inq.Reference)
	assert.Equal(t, []string{"admin@akplaw.com"}, m.sent[1].To)
}

func TestSubmitStoresClassification(t *testing.T) {
	repo := &fakeInquiryRepo{}
	aiSvc := &fakeAI{classification: &models.InquiryClassification{
		PracticeArea: "Real Estate & Land Law",
		Urgency:      models.UrgencyHigh,
	}}
	svc := newTestService(repo, aiSvc, nil)

	inq, err := svc.Submit(context.Background(), SubmitRequest{
		Type:    models.InquiryTypeContact,
		Name:    "Jane Mwangi",
		Email:   "jane@example.com",
		Details: map[string]interface{}{"message": "Eviction notice served yesterday"},
	})
	require.NoError(t, err)
	require.NotNil(t, inq.Classification)
	assert.Equal(t, models.UrgencyHigh, inq.Classification.Urgency)
}

func TestSubmitSurvivesClassificationFailure(t *testing.T) {
	repo := &fakeInquiryRepo{}
	aiSvc := &fakeAI{err: errors.New("model unavailable")}
	svc := newTestService(repo, aiSvc, nil)

	inq, err := svc.Submit(context.Background(), SubmitRequest{
		Type:    models.InquiryTypeContact,
		Name:    "Jane Mwangi",
		Email:   "jane@example.com",
		Details: map[string]interface{}{"message": "General question"},
	})
	require.NoError(t, err)
	assert.Nil(t, inq.Classification)
	assert.Len(t, repo.inquiries, 1)
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService(&fakeInquiryRepo{}, nil, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitRequest{Type: "newsletter", Name: "A", Email: "a@b.com"})
	assert.Error(t, err)

	_, err = svc.Submit(ctx, SubmitRequest{Type: models.InquiryTypeContact, Email: "a@b.com"})
	assert.Error(t, err)

	// Appointments need a preferred date.
	_, err = svc.Submit(ctx, SubmitRequest{
		Type:  models.InquiryTypeAppointment,
		Name:  "Jane",
		Email: "jane@example.com",
	})
	assert.Error(t, err)

	// RFPs need a scope of work.
	_, err = svc.Submit(ctx, SubmitRequest{
		Type:    models.InquiryTypeRFP,
		Name:    "Jane",
		Email:   "jane@example.com",
		Details: map[string]interface{}{"company": "Acme"},
	})
	assert.Error(t, err)
}

func TestReferenceCollisionRetries(t *testing.T) {
	repo := &fakeInquiryRepo{}
	svc := newTestService(repo, nil, nil)

	// Pre-seed many inquiries; each submit must still find a free reference.
	for i := 0; i < 20; i++ {
		_, err := svc.Submit(context.Background(), SubmitRequest{
			Type:    models.InquiryTypeContact,
			Name:    "Client",
			Email:   fmt.Sprintf("client%d@example.com", i),
			Details: map[string]interface{}{"message": "hello"},
		})
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, inq := range repo.inquiries {
		assert.False(t, seen[inq.Reference], "duplicate reference %s", inq.Reference)
		seen[inq.Reference] = true
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := &fakeInquiryRepo{}
	svc := newTestService(repo, nil, nil)

	inq, err := svc.Submit(context.Background(), SubmitRequest{
		Type:    models.InquiryTypeContact,
		Name:    "Jane",
		Email:   "jane@example.com",
		Details: map[string]interface{}{"message": "hello"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(inq.ID, models.InquiryStatusReviewed)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusReviewed, updated.Status)

	_, err = svc.UpdateStatus(inq.ID, models.InquiryStatusArchived)
	require.NoError(t, err)

	// Archived inquiries cannot be reopened.
	_, err = svc.UpdateStatus(inq.ID, models.InquiryStatusNew)
	assert.Error(t, err)

	_, err = svc.UpdateStatus(inq.ID, "pending")
	assert.Error(t, err)
}
