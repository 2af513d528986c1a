package recruitment

import (
	"context"
	"fmt"
	"time"

	recruitmentRepo "akplaw/database/repository/recruitment"
	"akplaw/models"
	"akplaw/services/mailer"
	"akplaw/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const extractTimeout = 15 * time.Second

// --- Jobs ---

// ListJobs lists postings; closed listings are only included on request.
func (s *DefaultRecruitmentService) ListJobs(includeClosed bool) ([]models.Job, error) {
	return s.Repo.GetJobs(!includeClosed)
}

// GetJob retrieves a posting by ID.
func (s *DefaultRecruitmentService) GetJob(id string) (*models.Job, error) {
	job, err := s.Repo.GetJobByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("job with id %s not found", id)
	}
	return job, nil
}

// CreateJob publishes a new posting, active by default.
func (s *DefaultRecruitmentService) CreateJob(job models.Job) (*models.Job, error) {
	if job.Title == "" || job.Department == "" {
		return nil, fmt.Errorf("job title and department are required")
	}
	job.ID = uuid.New().String()
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	if err := s.Repo.CreateJob(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob replaces a posting.
func (s *DefaultRecruitmentService) UpdateJob(job models.Job) (*models.Job, error) {
	if job.ID == "" {
		return nil, fmt.Errorf("job id is required")
	}
	if err := s.Repo.UpdateJob(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CloseJob marks a posting closed; new applications are rejected from then on.
func (s *DefaultRecruitmentService) CloseJob(id string) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}
	job.Status = models.JobStatusClosed
	if err := s.Repo.UpdateJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a posting. Existing applications keep their dangling
// job reference.
func (s *DefaultRecruitmentService) DeleteJob(id string) error {
	return s.Repo.DeleteJob(id)
}

// --- Applications ---

// SubmitApplication stores a candidate dossier against an active posting.
// An absent resume is recorded as "Not Attached". When a resume is present
// and the dossier arrived without education/experience entries, the AI
// extraction prefills them; extraction failure leaves them empty for manual
// entry.
func (s *DefaultRecruitmentService) SubmitApplication(ctx context.Context, req ApplicationRequest) (*models.JobApplication, error) {
	if req.Personal.FullName == "" || req.Personal.Email == "" {
		return nil, fmt.Errorf("applicant name and email are required")
	}

	job, err := s.Repo.GetJobByID(req.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("job with id %s not found", req.JobID)
	}
	if job.Status != models.JobStatusActive {
		return nil, fmt.Errorf("job %q is no longer accepting applications", job.Title)
	}

	resumeURL := req.ResumeURL
	if resumeURL == "" {
		resumeURL = models.ResumeNotAttached
	}

	education := req.Education
	experience := req.Experience
	if len(education) == 0 && len(experience) == 0 && len(req.ResumeData) > 0 {
		if extracted := s.ExtractResume(ctx, req.ResumeData, req.ResumeMIME); extracted != nil {
			education = extracted.Education
			experience = extracted.Experience
		}
	}

	app := &models.JobApplication{
		ID:          uuid.New().String(),
		JobID:       req.JobID,
		UserID:      req.UserID,
		Personal:    req.Personal,
		Education:   education,
		Experience:  experience,
		ResumeURL:   resumeURL,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusReceived,
	}
	if err := s.Repo.CreateApplication(app); err != nil {
		return nil, fmt.Errorf("failed to store application: %w", err)
	}

	if s.Mailer != nil {
		s.Mailer.Enqueue(mailer.ApplicationConfirmationEmail(app, job))
	}
	return app, nil
}

// ExtractResume runs the AI extraction call; nil on any failure.
func (s *DefaultRecruitmentService) ExtractResume(ctx context.Context, data []byte, mimeType string) *models.ResumeExtraction {
	if s.AI == nil || len(data) == 0 {
		return nil
	}
	ectx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()
	result, err := s.AI.ExtractResume(ectx, data, mimeType)
	if err != nil {
		utils.GetLogger().Warn("resume extraction failed", zap.Error(err))
		return nil
	}
	return result
}

// ListApplications lists dossiers matching the filter.
func (s *DefaultRecruitmentService) ListApplications(filter recruitmentRepo.ApplicationFilter) ([]models.JobApplication, error) {
	return s.Repo.GetApplications(filter)
}

// GetApplication retrieves a dossier by ID.
func (s *DefaultRecruitmentService) GetApplication(id string) (*models.JobApplication, error) {
	return s.Repo.GetApplicationByID(id)
}

// AdvanceApplication moves a dossier along the pipeline: Received → Under
// Review → Interview → Offered/Rejected. Invalid transitions are rejected.
func (s *DefaultRecruitmentService) AdvanceApplication(id, status string) (*models.JobApplication, error) {
	app, err := s.Repo.GetApplicationByID(id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransitionApplication(app.Status, status) {
		return nil, fmt.Errorf("cannot move application from %q to %q", app.Status, status)
	}
	if err := s.Repo.UpdateApplicationStatus(id, status); err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}

// DeleteApplication removes a dossier.
func (s *DefaultRecruitmentService) DeleteApplication(id string) error {
	return s.Repo.DeleteApplication(id)
}
