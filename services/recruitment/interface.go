package recruitment

import (
	"context"

	recruitmentRepo "akplaw/database/repository/recruitment"
	"akplaw/models"
	ai "akplaw/services/intelligence"
	"akplaw/services/mailer"
)

// ApplicationRequest is a candidate's submission for a job posting.
type ApplicationRequest struct {
	JobID       string
	UserID      string
	Personal    models.PersonalDetails
	Education   []models.EducationEntry
	Experience  []models.ExperienceEntry
	CoverLetter string

	// ResumeURL is the stored resume location; empty means no resume was
	// attached. ResumeData/ResumeMIME feed the optional AI prefill.
	ResumeURL  string
	ResumeData []byte
	ResumeMIME string
}

// RecruitmentService manages job postings and the application pipeline.
type RecruitmentService interface {
	// Jobs.
	ListJobs(includeClosed bool) ([]models.Job, error)
	GetJob(id string) (*models.Job, error)
	CreateJob(job models.Job) (*models.Job, error)
	UpdateJob(job models.Job) (*models.Job, error)
	CloseJob(id string) (*models.Job, error)
	DeleteJob(id string) error

	// Applications.
	SubmitApplication(ctx context.Context, req ApplicationRequest) (*models.JobApplication, error)
	ExtractResume(ctx context.Context, data []byte, mimeType string) *models.ResumeExtraction
	ListApplications(filter recruitmentRepo.ApplicationFilter) ([]models.JobApplication, error)
	GetApplication(id string) (*models.JobApplication, error)
	AdvanceApplication(id, status string) (*models.JobApplication, error)
	DeleteApplication(id string) error
}

// DefaultRecruitmentService is the production implementation.
type DefaultRecruitmentService struct {
	Repo   recruitmentRepo.RecruitmentRepository
	AI     ai.AIService
	Mailer mailer.Mailer
}
