package recruitmentRepo

import "akplaw/models"

// ApplicationFilter narrows application listings. Zero values mean "no constraint".
type ApplicationFilter struct {
	JobID  string
	UserID string
	Status string
}

// RecruitmentRepository defines data access for jobs and job applications.
type RecruitmentRepository interface {
	// Jobs.
	GetJobs(activeOnly bool) ([]models.Job, error)
	GetJobByID(id string) (*models.Job, error)
	CreateJob(job *models.Job) error
	UpdateJob(job *models.Job) error
	DeleteJob(id string) error

	// Applications.
	GetApplications(filter ApplicationFilter) ([]models.JobApplication, error)
	GetApplicationByID(id string) (*models.JobApplication, error)
	CreateApplication(app *models.JobApplication) error
	UpdateApplicationStatus(id, status string) error
	DeleteApplication(id string) error
}
