package recruitment

import (
	"context"
	"errors"
	"testing"

	recruitmentRepo "akplaw/database/repository/recruitment"
	"akplaw/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecruitmentRepo struct {
	jobs []models.Job
	apps []models.JobApplication
}

func (f *fakeRecruitmentRepo) GetJobs(activeOnly bool) ([]models.Job, error) {
	if !activeOnly {
		return f.jobs, nil
	}
	var out []models.Job
	for _, j := range f.jobs {
		if j.Status == models.JobStatusActive {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeRecruitmentRepo) GetJobByID(id string) (*models.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRecruitmentRepo) CreateJob(job *models.Job) error {
	f.jobs = append(f.jobs, *job)
	return nil
}

func (f *fakeRecruitmentRepo) UpdateJob(job *models.Job) error {
	for i := range f.jobs {
		if f.jobs[i].ID == job.ID {
			f.jobs[i] = *job
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeRecruitmentRepo) DeleteJob(id string) error { return nil }

func (f *fakeRecruitmentRepo) GetApplications(filter recruitmentRepo.ApplicationFilter) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, a := range f.apps {
		if filter.JobID != "" && a.JobID != filter.JobID {
			continue
		}
		if filter.UserID != "" && a.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRecruitmentRepo) GetApplicationByID(id string) (*models.JobApplication, error) {
	for i := range f.apps {
		if f.apps[i].ID == id {
			return &f.apps[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRecruitmentRepo) CreateApplication(app *models.JobApplication) error {
	f.apps = append(f.apps, *app)
	return nil
}

func (f *fakeRecruitmentRepo) UpdateApplicationStatus(id, status string) error {
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeRecruitmentRepo) DeleteApplication(id string) error { return nil }

type fakeExtractor struct {
	result *models.ResumeExtraction
	err    error
}

func (f *fakeExtractor) ClassifyInquiry(ctx context.Context, text string) (*models.InquiryClassification, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeExtractor) ExtractResume(ctx context.Context, data []byte, mimeType string) (*models.ResumeExtraction, error) {
	return f.result, f.err
}

func seedJob(repo *fakeRecruitmentRepo, status string) models.Job {
	job := models.Job{
		ID:         "job-1",
		Title:      "Senior Associate",
		Department: "Dispute Resolution",
		Location:   "Nairobi",
		Status:     status,
	}
	repo.jobs = append(repo.jobs, job)
	return job
}

func baseRequest() ApplicationRequest {
	return ApplicationRequest{
		JobID:  "job-1",
		UserID: "user-1",
		Personal: models.PersonalDetails{
			FullName: "Daniel Otieno",
			Email:    "daniel@example.com",
		},
	}
}

func TestSubmitApplicationDefaultsResumeURL(t *testing.T) {
	repo := &fakeRecruitmentRepo{}
	seedJob(repo, models.JobStatusActive)
	svc := &DefaultRecruitmentService{Repo: repo}

	app, err := svc.SubmitApplication(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, models.ResumeNotAttached, app.ResumeURL)
	assert.Equal(t, models.ApplicationStatusReceived, app.Status)
	assert.Len(t, repo.apps, 1)
}

func TestSubmitApplicationRejectsClosedJob(t *testing.T) {
	repo := &fakeRecruitmentRepo{}
	seedJob(repo, models.JobStatusClosed)
	svc := &DefaultRecruitmentService{Repo: repo}

	_, err := svc.SubmitApplication(context.Background(), baseRequest())
	assert.Error(t, err)
	assert.Empty(t, repo.apps)
}

func TestSubmitApplicationRejectsUnknownJob(t *testing.T) {
	svc := &DefaultRecruitmentService{Repo: &fakeRecruitmentRepo{}}

	_, err := svc.SubmitApplication(context.Background(), baseRequest())
	assert.Error(t, err)
}

func TestSubmitApplicationPrefillsFromResume(t *testing.T) {
	repo := &fakeRecruitmentRepo{}
	seedJob(repo, models.JobStatusActive)
	extractor := &fakeExtractor{result: &models.ResumeExtraction{
		Education: []models.EducationEntry{{Institution: "University of Nairobi", Degree: "LLB"}},
		Experience: []models.ExperienceEntry{{
			Company: "Kaplan & Stratton", Title: "Associate",
		}},
	}}
	svc := &DefaultRecruitmentService{Repo: repo, AI: extractor}

	req := baseRequest()
	req.ResumeURL = "https://files.example.com/resume.pdf"
	req.ResumeData = []byte("%PDF-1.4 fake resume")
	req.ResumeMIME = "application/pdf"

	app, err := svc.SubmitApplication(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, app.Education, 1)
	assert.Equal(t, "University of Nairobi", app.Education[0].Institution)
	require.Len(t, app.Experience, 1)
	assert.Equal(t, "https://files.example.com/resume.pdf", app.ResumeURL)
}

func TestSubmitApplicationSurvivesExtractionFailure(t *testing.T) {
	repo := &fakeRecruitmentRepo{}
	seedJob(repo, models.JobStatusActive)
	svc := &DefaultRecruitmentService{Repo: repo, AI: &fakeExtractor{err: errors.New("model unavailable")}}

	req := baseRequest()
	req.ResumeData = []byte("%PDF-1.4 fake resume")

	app, err := svc.SubmitApplication(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, app.Education)
	assert.Empty(t, app.Experience)
}

func TestSubmitApplicationKeepsManualEntries(t *testing.T) {
	repo := &fakeRecruitmentRepo{}
	seedJob(repo, models.JobStatusActive)
	extractor := &fakeExtractor{result: &models.ResumeExtraction{
		Education: []models.EducationEntry{{Institution: "Should not be used"}},
	}}
	svc := &DefaultRecruitmentService{Repo: repo, AI: extractor}

	req := baseRequest()
	req.ResumeData = []byte("%PDF-1.4 fake resume")
	req.Education = []models.EducationEntry{{Institution: "Strathmore", Degree: "LLM"}}

	app, err := svc.SubmitApplication(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, app.Education, 1)
	assert.Equal(t, "Strathmore", app.Education[0].Institution)
}

func TestAdvanceApplicationTransitions(t *testing.T) {
	repo := &fakeRecruitmentRepo{}
	seedJob(repo, models.JobStatusActive)
	svc := &DefaultRecruitmentService{Repo: repo}

	app, err := svc.SubmitApplication(context.Background(), baseRequest())
	require.NoError(t, err)

	// Received cannot jump straight to Offered.
	_, err = svc.AdvanceApplication(app.ID, models.ApplicationStatusOffered)
	assert.Error(t, err)

	for _, status := range []string{
		models.ApplicationStatusUnderReview,
		models.ApplicationStatusInterview,
		models.ApplicationStatusOffered,
	} {
		updated, err := svc.AdvanceApplication(app.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// Offered is terminal.
	_, err = svc.AdvanceApplication(app.ID, models.ApplicationStatusRejected)
	assert.Error(t, err)
}

func TestListJobsFiltersClosed(t *testing.T) {
	repo := &fakeRecruitmentRepo{}
	seedJob(repo, models.JobStatusActive)
	repo.jobs = append(repo.jobs, models.Job{ID: "job-2", Title: "Paralegal", Department: "Operations", Status: models.JobStatusClosed})
	svc := &DefaultRecruitmentService{Repo: repo}

	active, err := svc.ListJobs(false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.ListJobs(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
