package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	recruitmentRepo "akplaw/database/repository/recruitment"
	"akplaw/models"
	"akplaw/services/recruitment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecruitmentService struct {
	jobs []models.Job
}

func (s *stubRecruitmentService) ListJobs(includeClosed bool) ([]models.Job, error) {
	var out []models.Job
	for _, j := range s.jobs {
		if includeClosed || j.Status == models.JobStatusActive {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *stubRecruitmentService) GetJob(id string) (*models.Job, error)       { return nil, nil }
func (s *stubRecruitmentService) CreateJob(j models.Job) (*models.Job, error) { return &j, nil }
func (s *stubRecruitmentService) UpdateJob(j models.Job) (*models.Job, error) { return &j, nil }
func (s *stubRecruitmentService) CloseJob(id string) (*models.Job, error)     { return nil, nil }
func (s *stubRecruitmentService) DeleteJob(id string) error                   { return nil }

func (s *stubRecruitmentService) SubmitApplication(ctx context.Context, req recruitment.ApplicationRequest) (*models.JobApplication, error) {
	return nil, nil
}

func (s *stubRecruitmentService) ExtractResume(ctx context.Context, data []byte, mimeType string) *models.ResumeExtraction {
	return nil
}

func (s *stubRecruitmentService) ListApplications(filter recruitmentRepo.ApplicationFilter) ([]models.JobApplication, error) {
	return nil, nil
}

func (s *stubRecruitmentService) GetApplication(id string) (*models.JobApplication, error) {
	return nil, nil
}

func (s *stubRecruitmentService) AdvanceApplication(id, status string) (*models.JobApplication, error) {
	return nil, nil
}

func (s *stubRecruitmentService) DeleteApplication(id string) error { return nil }

func newJobsRouter(h *RecruitmentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/careers/jobs", h.ListJobsHandler)
	r.GET("/api/admin/careers/jobs", h.ListAllJobsHandler)
	return r
}

func seedJobsHandler() *RecruitmentHandler {
	return &RecruitmentHandler{RecruitmentSvc: &stubRecruitmentService{jobs: []models.Job{
		{ID: "job-1", Title: "Senior Associate", Status: models.JobStatusActive},
		{ID: "job-2", Title: "Legal Clerk", Status: models.JobStatusClosed},
	}}}
}

func TestListJobsHandlerHidesClosedPostings(t *testing.T) {
	r := newJobsRouter(seedJobsHandler())

	// The query flag must not leak closed postings to anonymous callers.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/careers/jobs?all=true", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "job-1", got[0].ID)
}

func TestListAllJobsHandlerIncludesClosedPostings(t *testing.T) {
	r := newJobsRouter(seedJobsHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/careers/jobs", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
