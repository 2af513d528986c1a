package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	recruitmentRepo "akplaw/database/repository/recruitment"
	"akplaw/models"
	"akplaw/services/recruitment"
	"akplaw/services/storage"
	"akplaw/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// resumeMaxBytes caps resume uploads at 10 MB.
const resumeMaxBytes = 10 << 20

// RecruitmentHandler serves the careers listings and the application flow.
type RecruitmentHandler struct {
	RecruitmentSvc recruitment.RecruitmentService
	StorageSvc     storage.StorageService
}

// ListJobsHandler handles GET /api/careers/jobs. Only active postings are
// exposed publicly; closed listings are served to admins separately.
func (h *RecruitmentHandler) ListJobsHandler(c *gin.Context) {
	jobs, err := h.RecruitmentSvc.ListJobs(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListAllJobsHandler handles GET /api/admin/careers/jobs, closed postings
// included.
func (h *RecruitmentHandler) ListAllJobsHandler(c *gin.Context) {
	jobs, err := h.RecruitmentSvc.ListJobs(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobHandler handles GET /api/careers/jobs/:id.
func (h *RecruitmentHandler) GetJobHandler(c *gin.Context) {
	job, err := h.RecruitmentSvc.GetJob(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJobHandler handles POST /api/admin/careers/jobs.
func (h *RecruitmentHandler) CreateJobHandler(c *gin.Context) {
	var job models.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.RecruitmentSvc.CreateJob(job)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateJobHandler handles PUT /api/admin/careers/jobs/:id.
func (h *RecruitmentHandler) UpdateJobHandler(c *gin.Context) {
	var job models.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	job.ID = c.Param("id")
	updated, err := h.RecruitmentSvc.UpdateJob(job)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CloseJobHandler handles PUT /api/admin/careers/jobs/:id/close.
func (h *RecruitmentHandler) CloseJobHandler(c *gin.Context) {
	job, err := h.RecruitmentSvc.CloseJob(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJobHandler handles DELETE /api/admin/careers/jobs/:id.
func (h *RecruitmentHandler) DeleteJobHandler(c *gin.Context) {
	if err := h.RecruitmentSvc.DeleteJob(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// SubmitApplicationHandler handles POST /api/careers/jobs/:id/apply as a
// multipart form: an "application" JSON part with the dossier fields and an
// optional "resume" file part. The resume is stored and its raw bytes feed
// the extraction prefill.
func (h *RecruitmentHandler) SubmitApplicationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var form struct {
		Personal    models.PersonalDetails   `json:"personal"`
		Education   []models.EducationEntry  `json:"education"`
		Experience  []models.ExperienceEntry `json:"experience"`
		CoverLetter string                   `json:"coverLetter"`
	}
	payload := c.PostForm("application")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing application payload"})
		return
	}
	if err := json.Unmarshal([]byte(payload), &form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application payload", "detail": err.Error()})
		return
	}

	req := recruitment.ApplicationRequest{
		JobID:       c.Param("id"),
		UserID:      c.GetString("userID"),
		Personal:    form.Personal,
		Education:   form.Education,
		Experience:  form.Experience,
		CoverLetter: form.CoverLetter,
	}

	if fileHeader, err := c.FormFile("resume"); err == nil {
		if fileHeader.Size > resumeMaxBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resume exceeds the 10MB limit"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume", "detail": err.Error()})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume", "detail": err.Error()})
			return
		}
		req.ResumeData = data
		req.ResumeMIME = fileHeader.Header.Get("Content-Type")

		tempFilePath := tempUploadPath(fileHeader.Filename)
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save resume", "detail": err.Error()})
			return
		}
		defer os.Remove(tempFilePath)

		publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "careers/resumes")
		if err != nil {
			logger.Error("Resume upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store resume", "detail": err.Error()})
			return
		}
		url, err := h.StorageSvc.GetDownloadURL(c, "raw", publicID, 0)
		if err != nil {
			logger.Error("Resume URL construction failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store resume", "detail": err.Error()})
			return
		}
		req.ResumeURL = url
	}

	app, err := h.RecruitmentSvc.SubmitApplication(c.Request.Context(), req)
	if err != nil {
		logger.Error("Application submission failed", zap.String("jobId", req.JobID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ExtractResumeHandler handles POST /api/careers/resume/extract. The careers
// form calls it to prefill education and experience before submission.
func (h *RecruitmentHandler) ExtractResumeHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file not provided", "detail": err.Error()})
		return
	}
	if fileHeader.Size > resumeMaxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume exceeds the 10MB limit"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume", "detail": err.Error()})
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume", "detail": err.Error()})
		return
	}

	extracted := h.RecruitmentSvc.ExtractResume(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if extracted == nil {
		c.JSON(http.StatusOK, gin.H{"extracted": nil, "message": "extraction unavailable, fill the form manually"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"extracted": extracted})
}

// ListApplicationsHandler handles GET /api/admin/careers/applications with
// optional jobId and status filters.
func (h *RecruitmentHandler) ListApplicationsHandler(c *gin.Context) {
	apps, err := h.RecruitmentSvc.ListApplications(recruitmentRepo.ApplicationFilter{
		JobID:  c.Query("jobId"),
		Status: c.Query("status"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// MyApplicationsHandler handles GET /api/account/applications for the
// signed-in applicant.
func (h *RecruitmentHandler) MyApplicationsHandler(c *gin.Context) {
	apps, err := h.RecruitmentSvc.ListApplications(recruitmentRepo.ApplicationFilter{
		UserID: c.GetString("userID"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetApplicationHandler handles GET /api/admin/careers/applications/:id.
func (h *RecruitmentHandler) GetApplicationHandler(c *gin.Context) {
	app, err := h.RecruitmentSvc.GetApplication(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// AdvanceApplicationHandler handles PUT /api/admin/careers/applications/:id/status.
func (h *RecruitmentHandler) AdvanceApplicationHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.RecruitmentSvc.AdvanceApplication(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// DeleteApplicationHandler handles DELETE /api/admin/careers/applications/:id.
func (h *RecruitmentHandler) DeleteApplicationHandler(c *gin.Context) {
	if err := h.RecruitmentSvc.DeleteApplication(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}
