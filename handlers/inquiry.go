package handlers

import (
	"net/http"

	inquiryRepo "akplaw/database/repository/inquiry"
	"akplaw/services/inquiry"
	"akplaw/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler serves the public intake flows and their admin triage.
type InquiryHandler struct {
	InquirySvc inquiry.InquiryService
}

// SubmitInquiryHandler handles POST /api/inquiries from the booking, RFP,
// and contact forms.
func (h *InquiryHandler) SubmitInquiryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req inquiry.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inq, err := h.InquirySvc.Submit(c.Request.Context(), req)
	if err != nil {
		logger.Error("Inquiry submission failed", zap.String("type", req.Type), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"reference": inq.Reference,
		"message":   "Your inquiry has been received",
	})
}

// LookupInquiryHandler handles GET /api/inquiries/reference/:ref so clients
// can check the status of a submission by its public reference.
func (h *InquiryHandler) LookupInquiryHandler(c *gin.Context) {
	inq, err := h.InquirySvc.GetByReference(c.Param("ref"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reference": inq.Reference,
		"type":      inq.Type,
		"status":    inq.Status,
		"createdAt": inq.CreatedAt,
	})
}

// ListInquiriesHandler handles GET /api/admin/inquiries with optional type
// and status filters.
func (h *InquiryHandler) ListInquiriesHandler(c *gin.Context) {
	items, err := h.InquirySvc.List(inquiryRepo.InquiryFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetInquiryHandler handles GET /api/admin/inquiries/:id.
func (h *InquiryHandler) GetInquiryHandler(c *gin.Context) {
	inq, err := h.InquirySvc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inq)
}

// UpdateInquiryStatusHandler handles PUT /api/admin/inquiries/:id/status.
func (h *InquiryHandler) UpdateInquiryStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inq, err := h.InquirySvc.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inq)
}

// DeleteInquiryHandler handles DELETE /api/admin/inquiries/:id.
func (h *InquiryHandler) DeleteInquiryHandler(c *gin.Context) {
	if err := h.InquirySvc.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
}
