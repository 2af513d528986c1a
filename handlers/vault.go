package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"akplaw/models"
	"akplaw/services/billing"
	"akplaw/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingHandler serves the client document vault and digital invoices.
type BillingHandler struct {
	BillingSvc billing.BillingService
}

func billingStatus(err error) int {
	switch {
	case errors.Is(err, billing.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, billing.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, billing.ErrRevoked), errors.Is(err, billing.ErrNotInvoice):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// MyDocumentsHandler handles GET /api/vault/documents for the signed-in client.
func (h *BillingHandler) MyDocumentsHandler(c *gin.Context) {
	docs, err := h.BillingSvc.ListForClient(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetMyDocumentHandler handles GET /api/vault/documents/:id with an
// ownership check.
func (h *BillingHandler) GetMyDocumentHandler(c *gin.Context) {
	doc, err := h.BillingSvc.GetDocument(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if doc.ClientID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// SignInvoiceHandler handles POST /api/vault/invoices/:id/sign.
func (h *BillingHandler) SignInvoiceHandler(c *gin.Context) {
	var req struct {
		Signature string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.BillingSvc.SignInvoice(c.Param("id"), c.GetString("userID"), req.Signature)
	if err != nil {
		c.JSON(billingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// PayInvoiceHandler handles POST /api/vault/invoices/:id/pay, returning the
// payment element client secret.
func (h *BillingHandler) PayInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	clientSecret, err := h.BillingSvc.CreatePaymentIntent(c.Param("id"), c.GetString("userID"))
	if err != nil {
		logger.Error("Payment intent failed", zap.String("docId", c.Param("id")), zap.Error(err))
		c.JSON(billingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// DownloadInvoicePDFHandler handles GET /api/vault/invoices/:id/pdf.
func (h *BillingHandler) DownloadInvoicePDFHandler(c *gin.Context) {
	doc, err := h.BillingSvc.GetDocument(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if doc.ClientID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	pdfBytes, err := h.BillingSvc.RenderInvoicePDF(doc.ID)
	if err != nil {
		c.JSON(billingStatus(err), gin.H{"error": err.Error()})
		return
	}
	filename := fmt.Sprintf("invoice-%s.pdf", doc.Invoice.Number)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// --- Admin ---

// ListAllDocumentsHandler handles GET /api/admin/vault/documents.
func (h *BillingHandler) ListAllDocumentsHandler(c *gin.Context) {
	docs, err := h.BillingSvc.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ClientDocumentsHandler handles GET /api/admin/vault/clients/:id/documents.
func (h *BillingHandler) ClientDocumentsHandler(c *gin.Context) {
	docs, err := h.BillingSvc.ListForClient(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// CreateDocumentHandler handles POST /api/admin/vault/documents for plain
// (non-invoice) documents.
func (h *BillingHandler) CreateDocumentHandler(c *gin.Context) {
	var doc models.ClientDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.BillingSvc.CreateDocument(doc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CreateInvoiceHandler handles POST /api/admin/vault/invoices.
func (h *BillingHandler) CreateInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req billing.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.BillingSvc.CreateInvoice(req)
	if err != nil {
		logger.Error("Invoice creation failed", zap.String("clientId", req.ClientID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// RevokeInvoiceHandler handles PUT /api/admin/vault/invoices/:id/revoke.
func (h *BillingHandler) RevokeInvoiceHandler(c *gin.Context) {
	doc, err := h.BillingSvc.RevokeInvoice(c.Param("id"))
	if err != nil {
		c.JSON(billingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AdminInvoicePDFHandler handles GET /api/admin/vault/invoices/:id/pdf.
func (h *BillingHandler) AdminInvoicePDFHandler(c *gin.Context) {
	pdfBytes, err := h.BillingSvc.RenderInvoicePDF(c.Param("id"))
	if err != nil {
		c.JSON(billingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// DeleteDocumentHandler handles DELETE /api/admin/vault/documents/:id.
func (h *BillingHandler) DeleteDocumentHandler(c *gin.Context) {
	if err := h.BillingSvc.DeleteDocument(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
