package billing

import (
	clientdocRepo "akplaw/database/repository/clientdoc"
	userRepo "akplaw/database/repository/user"
	"akplaw/models"
	"akplaw/services/mailer"
)

// InvoiceRequest carries the admin-entered fields of a new digital invoice.
// The total is always recomputed from the line items server-side.
type InvoiceRequest struct {
	ClientID string                   `json:"clientId" binding:"required"`
	Title    string                   `json:"title"`
	Number   string                   `json:"number"`
	Items    []models.InvoiceLineItem `json:"items" binding:"required"`
	Currency string                   `json:"currency"`
	Terms    string                   `json:"terms"`
	DueDate  string                   `json:"dueDate"`
}

// BillingService manages the per-client document vault and digital invoices.
type BillingService interface {
	// Vault documents.
	CreateDocument(doc models.ClientDocument) (*models.ClientDocument, error)
	GetDocument(id string) (*models.ClientDocument, error)
	ListForClient(clientID string) ([]models.ClientDocument, error)
	ListAll() ([]models.ClientDocument, error)
	DeleteDocument(id string) error

	// Invoices.
	CreateInvoice(req InvoiceRequest) (*models.ClientDocument, error)
	SignInvoice(docID, clientID, signature string) (*models.ClientDocument, error)
	RevokeInvoice(docID string) (*models.ClientDocument, error)
	CreatePaymentIntent(docID, clientID string) (string, error)
	RenderInvoicePDF(docID string) ([]byte, error)
}

// DefaultBillingService is the production implementation.
type DefaultBillingService struct {
	Repo   clientdocRepo.ClientDocRepository
	Users  userRepo.UserRepository
	Mailer mailer.Mailer
}
