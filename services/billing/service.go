package billing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"akplaw/models"
	"akplaw/services/mailer"
	"akplaw/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a vault document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrNotOwner is returned when a client touches another client's document.
	ErrNotOwner = errors.New("document does not belong to this client")
	// ErrRevoked is returned for any client action on a revoked invoice.
	ErrRevoked = errors.New("invoice has been revoked")
	// ErrNotInvoice is returned when an invoice operation hits a plain document.
	ErrNotInvoice = errors.New("document is not an invoice")
)

// --- Vault documents ---

// CreateDocument files a plain document (brief, contract, upload) in a
// client's vault. Invoices go through CreateInvoice instead.
func (s *DefaultBillingService) CreateDocument(doc models.ClientDocument) (*models.ClientDocument, error) {
	if doc.ClientID == "" || doc.Title == "" {
		return nil, fmt.Errorf("client id and title are required")
	}
	if doc.Type == "" {
		doc.Type = models.DocTypeOther
	}
	if !models.ValidDocType(doc.Type) {
		return nil, fmt.Errorf("invalid document type %q", doc.Type)
	}
	if doc.Type == models.DocTypeInvoice {
		return nil, fmt.Errorf("invoices must be issued through the invoice flow")
	}
	doc.ID = uuid.New().String()
	doc.Invoice = nil
	if err := s.Repo.Create(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDocument retrieves one vault entry by ID.
func (s *DefaultBillingService) GetDocument(id string) (*models.ClientDocument, error) {
	doc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// ListForClient lists a client's own vault, newest first.
func (s *DefaultBillingService) ListForClient(clientID string) ([]models.ClientDocument, error) {
	return s.Repo.GetByClient(clientID)
}

// ListAll lists every vault entry for the back office.
func (s *DefaultBillingService) ListAll() ([]models.ClientDocument, error) {
	return s.Repo.GetAll()
}

// DeleteDocument removes a vault entry.
func (s *DefaultBillingService) DeleteDocument(id string) error {
	return s.Repo.Delete(id)
}

// --- Invoices ---

// CreateInvoice issues a digital invoice into a client's vault. The total
// amount is the sum of the line items regardless of what the caller sent,
// and the client is notified by email.
func (s *DefaultBillingService) CreateInvoice(req InvoiceRequest) (*models.ClientDocument, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("an invoice needs at least one line item")
	}
	for _, item := range req.Items {
		if item.Description == "" || item.Amount < 0 {
			return nil, fmt.Errorf("each line item needs a description and a non-negative amount")
		}
	}

	client, err := s.Users.GetByID(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client %s not found", req.ClientID)
	}

	currency := req.Currency
	if currency == "" {
		currency = "KES"
	}
	number := req.Number
	if number == "" {
		number = fmt.Sprintf("INV-%s", time.Now().Format("20060102-150405"))
	}
	title := req.Title
	if title == "" {
		title = fmt.Sprintf("Invoice %s", number)
	}

	var due time.Time
	if req.DueDate != "" {
		due, err = time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", req.DueDate)
		}
	}

	doc := &models.ClientDocument{
		ID:       uuid.New().String(),
		ClientID: req.ClientID,
		Type:     models.DocTypeInvoice,
		Title:    title,
		Invoice: &models.InvoiceDetails{
			Number:      number,
			Items:       req.Items,
			TotalAmount: sumLineItems(req.Items),
			Currency:    currency,
			Terms:       req.Terms,
			DueDate:     due,
		},
	}
	if err := s.Repo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to store invoice: %w", err)
	}

	if s.Mailer != nil && client.Email != "" {
		s.Mailer.Enqueue(mailer.InvoiceIssuedEmail(client.Email, doc))
	}
	return doc, nil
}

// SignInvoice records the client's acceptance signature. A revoked invoice
// can no longer be signed, and a signature is only written once.
func (s *DefaultBillingService) SignInvoice(docID, clientID, signature string) (*models.ClientDocument, error) {
	if signature == "" {
		return nil, fmt.Errorf("a signature is required")
	}
	doc, err := s.invoiceFor(docID, clientID)
	if err != nil {
		return nil, err
	}
	if doc.Invoice.IsRevoked {
		return nil, ErrRevoked
	}
	if doc.Invoice.Signature != "" {
		return nil, fmt.Errorf("invoice %s is already signed", doc.Invoice.Number)
	}
	now := time.Now()
	doc.Invoice.Signature = signature
	doc.Invoice.SignedAt = &now
	if err := s.Repo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// RevokeInvoice withdraws an invoice. The document stays visible in the vault
// but signing and payment are blocked from then on.
func (s *DefaultBillingService) RevokeInvoice(docID string) (*models.ClientDocument, error) {
	doc, err := s.invoiceFor(docID, "")
	if err != nil {
		return nil, err
	}
	if doc.Invoice.IsRevoked {
		return doc, nil
	}
	doc.Invoice.IsRevoked = true
	if err := s.Repo.Update(doc); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("invoice revoked", zap.String("invoice", doc.Invoice.Number), zap.String("clientId", doc.ClientID))
	return doc, nil
}

// invoiceFor loads a document and checks it is an invoice. A non-empty
// clientID additionally enforces ownership.
func (s *DefaultBillingService) invoiceFor(docID, clientID string) (*models.ClientDocument, error) {
	doc, err := s.Repo.GetByID(docID)
	if err != nil {
		return nil, ErrNotFound
	}
	if clientID != "" && doc.ClientID != clientID {
		return nil, ErrNotOwner
	}
	if doc.Type != models.DocTypeInvoice || doc.Invoice == nil {
		return nil, ErrNotInvoice
	}
	return doc, nil
}

func sumLineItems(items []models.InvoiceLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	// Avoid float drift leaking into stored totals.
	return math.Round(total*100) / 100
}
