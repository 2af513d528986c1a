package billing

import (
	"errors"
	"testing"
	"time"

	"akplaw/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeDocRepo struct {
	docs []models.ClientDocument
}

func (f *fakeDocRepo) Create(doc *models.ClientDocument) error {
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeDocRepo) GetByID(id string) (*models.ClientDocument, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			return &f.docs[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeDocRepo) GetByClient(clientID string) ([]models.ClientDocument, error) {
	var out []models.ClientDocument
	for _, d := range f.docs {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocRepo) GetAll() ([]models.ClientDocument, error) { return f.docs, nil }

func (f *fakeDocRepo) Update(doc *models.ClientDocument) error {
	for i := range f.docs {
		if f.docs[i].ID == doc.ID {
			f.docs[i] = *doc
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeDocRepo) Delete(id string) error { return nil }

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error)                { return f.users, nil }
func (f *fakeUserRepo) GetByRole(role string) ([]models.User, error)  { return nil, nil }
func (f *fakeUserRepo) Create(u *models.User) error                   { f.users = append(f.users, *u); return nil }
func (f *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (f *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}
func (f *fakeUserRepo) Delete(id string) error { return nil }

func newBillingService() (*DefaultBillingService, *fakeDocRepo) {
	docRepo := &fakeDocRepo{}
	users := &fakeUserRepo{users: []models.User{{
		ID:    "client-1",
		Email: "client@example.com",
		Role:  models.RolePremier,
	}}}
	return &DefaultBillingService{Repo: docRepo, Users: users}, docRepo
}

func invoiceRequest() InvoiceRequest {
	return InvoiceRequest{
		ClientID: "client-1",
		Number:   "INV-2026-001",
		Items: []models.InvoiceLineItem{
			{Description: "Contract review", Amount: 1000},
			{Description: "Filing fees", Amount: 500},
		},
		Currency: "KES",
		DueDate:  "2026-10-01",
	}
}

func TestCreateInvoiceComputesTotalFromItems(t *testing.T) {
	svc, repo := newBillingService()

	doc, err := svc.CreateInvoice(invoiceRequest())
	require.NoError(t, err)

	assert.Equal(t, models.DocTypeInvoice, doc.Type)
	require.NotNil(t, doc.Invoice)
	assert.Equal(t, 1500.0, doc.Invoice.TotalAmount)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), doc.Invoice.DueDate)
	assert.Len(t, repo.docs, 1)
}

func TestCreateInvoiceRoundsTotal(t *testing.T) {
	svc, _ := newBillingService()

	req := invoiceRequest()
	req.Items = []models.InvoiceLineItem{
		{Description: "A", Amount: 0.1},
		{Description: "B", Amount: 0.2},
	}
	doc, err := svc.CreateInvoice(req)
	require.NoError(t, err)
	assert.Equal(t, 0.3, doc.Invoice.TotalAmount)
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc, _ := newBillingService()

	req := invoiceRequest()
	req.Items = nil
	_, err := svc.CreateInvoice(req)
	assert.Error(t, err)

	req = invoiceRequest()
	req.Items[0].Amount = -5
	_, err = svc.CreateInvoice(req)
	assert.Error(t, err)

	req = invoiceRequest()
	req.ClientID = "ghost"
	_, err = svc.CreateInvoice(req)
	assert.Error(t, err)
}

func TestSignInvoice(t *testing.T) {
	svc, _ := newBillingService()
	doc, err := svc.CreateInvoice(invoiceRequest())
	require.NoError(t, err)

	signed, err := svc.SignInvoice(doc.ID, "client-1", "Daniel Otieno")
	require.NoError(t, err)
	assert.Equal(t, "Daniel Otieno", signed.Invoice.Signature)
	require.NotNil(t, signed.Invoice.SignedAt)

	// A second signature is rejected.
	_, err = svc.SignInvoice(doc.ID, "client-1", "Someone Else")
	assert.Error(t, err)
}

func TestSignInvoiceOwnership(t *testing.T) {
	svc, _ := newBillingService()
	doc, err := svc.CreateInvoice(invoiceRequest())
	require.NoError(t, err)

	_, err = svc.SignInvoice(doc.ID, "client-2", "Impostor")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestRevokedInvoiceBlocksSigningAndPayment(t *testing.T) {
	svc, _ := newBillingService()
	doc, err := svc.CreateInvoice(invoiceRequest())
	require.NoError(t, err)

	revoked, err := svc.RevokeInvoice(doc.ID)
	require.NoError(t, err)
	assert.True(t, revoked.Invoice.IsRevoked)

	_, err = svc.SignInvoice(doc.ID, "client-1", "Daniel Otieno")
	assert.ErrorIs(t, err, ErrRevoked)

	_, err = svc.CreatePaymentIntent(doc.ID, "client-1")
	assert.ErrorIs(t, err, ErrRevoked)

	// Revoking again is a no-op, not an error.
	_, err = svc.RevokeInvoice(doc.ID)
	assert.NoError(t, err)
}

func TestCreateDocumentRejectsInvoiceType(t *testing.T) {
	svc, _ := newBillingService()

	_, err := svc.CreateDocument(models.ClientDocument{
		ClientID: "client-1",
		Title:    "Sneaky invoice",
		Type:     models.DocTypeInvoice,
	})
	assert.Error(t, err)
}

func TestCreateDocumentDefaultsType(t *testing.T) {
	svc, repo := newBillingService()

	doc, err := svc.CreateDocument(models.ClientDocument{
		ClientID: "client-1",
		Title:    "Engagement letter",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DocTypeOther, doc.Type)
	assert.Len(t, repo.docs, 1)
}

func TestRenderInvoicePDF(t *testing.T) {
	svc, _ := newBillingService()

	req := invoiceRequest()
	req.Terms = "Payment due within 30 days of issue."
	doc, err := svc.CreateInvoice(req)
	require.NoError(t, err)

	pdfBytes, err := svc.RenderInvoicePDF(doc.ID)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderInvoicePDFRejectsPlainDocuments(t *testing.T) {
	svc, _ := newBillingService()

	doc, err := svc.CreateDocument(models.ClientDocument{
		ClientID: "client-1",
		Title:    "Engagement letter",
		Type:     models.DocTypeContract,
	})
	require.NoError(t, err)

	_, err = svc.RenderInvoicePDF(doc.ID)
	assert.ErrorIs(t, err, ErrNotInvoice)
}
