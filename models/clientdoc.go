package models

import "time"

// Client document types.
const (
	DocTypeInvoice  = "invoice"
	DocTypeBrief    = "brief"
	DocTypeContract = "contract"
	DocTypeOther    = "other"
)

// InvoiceLineItem is one billable line on a digital invoice.
type InvoiceLineItem struct {
	Description string  `bson:"description" json:"description"`
	Amount      float64 `bson:"amount" json:"amount"`
}

// InvoiceDetails is the structured payload of a digital invoice. The JSON
// view and the PDF export both render from this one struct.
type InvoiceDetails struct {
	Number          string            `bson:"number" json:"number"`
	Items           []InvoiceLineItem `bson:"items" json:"items"`
	TotalAmount     float64           `bson:"total_amount" json:"totalAmount"`
	Currency        string            `bson:"currency" json:"currency"`
	Terms           string            `bson:"terms,omitempty" json:"terms,omitempty"`
	DueDate         time.Time         `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	Signature       string            `bson:"signature,omitempty" json:"signature,omitempty"`
	SignedAt        *time.Time        `bson:"signed_at,omitempty" json:"signedAt,omitempty"`
	IsRevoked       bool              `bson:"is_revoked" json:"isRevoked"`
	PaymentIntentID string            `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
}

// ClientDocument is one entry in a client's document vault.
type ClientDocument struct {
	ID         string          `bson:"id" json:"id"`
	ClientID   string          `bson:"client_id" json:"clientId"`
	Type       string          `bson:"type" json:"type"`
	Title      string          `bson:"title" json:"title"`
	FileURL    string          `bson:"file_url,omitempty" json:"fileUrl,omitempty"`
	Invoice    *InvoiceDetails `bson:"invoice,omitempty" json:"invoice,omitempty"`
	UploadedAt time.Time       `bson:"uploaded_at" json:"uploadedAt"`
	UpdatedAt  time.Time       `bson:"updated_at" json:"updatedAt"`
}

// ValidDocType reports whether t is a recognized vault document type.
func ValidDocType(t string) bool {
	switch t {
	case DocTypeInvoice, DocTypeBrief, DocTypeContract, DocTypeOther:
		return true
	}
	return false
}
