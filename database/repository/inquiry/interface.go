package inquiryRepo

import "akplaw/models"

// InquiryFilter narrows inquiry listings. Zero values mean "no constraint".
type InquiryFilter struct {
	Type   string
	Status string
}

// InquiryRepository defines data access for inbound leads.
type InquiryRepository interface {
	Create(inq *models.Inquiry) error
	GetByID(id string) (*models.Inquiry, error)
	// GetByReference looks up an inquiry by its public AKP-###### reference;
	// nil when no inquiry carries it.
	GetByReference(ref string) (*models.Inquiry, error)
	GetAll(filter InquiryFilter) ([]models.Inquiry, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
