package clientdocRepo

import "akplaw/models"

// ClientDocRepository defines data access for the per-client document vault.
type ClientDocRepository interface {
	Create(doc *models.ClientDocument) error
	GetByID(id string) (*models.ClientDocument, error)
	// GetByClient lists a single client's vault entries, newest first.
	GetByClient(clientID string) ([]models.ClientDocument, error)
	GetAll() ([]models.ClientDocument, error)
	Update(doc *models.ClientDocument) error
	Delete(id string) error
}
