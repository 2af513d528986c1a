package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts the hosted file store used for resumes, photos,
// and vault attachments.
type StorageService interface {
	// UploadFile uploads a local file into destFolder and returns its
	// permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a retrievable URL for a stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
