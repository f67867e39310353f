package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadFile uploads a file into the given folder and returns its
	// public URL and permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (url, publicID string, err error)
	// DeleteFile removes a previously uploaded file by its identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs the delivery URL for an uploaded file.
	GetDownloadURL(publicID string) (string, error)
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
