package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores chat image attachments.
type StorageService interface {
	// UploadImage uploads a local file into the given folder and returns the
	// permanent public identifier and the delivery URL.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (string, string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
