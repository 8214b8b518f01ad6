package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a new CloudinaryStorageService instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadImage uploads a file to Cloudinary into the specified folder.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, localFilePath, destFolder string) (string, string, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", "", fmt.Errorf("CloudinaryStorageService: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("CloudinaryStorageService: no public ID returned")
	}
	return result.PublicID, result.SecureURL, nil
}

// DeleteImage deletes a file from Cloudinary given its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStorageService: failed to delete file %s: %w", publicID, err)
	}
	return nil
}
