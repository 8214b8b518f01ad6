package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"gatherly/services/storage"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageUploadBytes = 10 << 20 // 10 MB

// StorageHandler serves image upload endpoints for chat attachments.
type StorageHandler struct {
	Service storage.StorageService
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadImageHandler handles POST /api/storage/images. The image arrives as
// multipart form field "image"; it is staged to a temp file and handed to the
// storage backend. The response carries the public ID and delivery URL the
// client then embeds in an image message.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	logger := utils.GetLogger().Sugar()

	userID := currentUserID(c)
	if userID == "" {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the 10MB limit"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		logger.Errorf("Failed to stage uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, url, err := h.Service.UploadImage(c.Request.Context(), tmpPath, "chat_images")
	if err != nil {
		logger.Errorf("Image upload failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId": publicID,
		"url":      url,
	})
}
