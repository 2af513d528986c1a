package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"akplaw/services/storage"
	"akplaw/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves admin file uploads for site media and vault
// attachments.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// allowedBuckets defines permitted buckets for uploads.
var allowedBuckets = map[string]bool{
	"images":    true,
	"documents": true,
}

// tempUploadPath returns a temp-dir location for a client upload. Base
// strips any path components a client smuggles into the filename.
func tempUploadPath(filename string) string {
	return filepath.Join(os.TempDir(), filepath.Base(filename))
}

// UploadFileHandler handles POST /api/admin/storage/:bucket.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, "invalid bucket", "allowed values are 'images' and 'documents'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := tempUploadPath(fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	resourceType := "raw"
	if bucket == "images" {
		resourceType = "image"
	}

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "site/"+bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, resourceType, publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"publicId":    publicID,
		"downloadURL": downloadURL,
	})
}

// GetDownloadURLHandler handles GET /api/admin/storage/:bucket/url.
func (h *StorageHandler) GetDownloadURLHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, "invalid bucket", "allowed values are 'images' and 'documents'")
		return
	}
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId query parameter is required"})
		return
	}

	resourceType := "raw"
	if bucket == "images" {
		resourceType = "image"
	}

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	url, err := h.StorageSvc.GetDownloadURL(c, resourceType, publicID, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate download URL", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeleteFileHandler handles DELETE /api/admin/storage/:bucket.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId query parameter is required"})
		return
	}
	if err := h.StorageSvc.DeleteFile(c, publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
