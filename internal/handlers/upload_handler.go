package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage handles POST /upload. The multipart field is named "product"
// and the response carries the public URL the catalog stores.
func (h *Handlers) UploadImage(c *gin.Context) {
	file, err := c.FormFile("product")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": 0, "errors": "No file uploaded"})
		return
	}

	if _, err := os.Stat(h.Config.UploadDir); os.IsNotExist(err) {
		os.MkdirAll(h.Config.UploadDir, 0755)
	}

	// Unique filename: field name + uuid keeps uploads collision-free.
	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("product_%s%s", uuid.New().String(), ext)
	savePath := filepath.Join(h.Config.UploadDir, newFilename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": 0, "errors": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   1,
		"image_url": fmt.Sprintf("%s/images/%s", h.Config.BaseURL, newFilename),
	})
}
