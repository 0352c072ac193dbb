package documents

import (
	"fmt"
	"net/http"
	"path/filepath"

	"lexsuite-app/database"
	"lexsuite-app/internal/domain/documents"
	"lexsuite-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 25 << 20 // 25 MiB

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func mustStore(c *gin.Context) (*storage.DocumentStore, bool) {
	if storage.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document storage not configured"})
		return nil, false
	}
	return storage.Store, true
}

// GET /documents
func ListDocuments(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	query := database.DB.Where("user_id = ?", userID)
	if caseID := c.Query("case_id"); caseID != "" {
		query = query.Where("case_id = ?", caseID)
	}

	var list []documents.Document
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load documents"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /documents (multipart, plan-limit gated in routes)
func UploadDocument(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	store, ok := mustStore(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	var caseID *string
	if v := c.PostForm("case_id"); v != "" {
		caseID = &v
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}
	defer f.Close()

	key := fmt.Sprintf("%s/%s%s", userID, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	if err := store.Upload(c.Request.Context(), key, contentType, f, fileHeader.Size); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store document"})
		return
	}

	doc := documents.Document{
		UserID:      userID,
		CaseID:      caseID,
		Name:        fileHeader.Filename,
		StoragePath: key,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
	}

	if err := database.DB.Create(&doc).Error; err != nil {
		// metadata failed; don't leave an orphan object behind
		_ = store.Delete(c.Request.Context(), key)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document record"})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// GET /documents/:id/download
func DownloadDocument(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	store, ok := mustStore(c)
	if !ok {
		return
	}

	var doc documents.Document
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&doc).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	url, err := store.PresignDownload(c.Request.Context(), doc.StoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate download link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DELETE /documents/:id
func DeleteDocument(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	store, ok := mustStore(c)
	if !ok {
		return
	}

	var doc documents.Document
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&doc).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if err := store.Delete(c.Request.Context(), doc.StoragePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stored object"})
		return
	}

	if err := database.DB.Delete(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
