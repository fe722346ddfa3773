package handlers

import (
	"net/http"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DownloadHandler handles download catalog HTTP requests
type DownloadHandler struct {
	downloadService *services.DownloadService
}

// NewDownloadHandler creates a new DownloadHandler
func NewDownloadHandler(downloadService *services.DownloadService) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
	}
}

// GetDownloads handles GET /downloads with an optional ?type= filter
func (h *DownloadHandler) GetDownloads(c *gin.Context) {
	fileType := c.Query("type")

	downloads, err := h.downloadService.GetAllDownloads(c.Request.Context(), fileType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get downloads: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, downloads)
}

// CreateDownload handles POST /downloads
func (h *DownloadHandler) CreateDownload(c *gin.Context) {
	var download models.Download
	if err := c.ShouldBindJSON(&download); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.downloadService.CreateDownload(c.Request.Context(), &download); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, download)
}

// DeleteDownload handles DELETE /downloads/:id
func (h *DownloadHandler) DeleteDownload(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.downloadService.DeleteDownload(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete download: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Download deleted"})
}
