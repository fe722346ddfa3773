package handlers

import (
	"net/http"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TVImageHandler handles TV slideshow HTTP requests
type TVImageHandler struct {
	tvImageService *services.TVImageService
}

// NewTVImageHandler creates a new TVImageHandler
func NewTVImageHandler(tvImageService *services.TVImageService) *TVImageHandler {
	return &TVImageHandler{
		tvImageService: tvImageService,
	}
}

// GetActiveTVImages handles GET /tv-images. The TV display polls this.
func (h *TVImageHandler) GetActiveTVImages(c *gin.Context) {
	images, err := h.tvImageService.GetActiveTVImages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get TV images: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, images)
}

// GetAllTVImages handles GET /tv-images/all for the admin panel
func (h *TVImageHandler) GetAllTVImages(c *gin.Context) {
	images, err := h.tvImageService.GetAllTVImages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get TV images: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, images)
}

// CreateTVImage handles POST /tv-images
func (h *TVImageHandler) CreateTVImage(c *gin.Context) {
	var image models.TVImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tvImageService.CreateTVImage(c.Request.Context(), &image); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create TV image: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// UpdateTVImage handles PUT /tv-images/:id
func (h *TVImageHandler) UpdateTVImage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var image models.TVImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image.ID = id

	if err := h.tvImageService.UpdateTVImage(c.Request.Context(), &image); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update TV image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, image)
}

// DeleteTVImage handles DELETE /tv-images/:id
func (h *TVImageHandler) DeleteTVImage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.tvImageService.DeleteTVImage(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete TV image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "TV image deleted"})
}
