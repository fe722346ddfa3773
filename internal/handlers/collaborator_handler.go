package handlers

import (
	"net/http"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollaboratorHandler handles employee directory HTTP requests
type CollaboratorHandler struct {
	collaboratorService *services.CollaboratorService
}

// NewCollaboratorHandler creates a new CollaboratorHandler
func NewCollaboratorHandler(collaboratorService *services.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{
		collaboratorService: collaboratorService,
	}
}

// GetCollaborators handles GET /collaborators with an optional ?search= term
func (h *CollaboratorHandler) GetCollaborators(c *gin.Context) {
	term := c.Query("search")

	collaborators, err := h.collaboratorService.SearchCollaborators(c.Request.Context(), term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get collaborators: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, collaborators)
}

// GetCollaboratorByID handles GET /collaborators/:id
func (h *CollaboratorHandler) GetCollaboratorByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	collaborator, err := h.collaboratorService.GetCollaboratorByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collaborator not found"})
		return
	}

	c.JSON(http.StatusOK, collaborator)
}

// CreateCollaborator handles POST /collaborators
func (h *CollaboratorHandler) CreateCollaborator(c *gin.Context) {
	var collaborator models.Collaborator
	if err := c.ShouldBindJSON(&collaborator); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.collaboratorService.CreateCollaborator(c.Request.Context(), &collaborator); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collaborator: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, collaborator)
}

// UpdateCollaborator handles PUT /collaborators/:id
func (h *CollaboratorHandler) UpdateCollaborator(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var collaborator models.Collaborator
	if err := c.ShouldBindJSON(&collaborator); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collaborator.ID = id

	if err := h.collaboratorService.UpdateCollaborator(c.Request.Context(), &collaborator); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collaborator: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, collaborator)
}

// DeleteCollaborator handles DELETE /collaborators/:id
func (h *CollaboratorHandler) DeleteCollaborator(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.collaboratorService.DeleteCollaborator(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collaborator: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collaborator deleted"})
}
