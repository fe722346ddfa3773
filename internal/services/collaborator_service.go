package services

import (
	"context"
	"strings"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollaboratorService handles employee directory business logic
type CollaboratorService struct {
	collaboratorRepo repositories.CollaboratorRepository
}

// NewCollaboratorService creates a new CollaboratorService
func NewCollaboratorService(collaboratorRepo repositories.CollaboratorRepository) *CollaboratorService {
	return &CollaboratorService{
		collaboratorRepo: collaboratorRepo,
	}
}

// GetCollaboratorByID retrieves a collaborator by ID
func (s *CollaboratorService) GetCollaboratorByID(ctx context.Context, id primitive.ObjectID) (*models.Collaborator, error) {
	return s.collaboratorRepo.FindByID(ctx, id)
}

// GetAllCollaborators retrieves all collaborators, pinned first
func (s *CollaboratorService) GetAllCollaborators(ctx context.Context) ([]*models.Collaborator, error) {
	return s.collaboratorRepo.FindAll(ctx)
}

// SearchCollaborators filters collaborators by a case-insensitive substring
// over name and position. An empty term returns everyone.
func (s *CollaboratorService) SearchCollaborators(ctx context.Context, term string) ([]*models.Collaborator, error) {
	collaborators, err := s.collaboratorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return collaborators, nil
	}

	needle := strings.ToLower(term)
	filtered := make([]*models.Collaborator, 0, len(collaborators))
	for _, c := range collaborators {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Position), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// CreateCollaborator creates a new collaborator
func (s *CollaboratorService) CreateCollaborator(ctx context.Context, collaborator *models.Collaborator) error {
	return s.collaboratorRepo.Create(ctx, collaborator)
}

// UpdateCollaborator updates a collaborator
func (s *CollaboratorService) UpdateCollaborator(ctx context.Context, collaborator *models.Collaborator) error {
	return s.collaboratorRepo.Update(ctx, collaborator)
}

// DeleteCollaborator deletes a collaborator
func (s *CollaboratorService) DeleteCollaborator(ctx context.Context, id primitive.ObjectID) error {
	return s.collaboratorRepo.Delete(ctx, id)
}
