package services

import (
	"context"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TVImageService handles TV slideshow business logic
type TVImageService struct {
	tvImageRepo repositories.TVImageRepository
}

// NewTVImageService creates a new TVImageService
func NewTVImageService(tvImageRepo repositories.TVImageRepository) *TVImageService {
	return &TVImageService{
		tvImageRepo: tvImageRepo,
	}
}

// GetTVImageByID retrieves a TV image by ID
func (s *TVImageService) GetTVImageByID(ctx context.Context, id primitive.ObjectID) (*models.TVImage, error) {
	return s.tvImageRepo.FindByID(ctx, id)
}

// GetAllTVImages retrieves all TV images ordered by display order
func (s *TVImageService) GetAllTVImages(ctx context.Context) ([]*models.TVImage, error) {
	return s.tvImageRepo.FindAll(ctx)
}

// GetActiveTVImages retrieves the active slides for the TV display
func (s *TVImageService) GetActiveTVImages(ctx context.Context) ([]*models.TVImage, error) {
	return s.tvImageRepo.FindActive(ctx)
}

// CreateTVImage creates a new TV image
func (s *TVImageService) CreateTVImage(ctx context.Context, image *models.TVImage) error {
	return s.tvImageRepo.Create(ctx, image)
}

// UpdateTVImage updates a TV image
func (s *TVImageService) UpdateTVImage(ctx context.Context, image *models.TVImage) error {
	return s.tvImageRepo.Update(ctx, image)
}

// DeleteTVImage deletes a TV image
func (s *TVImageService) DeleteTVImage(ctx context.Context, id primitive.ObjectID) error {
	return s.tvImageRepo.Delete(ctx, id)
}
