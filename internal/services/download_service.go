package services

import (
	"context"
	"errors"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var allowedFileTypes = map[string]bool{
	"pdf":   true,
	"doc":   true,
	"docx":  true,
	"image": true,
	"apk":   true,
}

// DownloadService handles download catalog business logic
type DownloadService struct {
	downloadRepo repositories.DownloadRepository
}

// NewDownloadService creates a new DownloadService
func NewDownloadService(downloadRepo repositories.DownloadRepository) *DownloadService {
	return &DownloadService{
		downloadRepo: downloadRepo,
	}
}

// GetDownloadByID retrieves a download entry by ID
func (s *DownloadService) GetDownloadByID(ctx context.Context, id primitive.ObjectID) (*models.Download, error) {
	return s.downloadRepo.FindByID(ctx, id)
}

// GetAllDownloads retrieves download entries, optionally filtered by file type
func (s *DownloadService) GetAllDownloads(ctx context.Context, fileType string) ([]*models.Download, error) {
	return s.downloadRepo.FindAll(ctx, fileType)
}

// CreateDownload creates a new download entry
func (s *DownloadService) CreateDownload(ctx context.Context, download *models.Download) error {
	if !allowedFileTypes[download.FileType] {
		return errors.New("unsupported file type: " + download.FileType)
	}
	if download.FileURL == "" && download.ExternalLink == "" {
		return errors.New("a download needs a file URL or an external link")
	}
	return s.downloadRepo.Create(ctx, download)
}

// DeleteDownload deletes a download entry
func (s *DownloadService) DeleteDownload(ctx context.Context, id primitive.ObjectID) error {
	return s.downloadRepo.Delete(ctx, id)
}
