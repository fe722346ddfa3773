package repositories

import (
	"context"

	"github.com/gazinassis/opshub-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignRepository defines the interface for sales-duel campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	Update(ctx context.Context, campaign *models.Campaign) error
	// UpdateMembers replaces both rosters wholesale; reconciliation never
	// patches individual members.
	UpdateMembers(ctx context.Context, id primitive.ObjectID, teamA, teamB []models.Member) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	// FindLatest returns the most recently created campaign, the active one.
	FindLatest(ctx context.Context) (*models.Campaign, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Campaign, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CollaboratorRepository defines the interface for employee directory data operations
type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *models.Collaborator) error
	Update(ctx context.Context, collaborator *models.Collaborator) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Collaborator, error)
	FindAll(ctx context.Context) ([]*models.Collaborator, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// DownloadRepository defines the interface for download catalog data operations
type DownloadRepository interface {
	Create(ctx context.Context, download *models.Download) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Download, error)
	FindAll(ctx context.Context, fileType string) ([]*models.Download, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TVImageRepository defines the interface for TV slideshow data operations
type TVImageRepository interface {
	Create(ctx context.Context, image *models.TVImage) error
	Update(ctx context.Context, image *models.TVImage) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.TVImage, error)
	FindAll(ctx context.Context) ([]*models.TVImage, error)
	FindActive(ctx context.Context) ([]*models.TVImage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AdminUserRepository defines the interface for admin account data operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}
