package mongodb

import (
	"context"
	"time"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DownloadRepository implements the repositories.DownloadRepository interface
type DownloadRepository struct {
	collection *mongo.Collection
}

// NewDownloadRepository creates a new DownloadRepository
func NewDownloadRepository(db *mongo.Database) repositories.DownloadRepository {
	return &DownloadRepository{
		collection: db.Collection("downloads"),
	}
}

// Create creates a new download entry
func (r *DownloadRepository) Create(ctx context.Context, download *models.Download) error {
	download.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, download)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		download.ID = oid
	}
	return nil
}

// FindByID finds a download entry by ID
func (r *DownloadRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Download, error) {
	var download models.Download
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&download)
	if err != nil {
		return nil, err
	}
	return &download, nil
}

// FindAll finds download entries, newest first, optionally filtered by file type
func (r *DownloadRepository) FindAll(ctx context.Context, fileType string) ([]*models.Download, error) {
	filter := bson.M{}
	if fileType != "" {
		filter["fileType"] = fileType
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var downloads []*models.Download
	if err := cursor.All(ctx, &downloads); err != nil {
		return nil, err
	}
	if downloads == nil {
		downloads = []*models.Download{}
	}
	return downloads, nil
}

// Delete deletes a download entry
func (r *DownloadRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
