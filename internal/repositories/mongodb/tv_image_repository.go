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

// TVImageRepository implements the repositories.TVImageRepository interface
type TVImageRepository struct {
	collection *mongo.Collection
}

// NewTVImageRepository creates a new TVImageRepository
func NewTVImageRepository(db *mongo.Database) repositories.TVImageRepository {
	return &TVImageRepository{
		collection: db.Collection("tv_images"),
	}
}

// Create creates a new TV image
func (r *TVImageRepository) Create(ctx context.Context, image *models.TVImage) error {
	image.CreatedAt = time.Now()
	image.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, image)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		image.ID = oid
	}
	return nil
}

// Update replaces a TV image document
func (r *TVImageRepository) Update(ctx context.Context, image *models.TVImage) error {
	image.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": image.ID}, image)
	return err
}

// FindByID finds a TV image by ID
func (r *TVImageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TVImage, error) {
	var image models.TVImage
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&image)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// FindAll finds all TV images ordered by display order
func (r *TVImageRepository) FindAll(ctx context.Context) ([]*models.TVImage, error) {
	return r.find(ctx, bson.M{})
}

// FindActive finds active TV images ordered by display order
func (r *TVImageRepository) FindActive(ctx context.Context) ([]*models.TVImage, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *TVImageRepository) find(ctx context.Context, filter bson.M) ([]*models.TVImage, error) {
	opts := options.Find().SetSort(bson.M{"displayOrder": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var images []*models.TVImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	if images == nil {
		images = []*models.TVImage{}
	}
	return images, nil
}

// Delete deletes a TV image
func (r *TVImageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
