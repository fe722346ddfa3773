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

// CollaboratorRepository implements the repositories.CollaboratorRepository interface
type CollaboratorRepository struct {
	collection *mongo.Collection
}

// NewCollaboratorRepository creates a new CollaboratorRepository
func NewCollaboratorRepository(db *mongo.Database) repositories.CollaboratorRepository {
	return &CollaboratorRepository{
		collection: db.Collection("collaborators"),
	}
}

// Create creates a new collaborator
func (r *CollaboratorRepository) Create(ctx context.Context, collaborator *models.Collaborator) error {
	collaborator.CreatedAt = time.Now()
	collaborator.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, collaborator)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		collaborator.ID = oid
	}
	return nil
}

// Update replaces a collaborator document
func (r *CollaboratorRepository) Update(ctx context.Context, collaborator *models.Collaborator) error {
	collaborator.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": collaborator.ID}, collaborator)
	return err
}

// FindByID finds a collaborator by ID
func (r *CollaboratorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Collaborator, error) {
	var collaborator models.Collaborator
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&collaborator)
	if err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// FindAll finds all collaborators, pinned first then by name
func (r *CollaboratorRepository) FindAll(ctx context.Context) ([]*models.Collaborator, error) {
	opts := options.Find().SetSort(bson.D{{Key: "pinned", Value: -1}, {Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var collaborators []*models.Collaborator
	if err := cursor.All(ctx, &collaborators); err != nil {
		return nil, err
	}
	if collaborators == nil {
		collaborators = []*models.Collaborator{}
	}
	return collaborators, nil
}

// Delete deletes a collaborator
func (r *CollaboratorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
