package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TVImage represents one slide of the TV display rotation
type TVImage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	ImageURL     string             `bson:"imageUrl" json:"image_url"`
	DisplayOrder int                `bson:"displayOrder" json:"display_order"`
	Active       bool               `bson:"active" json:"active"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updated_at"`
}
