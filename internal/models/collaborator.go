package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collaborator represents an employee in the company directory
type Collaborator struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Position     string             `bson:"position" json:"position"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Instagram    string             `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Observations string             `bson:"observations,omitempty" json:"observations,omitempty"`
	PhotoURL     string             `bson:"photoUrl,omitempty" json:"photo_url,omitempty"`
	OnVacation   bool               `bson:"onVacation" json:"on_vacation"`
	Pinned       bool               `bson:"pinned" json:"pinned"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updated_at"`
}
