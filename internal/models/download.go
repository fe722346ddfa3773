package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Download represents one entry in the file-download catalog. Entries carry
// either a hosted file URL or an external link, never both.
type Download struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	FileType     string             `bson:"fileType" json:"file_type"` // pdf, doc, docx, image, apk
	FileURL      string             `bson:"fileUrl,omitempty" json:"file_url,omitempty"`
	ExternalLink string             `bson:"externalLink,omitempty" json:"external_link,omitempty"`
	FileSize     int64              `bson:"fileSize,omitempty" json:"file_size,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
}
