package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DanceVideo references its file on disk instead of embedding the bytes;
// FileURL points into the /uploads static mount.
type DanceVideo struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Choreographer string             `bson:"choreographer" json:"choreographer"`
	Genre         string             `bson:"genre" json:"genre"`
	Tags          []string           `bson:"tags" json:"tags"`
	FileURL       string             `bson:"fileUrl" json:"file_url"`
	UploadDate    time.Time          `bson:"uploadDate" json:"upload_date"`
}
