package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audio is an uploaded track with its bytes embedded in the record.
type Audio struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Artist      string             `bson:"artist" json:"artist"`
	Genre       string             `bson:"genre" json:"genre"`
	File        FileBlob           `bson:"file" json:"file"`
	Duration    float64            `bson:"duration,omitempty" json:"duration,omitempty"` // seconds; not populated by any route yet
	Format      string             `bson:"format,omitempty" json:"format,omitempty"`
	Plays       int                `bson:"plays" json:"plays"`
	Likes       int                `bson:"likes" json:"likes"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
