package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileBlob is a binary payload embedded in a document together with its
// declared MIME type. The two fields are always set together.
type FileBlob struct {
	Data        []byte `bson:"data" json:"-"`
	ContentType string `bson:"contentType" json:"content_type"`
}

// Painting is an uploaded image with its bytes embedded in the record.
type Painting struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"desc" json:"desc"`
	Image       FileBlob           `bson:"img" json:"img"`
	Thumbnail   []byte             `bson:"thumbnail,omitempty" json:"-"` // small JPEG for list pages, best-effort
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
