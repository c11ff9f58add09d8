package repository

import (
	"context"
	"errors"

	"github.com/fathima-sithara/media-gallery/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by find and delete operations when no record
// matches the given id.
var ErrNotFound = errors.New("record not found")

// PaintingRepository defines the interface for painting data operations.
type PaintingRepository interface {
	Insert(ctx context.Context, p *models.Painting) error
	FindAll(ctx context.Context) ([]models.Painting, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Painting, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// AudioRepository defines the interface for audio data operations.
type AudioRepository interface {
	Insert(ctx context.Context, a *models.Audio) error
	FindAll(ctx context.Context) ([]models.Audio, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Audio, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// DanceVideoRepository defines the interface for dance video data operations.
type DanceVideoRepository interface {
	Insert(ctx context.Context, v *models.DanceVideo) error
	FindAll(ctx context.Context) ([]models.DanceVideo, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DanceVideo, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
