package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/fathima-sithara/media-gallery/internal/media"
	"github.com/fathima-sithara/media-gallery/internal/models"
	"github.com/fathima-sithara/media-gallery/internal/repository"
	"github.com/fathima-sithara/media-gallery/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DanceVideoUpload carries the form fields of a dance video upload.
type DanceVideoUpload struct {
	Title         string
	Description   string
	Choreographer string
	Genre         string
	Tags          string // comma-separated
}

type DanceVideoService struct {
	repo  repository.DanceVideoRepository
	store *storage.DiskStore
}

func NewDanceVideoService(repo repository.DanceVideoRepository, store *storage.DiskStore) *DanceVideoService {
	return &DanceVideoService{repo: repo, store: store}
}

// Upload validates the video and stages it on disk. The record stores only
// the /uploads URL of the staged file; the bytes stay on disk and are never
// embedded or cleaned up, so playback depends on the file remaining there.
func (s *DanceVideoService) Upload(ctx context.Context, in DanceVideoUpload, fh *multipart.FileHeader) (*models.DanceVideo, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if err := media.ValidateVideo(fh); err != nil {
		return nil, err
	}
	staged, err := s.store.Save("file", fh)
	if err != nil {
		return nil, err
	}

	v := &models.DanceVideo{
		Title:         in.Title,
		Description:   in.Description,
		Choreographer: defaultUnknown(in.Choreographer),
		Genre:         defaultUnknown(in.Genre),
		Tags:          splitTags(in.Tags, true),
		FileURL:       s.store.URL(staged),
	}
	if err := s.repo.Insert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *DanceVideoService) List(ctx context.Context) ([]models.DanceVideo, error) {
	return s.repo.FindAll(ctx)
}

func (s *DanceVideoService) Get(ctx context.Context, id primitive.ObjectID) (*models.DanceVideo, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete removes the record only; the staged video file is left behind.
func (s *DanceVideoService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}
