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

// AudioUpload carries the form fields of a music upload.
type AudioUpload struct {
	Title       string
	Description string
	Artist      string
	Genre       string
	Tags        string // comma-separated
}

type AudioService struct {
	repo  repository.AudioRepository
	store *storage.DiskStore
}

func NewAudioService(repo repository.AudioRepository, store *storage.DiskStore) *AudioService {
	return &AudioService{repo: repo, store: store}
}

// Upload validates the track, stages it on disk, embeds the bytes in a new
// audio record and removes the staged file.
func (s *AudioService) Upload(ctx context.Context, in AudioUpload, fh *multipart.FileHeader) (*models.Audio, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := media.ValidateAudio(fh); err != nil {
		return nil, err
	}
	staged, err := s.store.Save("file", fh)
	if err != nil {
		return nil, err
	}
	data, err := s.store.ReadAndRemove(staged)
	if err != nil {
		return nil, err
	}

	a := &models.Audio{
		Title:       in.Title,
		Description: in.Description,
		Artist:      defaultUnknown(in.Artist),
		Genre:       defaultUnknown(in.Genre),
		File: models.FileBlob{
			Data:        data,
			ContentType: fh.Header.Get("Content-Type"),
		},
		Tags: splitTags(in.Tags, false),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AudioService) List(ctx context.Context) ([]models.Audio, error) {
	return s.repo.FindAll(ctx)
}

func (s *AudioService) Get(ctx context.Context, id primitive.ObjectID) (*models.Audio, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AudioService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}

func defaultUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}

// splitTags parses a comma-separated tag field; dance uploads trim each tag,
// music uploads keep them as typed.
func splitTags(raw string, trim bool) []string {
	if raw == "" {
		return []string{}
	}
	tags := strings.Split(raw, ",")
	if trim {
		for i := range tags {
			tags[i] = strings.TrimSpace(tags[i])
		}
	}
	return tags
}
