package services

import (
	"bytes"
	"context"
	"image"
	"mime/multipart"

	"github.com/disintegration/imaging"
	"github.com/fathima-sithara/media-gallery/internal/media"
	"github.com/fathima-sithara/media-gallery/internal/models"
	"github.com/fathima-sithara/media-gallery/internal/repository"
	"github.com/fathima-sithara/media-gallery/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaintingService struct {
	repo  repository.PaintingRepository
	store *storage.DiskStore
}

func NewPaintingService(repo repository.PaintingRepository, store *storage.DiskStore) *PaintingService {
	return &PaintingService{repo: repo, store: store}
}

// Upload validates the image, stages it on disk, embeds the bytes in a new
// painting record and removes the staged file. Nothing is persisted when
// validation fails.
func (s *PaintingService) Upload(ctx context.Context, name, desc string, fh *multipart.FileHeader) (*models.Painting, error) {
	if err := media.ValidateImage(fh); err != nil {
		return nil, err
	}
	staged, err := s.store.Save("image", fh)
	if err != nil {
		return nil, err
	}
	data, err := s.store.ReadAndRemove(staged)
	if err != nil {
		return nil, err
	}

	p := &models.Painting{
		Name:        name,
		Description: desc,
		Image: models.FileBlob{
			Data:        data,
			ContentType: fh.Header.Get("Content-Type"),
		},
	}
	if thumb, err := makeThumbnail(data); err == nil {
		p.Thumbnail = thumb
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaintingService) List(ctx context.Context) ([]models.Painting, error) {
	return s.repo.FindAll(ctx)
}

func (s *PaintingService) Get(ctx context.Context, id primitive.ObjectID) (*models.Painting, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaintingService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}

func makeThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
