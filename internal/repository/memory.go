package repository

import (
	"context"
	"sync"
	"time"

	"github.com/fathima-sithara/media-gallery/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementations of the repositories, insertion-ordered. They back
// tests and local runs without a database.

type MemoryPaintingRepo struct {
	mu    sync.RWMutex
	items []models.Painting
}

func NewMemoryPaintingRepo() *MemoryPaintingRepo {
	return &MemoryPaintingRepo{}
}

func (r *MemoryPaintingRepo) Insert(_ context.Context, p *models.Painting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.items = append(r.items, *p)
	return nil
}

func (r *MemoryPaintingRepo) FindAll(_ context.Context) ([]models.Painting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Painting, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryPaintingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Painting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryPaintingRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type MemoryAudioRepo struct {
	mu    sync.RWMutex
	items []models.Audio
}

func NewMemoryAudioRepo() *MemoryAudioRepo {
	return &MemoryAudioRepo{}
}

func (r *MemoryAudioRepo) Insert(_ context.Context, a *models.Audio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	r.items = append(r.items, *a)
	return nil
}

func (r *MemoryAudioRepo) FindAll(_ context.Context) ([]models.Audio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Audio, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryAudioRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Audio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			a := r.items[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryAudioRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type MemoryDanceVideoRepo struct {
	mu    sync.RWMutex
	items []models.DanceVideo
}

func NewMemoryDanceVideoRepo() *MemoryDanceVideoRepo {
	return &MemoryDanceVideoRepo{}
}

func (r *MemoryDanceVideoRepo) Insert(_ context.Context, v *models.DanceVideo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	if v.UploadDate.IsZero() {
		v.UploadDate = time.Now().UTC()
	}
	r.items = append(r.items, *v)
	return nil
}

func (r *MemoryDanceVideoRepo) FindAll(_ context.Context) ([]models.DanceVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.DanceVideo, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryDanceVideoRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.DanceVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			v := r.items[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryDanceVideoRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
