package repository

import (
	"context"
	"time"

	"github.com/fathima-sithara/media-gallery/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoPaintingRepo struct {
	col *mongo.Collection
}

func NewMongoPaintingRepo(db *mongo.Database) PaintingRepository {
	return &mongoPaintingRepo{col: db.Collection("paintings")}
}

func (r *mongoPaintingRepo) Insert(ctx context.Context, p *models.Painting) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *mongoPaintingRepo) FindAll(ctx context.Context) ([]models.Painting, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var paintings []models.Painting
	if err := cursor.All(ctx, &paintings); err != nil {
		return nil, err
	}
	return paintings, nil
}

func (r *mongoPaintingRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Painting, error) {
	var p models.Painting
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPaintingRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
