package repository

import (
	"context"
	"time"

	"github.com/fathima-sithara/media-gallery/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoAudioRepo struct {
	col *mongo.Collection
}

func NewMongoAudioRepo(db *mongo.Database) AudioRepository {
	return &mongoAudioRepo{col: db.Collection("audios")}
}

func (r *mongoAudioRepo) Insert(ctx context.Context, a *models.Audio) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *mongoAudioRepo) FindAll(ctx context.Context) ([]models.Audio, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var audios []models.Audio
	if err := cursor.All(ctx, &audios); err != nil {
		return nil, err
	}
	return audios, nil
}

func (r *mongoAudioRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Audio, error) {
	var a models.Audio
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoAudioRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
