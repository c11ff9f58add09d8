package repository

import (
	"context"
	"time"

	"github.com/fathima-sithara/media-gallery/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoDanceVideoRepo struct {
	col *mongo.Collection
}

func NewMongoDanceVideoRepo(db *mongo.Database) DanceVideoRepository {
	return &mongoDanceVideoRepo{col: db.Collection("dancevideos")}
}

func (r *mongoDanceVideoRepo) Insert(ctx context.Context, v *models.DanceVideo) error {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	if v.UploadDate.IsZero() {
		v.UploadDate = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, v)
	return err
}

func (r *mongoDanceVideoRepo) FindAll(ctx context.Context) ([]models.DanceVideo, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var videos []models.DanceVideo
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *mongoDanceVideoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DanceVideo, error) {
	var v models.DanceVideo
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *mongoDanceVideoRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
