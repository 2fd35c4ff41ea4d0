package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoryStore interface {
	Insert(ctx context.Context, story *Story) (*InsertResult, error)
	GetAll(ctx context.Context) ([]*Story, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Story, error)
}
