package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishStore interface {
	Insert(ctx context.Context, wish *Wish) (*InsertResult, error)
	GetByUser(ctx context.Context, email string) ([]*Wish, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
