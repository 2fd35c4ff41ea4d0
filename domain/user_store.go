package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	Insert(ctx context.Context, user *User) (*InsertResult, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetAllNonAdmin(ctx context.Context) ([]*User, error)
	GetGuides(ctx context.Context) ([]*User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role UserRole) (*UpdateResult, error)
}
