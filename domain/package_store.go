package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PackageStore interface {
	Insert(ctx context.Context, tourPackage *Package) (*InsertResult, error)
	GetAll(ctx context.Context) ([]*Package, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Package, error)
	GetByType(ctx context.Context, packageType string) ([]*Package, error)
}
