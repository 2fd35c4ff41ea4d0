package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

const PACKAGES_COLLECTION = "packages"

type PackageMongoDBStore struct {
	packages *mongo.Collection
	tracer   trace.Tracer
}

func NewPackageMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.PackageStore {
	packages := client.Database(DATABASE).Collection(PACKAGES_COLLECTION)
	return &PackageMongoDBStore{
		packages: packages,
		tracer:   tracer,
	}
}

func (store *PackageMongoDBStore) Insert(ctx context.Context, tourPackage *domain.Package) (*domain.InsertResult, error) {
	ctx, span := store.tracer.Start(ctx, "PackageStore.Insert")
	defer span.End()

	tourPackage.ID = primitive.NewObjectID()
	result, err := store.packages.InsertOne(ctx, tourPackage)
	if err != nil {
		return nil, err
	}

	return &domain.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (store *PackageMongoDBStore) GetAll(ctx context.Context) ([]*domain.Package, error) {
	ctx, span := store.tracer.Start(ctx, "PackageStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *PackageMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	ctx, span := store.tracer.Start(ctx, "PackageStore.Get")
	defer span.End()

	filter := bson.M{"_id": id}
	result := store.packages.FindOne(ctx, filter)

	var tourPackage domain.Package
	if err := result.Decode(&tourPackage); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &tourPackage, nil
}

// GetByType is an exact match on the category field, no fuzzy or
// case-insensitive matching.
func (store *PackageMongoDBStore) GetByType(ctx context.Context, packageType string) ([]*domain.Package, error) {
	ctx, span := store.tracer.Start(ctx, "PackageStore.GetByType")
	defer span.End()

	filter := bson.M{"type": packageType}
	return store.filter(ctx, filter)
}

func (store *PackageMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Package, error) {
	cursor, err := store.packages.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	packages := []*domain.Package{}
	for cursor.Next(ctx) {
		var tourPackage domain.Package
		if err := cursor.Decode(&tourPackage); err != nil {
			return nil, err
		}
		packages = append(packages, &tourPackage)
	}
	return packages, cursor.Err()
}
