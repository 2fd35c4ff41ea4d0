package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

const WISHLISTS_COLLECTION = "wishlists"

type WishMongoDBStore struct {
	wishes *mongo.Collection
	tracer trace.Tracer
}

func NewWishMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.WishStore {
	wishes := client.Database(DATABASE).Collection(WISHLISTS_COLLECTION)
	return &WishMongoDBStore{
		wishes: wishes,
		tracer: tracer,
	}
}

func (store *WishMongoDBStore) Insert(ctx context.Context, wish *domain.Wish) (*domain.InsertResult, error) {
	ctx, span := store.tracer.Start(ctx, "WishStore.Insert")
	defer span.End()

	wish.ID = primitive.NewObjectID()
	result, err := store.wishes.InsertOne(ctx, wish)
	if err != nil {
		return nil, err
	}

	return &domain.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (store *WishMongoDBStore) GetByUser(ctx context.Context, email string) ([]*domain.Wish, error) {
	ctx, span := store.tracer.Start(ctx, "WishStore.GetByUser")
	defer span.End()

	filter := bson.M{"user": email}

	cursor, err := store.wishes.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	wishes := []*domain.Wish{}
	for cursor.Next(ctx) {
		var wish domain.Wish
		if err := cursor.Decode(&wish); err != nil {
			return nil, err
		}
		wishes = append(wishes, &wish)
	}
	return wishes, cursor.Err()
}

func (store *WishMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	ctx, span := store.tracer.Start(ctx, "WishStore.Delete")
	defer span.End()

	filter := bson.M{"_id": id}
	result, err := store.wishes.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}
