package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

const USERS_COLLECTION = "users"

type UserMongoDBStore struct {
	users  *mongo.Collection
	tracer trace.Tracer
}

func NewUserMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.UserStore {
	users := client.Database(DATABASE).Collection(USERS_COLLECTION)
	return &UserMongoDBStore{
		users:  users,
		tracer: tracer,
	}
}

func (store *UserMongoDBStore) Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.Insert")
	defer span.End()

	user.ID = primitive.NewObjectID()
	result, err := store.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	return &domain.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (store *UserMongoDBStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.GetByEmail")
	defer span.End()

	filter := bson.M{"email": email}
	return store.filterOne(ctx, filter)
}

func (store *UserMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.Get")
	defer span.End()

	filter := bson.M{"_id": id}
	return store.filterOne(ctx, filter)
}

func (store *UserMongoDBStore) GetAllNonAdmin(ctx context.Context) ([]*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.GetAllNonAdmin")
	defer span.End()

	filter := bson.M{"role": bson.M{"$ne": string(domain.Admin)}}
	return store.filter(ctx, filter)
}

func (store *UserMongoDBStore) GetGuides(ctx context.Context) ([]*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.GetGuides")
	defer span.End()

	// Tourists created before any promotion carry no role field, so the
	// exclusion needs $exists on top of $nin.
	filter := bson.M{"role": bson.M{
		"$nin":    []string{string(domain.Admin), string(domain.Tourist)},
		"$exists": true,
	}}
	return store.filter(ctx, filter)
}

func (store *UserMongoDBStore) SetRole(ctx context.Context, id primitive.ObjectID, role domain.UserRole) (*domain.UpdateResult, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.SetRole")
	defer span.End()

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"role": string(role)}}

	result, err := store.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}

	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (store *UserMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.User, error) {
	cursor, err := store.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeUsers(ctx, cursor)
}

func (store *UserMongoDBStore) filterOne(ctx context.Context, filter interface{}) (*domain.User, error) {
	result := store.users.FindOne(ctx, filter)

	var user domain.User
	if err := result.Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func decodeUsers(ctx context.Context, cursor *mongo.Cursor) ([]*domain.User, error) {
	users := []*domain.User{}
	for cursor.Next(ctx) {
		var user domain.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, cursor.Err()
}
