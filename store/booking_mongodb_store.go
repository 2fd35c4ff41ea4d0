package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

const BOOKINGS_COLLECTION = "bookings"

type BookingMongoDBStore struct {
	bookings *mongo.Collection
	tracer   trace.Tracer
}

func NewBookingMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	bookings := client.Database(DATABASE).Collection(BOOKINGS_COLLECTION)
	return &BookingMongoDBStore{
		bookings: bookings,
		tracer:   tracer,
	}
}

func (store *BookingMongoDBStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.InsertResult, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Insert")
	defer span.End()

	booking.ID = primitive.NewObjectID()
	result, err := store.bookings.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}

	return &domain.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (store *BookingMongoDBStore) GetByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetByEmail")
	defer span.End()

	filter := bson.M{"email": email}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) GetAssigned(ctx context.Context, guideEmail string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetAssigned")
	defer span.End()

	filter := bson.M{
		"guide.email": guideEmail,
		"status":      bson.M{"$ne": string(domain.Rejected)},
	}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*domain.UpdateResult, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.SetStatus")
	defer span.End()

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": string(status)}}

	result, err := store.bookings.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}

	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (store *BookingMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Booking, error) {
	cursor, err := store.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []*domain.Booking{}
	for cursor.Next(ctx) {
		var booking domain.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}
	return bookings, cursor.Err()
}
