package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStore interface {
	Insert(ctx context.Context, booking *Booking) (*InsertResult, error)
	GetByEmail(ctx context.Context, email string) ([]*Booking, error)
	// GetAssigned returns the bookings assigned to a guide, skipping the
	// rejected ones.
	GetAssigned(ctx context.Context, guideEmail string) ([]*Booking, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status BookingStatus) (*UpdateResult, error)
}
