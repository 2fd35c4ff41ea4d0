package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

type BookingService struct {
	store domain.BookingStore
}

func NewBookingService(store domain.BookingStore) *BookingService {
	return &BookingService{
		store: store,
	}
}

func (service *BookingService) Add(ctx context.Context, booking *domain.Booking) (*domain.InsertResult, error) {
	return service.store.Insert(ctx, booking)
}

func (service *BookingService) GetByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	return service.store.GetByEmail(ctx, email)
}

func (service *BookingService) GetAssigned(ctx context.Context, guideEmail string) ([]*domain.Booking, error) {
	return service.store.GetAssigned(ctx, guideEmail)
}

// Cancel and Accept overwrite the status unconditionally. There is no state
// machine guarding transitions, a rejected booking can be accepted again.
func (service *BookingService) Cancel(ctx context.Context, id primitive.ObjectID) (*domain.UpdateResult, error) {
	return service.store.SetStatus(ctx, id, domain.Rejected)
}

func (service *BookingService) Accept(ctx context.Context, id primitive.ObjectID) (*domain.UpdateResult, error) {
	return service.store.SetStatus(ctx, id, domain.Accepted)
}
