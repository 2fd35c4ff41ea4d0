package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

type WishService struct {
	store domain.WishStore
}

func NewWishService(store domain.WishStore) *WishService {
	return &WishService{
		store: store,
	}
}

func (service *WishService) Add(ctx context.Context, wish *domain.Wish) (*domain.InsertResult, error) {
	return service.store.Insert(ctx, wish)
}

func (service *WishService) GetByUser(ctx context.Context, email string) ([]*domain.Wish, error) {
	return service.store.GetByUser(ctx, email)
}

func (service *WishService) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	return service.store.Delete(ctx, id)
}
