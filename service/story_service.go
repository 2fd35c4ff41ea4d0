package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

type StoryService struct {
	store domain.StoryStore
}

func NewStoryService(store domain.StoryStore) *StoryService {
	return &StoryService{
		store: store,
	}
}

func (service *StoryService) Add(ctx context.Context, story *domain.Story) (*domain.InsertResult, error) {
	return service.store.Insert(ctx, story)
}

func (service *StoryService) GetAll(ctx context.Context) ([]*domain.Story, error) {
	return service.store.GetAll(ctx)
}

func (service *StoryService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	return service.store.Get(ctx, id)
}
