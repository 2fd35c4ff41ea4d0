package application

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
	errs "github.com/fahim-khandakar/explore-elite-server-side/errors"
)

// ErrUserExists reports an idempotent repeat registration. The handler turns
// it into a success body with a null insertedId, not an error status.
var ErrUserExists = errors.New(errs.UserAlreadyExist)

type UserService struct {
	store domain.UserStore
}

func NewUserService(store domain.UserStore) *UserService {
	return &UserService{
		store: store,
	}
}

// Register inserts a user unless one with the same email already exists.
// Check-then-insert, so uniqueness is best effort: two concurrent calls for
// the same email can both pass the check.
func (service *UserService) Register(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	existing, err := service.store.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	return service.store.Insert(ctx, user)
}

func (service *UserService) GetAllNonAdmin(ctx context.Context) ([]*domain.User, error) {
	return service.store.GetAllNonAdmin(ctx)
}

func (service *UserService) GetGuides(ctx context.Context) ([]*domain.User, error) {
	return service.store.GetGuides(ctx)
}

func (service *UserService) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return service.store.Get(ctx, id)
}

func (service *UserService) MakeAdmin(ctx context.Context, id primitive.ObjectID) (*domain.UpdateResult, error) {
	return service.store.SetRole(ctx, id, domain.Admin)
}

func (service *UserService) MakeGuide(ctx context.Context, id primitive.ObjectID) (*domain.UpdateResult, error) {
	return service.store.SetRole(ctx, id, domain.Guide)
}

func (service *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := service.store.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == domain.Admin, nil
}

func (service *UserService) IsGuide(ctx context.Context, email string) (bool, error) {
	user, err := service.store.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == domain.Guide, nil
}
