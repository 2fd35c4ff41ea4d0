package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

type PackageService struct {
	store domain.PackageStore
}

func NewPackageService(store domain.PackageStore) *PackageService {
	return &PackageService{
		store: store,
	}
}

func (service *PackageService) Add(ctx context.Context, tourPackage *domain.Package) (*domain.InsertResult, error) {
	return service.store.Insert(ctx, tourPackage)
}

func (service *PackageService) GetAll(ctx context.Context) ([]*domain.Package, error) {
	return service.store.GetAll(ctx)
}

func (service *PackageService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	return service.store.Get(ctx, id)
}

func (service *PackageService) GetByType(ctx context.Context, packageType string) ([]*domain.Package, error) {
	return service.store.GetByType(ctx, packageType)
}
