package services

import (
	"context"

	"trivia/internal/datastore"
	"trivia/internal/models"
	"trivia/internal/pkg/caching"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceCategory struct {
	container  *do.Injector
	postgresDB *bun.DB
	cache      caching.Cache
}

func NewServiceCategory(container *do.Injector) (*ServiceCategory, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceCategory{container, postgresDB, cache}, nil
}

// GetCategories lists every category by ascending id. An empty list is not an error here.
func (service *ServiceCategory) GetCategories(ctx context.Context) ([]*models.Category, error) {
	callback := func() ([]*models.Category, error) {
		return datastore.GetCategories(ctx, service.postgresDB)
	}

	categories, err := caching.UseCache(ctx, service.cache, DBKeyCategories, CACHE_TTL_5_MINS, callback)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Database)
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return categories, nil
}

func (service *ServiceCategory) CountCategories(ctx context.Context) (int, error) {
	total, err := datastore.CountCategories(ctx, service.postgresDB)
	if err != nil {
		return 0, errorx.Wrap(err, errorx.Database)
	}
	return total, nil
}

func (service *ServiceCategory) CreateCategory(ctx context.Context, categoryType string) (int64, error) {
	id, err := datastore.InsertCategory(ctx, service.postgresDB, &models.Category{Type: categoryType})
	if err != nil {
		return 0, errorx.Wrap(err, errorx.Database)
	}

	//nolint:errcheck
	service.cache.Delete(ctx, DBKeyCategories)
	return id, nil
}
