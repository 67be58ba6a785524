package datastore

import (
	"context"

	"trivia/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableCategory(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Category)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func GetCategories(ctx context.Context, db bun.IDB) ([]*models.Category, error) {
	categories := []*models.Category{}
	err := db.NewSelect().Model(&categories).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func CountCategories(ctx context.Context, db bun.IDB) (int, error) {
	return db.NewSelect().Model((*models.Category)(nil)).Count(ctx)
}

func InsertCategory(ctx context.Context, db bun.IDB, category *models.Category) (int64, error) {
	_, err := db.NewInsert().Model(category).Exec(ctx)
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}
