package datastore

import (
	"context"

	"github.com/uptrace/bun"
)

// CreateTables creates the trivia tables when they are missing. Existing tables are left untouched.
func CreateTables(ctx context.Context, db *bun.DB) error {
	if err := CreateTableCategory(ctx, db); err != nil {
		return err
	}
	return CreateTableQuestion(ctx, db)
}
