// Package dbtest opens throwaway trivia databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"trivia/internal/datastore"
	"trivia/internal/models"

	"github.com/uptrace/bun"
)

// Open returns a fresh SQLite database with the trivia schema, closed when the test ends.
func Open(t testing.TB) *bun.DB {
	t.Helper()

	db, err := datastore.OpenSQLite(filepath.Join(t.TempDir(), "trivia.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := datastore.CreateTables(context.Background(), db); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

func SeedCategories(t testing.TB, db *bun.DB, types ...string) []*models.Category {
	t.Helper()

	categories := make([]*models.Category, 0, len(types))
	for _, typ := range types {
		category := &models.Category{Type: typ}
		if _, err := datastore.InsertCategory(context.Background(), db, category); err != nil {
			t.Fatalf("insert category %q: %v", typ, err)
		}
		categories = append(categories, category)
	}
	return categories
}

func SeedQuestions(t testing.TB, db *bun.DB, questions ...*models.Question) []*models.Question {
	t.Helper()

	for _, question := range questions {
		if _, err := datastore.InsertQuestion(context.Background(), db, question); err != nil {
			t.Fatalf("insert question %q: %v", question.Question, err)
		}
	}
	return questions
}

// NumberedQuestions builds n questions of one category named "<prefix> 1".."<prefix> n".
func NumberedQuestions(prefix string, category int64, n int) []*models.Question {
	questions := make([]*models.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, &models.Question{
			Question:   prefix + " " + strconv.Itoa(i),
			Answer:     "answer " + strconv.Itoa(i),
			Category:   category,
			Difficulty: 1 + i%5,
			Rating:     1 + i%5,
		})
	}
	return questions
}

