package datastore

import (
	"context"
	"database/sql"
	"strings"

	"trivia/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableQuestion(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Question)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Question)(nil)).Index("index_questions_category").IfNotExists().Column("category").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func GetQuestion(ctx context.Context, db bun.IDB, questionID int64) (*models.Question, error) {
	var question models.Question
	err := db.NewSelect().Model(&question).Where("id = ?", questionID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func GetQuestions(ctx context.Context, db bun.IDB) ([]*models.Question, error) {
	questions := []*models.Question{}
	err := db.NewSelect().Model(&questions).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// SearchQuestions matches term anywhere in the question text, ignoring case.
func SearchQuestions(ctx context.Context, db bun.IDB, term string) ([]*models.Question, error) {
	questions := []*models.Question{}
	err := db.NewSelect().
		Model(&questions).
		Where("LOWER(question) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func GetQuestionsByCategory(ctx context.Context, db bun.IDB, categoryID int64) ([]*models.Question, error) {
	questions := []*models.Question{}
	err := db.NewSelect().Model(&questions).Where("category = ?", categoryID).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func GetQuestionsExcluding(ctx context.Context, db bun.IDB, categoryID int64, excluded []int64) ([]*models.Question, error) {
	questions := []*models.Question{}
	q := db.NewSelect().Model(&questions).Where("category = ?", categoryID)
	// NOT IN () is not portable, skip the clause instead
	if len(excluded) > 0 {
		q = q.Where("id NOT IN (?)", bun.In(excluded))
	}
	err := q.Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func CountQuestions(ctx context.Context, db bun.IDB) (int, error) {
	return db.NewSelect().Model((*models.Question)(nil)).Count(ctx)
}

func InsertQuestion(ctx context.Context, db bun.IDB, question *models.Question) (int64, error) {
	_, err := db.NewInsert().Model(question).Exec(ctx)
	if err != nil {
		return 0, err
	}
	return question.ID, nil
}

func UpdateQuestion(ctx context.Context, db bun.IDB, question *models.Question) error {
	res, err := db.NewUpdate().Model(question).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	return noRowsIfUnaffected(res)
}

// DeleteQuestion returns sql.ErrNoRows when nothing was deleted.
func DeleteQuestion(ctx context.Context, db bun.IDB, questionID int64) error {
	res, err := db.NewDelete().Model((*models.Question)(nil)).Where("id = ?", questionID).Exec(ctx)
	if err != nil {
		return err
	}
	return noRowsIfUnaffected(res)
}

func noRowsIfUnaffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetQuestionsBatch reads questions in id order, limit rows starting at offset.
func GetQuestionsBatch(ctx context.Context, db bun.IDB, limit int, offset int) ([]*models.Question, error) {
	questions := []*models.Question{}
	err := db.NewSelect().Model(&questions).Order("id ASC").Limit(limit).Offset(offset).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}
