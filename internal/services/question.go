package services

import (
	"context"
	"errors"
	"strings"

	"trivia/internal/datastore"
	"trivia/internal/models"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

var ErrEmptySearchTerm = errors.New("search term is required")

type ServiceQuestion struct {
	container  *do.Injector
	postgresDB *bun.DB
}

func NewServiceQuestion(container *do.Injector) (*ServiceQuestion, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	return &ServiceQuestion{container, postgresDB}, nil
}

func (service *ServiceQuestion) GetQuestion(ctx context.Context, questionID int64) (*models.Question, error) {
	// no rows becomes NotExist inside errorx.Wrap
	question, err := datastore.GetQuestion(ctx, service.postgresDB, questionID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Database)
	}
	return question, nil
}

func (service *ServiceQuestion) GetQuestions(ctx context.Context) ([]*models.Question, error) {
	questions, err := datastore.GetQuestions(ctx, service.postgresDB)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Database)
	}
	return questions, nil
}

func (service *ServiceQuestion) CountQuestions(ctx context.Context) (int, error) {
	total, err := datastore.CountQuestions(ctx, service.postgresDB)
	if err != nil {
		return 0, errorx.Wrap(err, errorx.Database)
	}
	return total, nil
}

func (service *ServiceQuestion) SearchQuestions(ctx context.Context, term string) ([]*models.Question, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errorx.Wrap(ErrEmptySearchTerm, errorx.Validation)
	}

	questions, err := datastore.SearchQuestions(ctx, service.postgresDB, term)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Database)
	}
	return questions, nil
}

func (service *ServiceQuestion) GetQuestionsByCategory(ctx context.Context, categoryID int64) ([]*models.Question, error) {
	questions, err := datastore.GetQuestionsByCategory(ctx, service.postgresDB, categoryID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Database)
	}
	return questions, nil
}

func (service *ServiceQuestion) CreateQuestion(ctx context.Context, input models.QuestionInput) (int64, error) {
	id, err := datastore.InsertQuestion(ctx, service.postgresDB, input.ToQuestion())
	if err != nil {
		return 0, errorx.Wrap(err, errorx.Database)
	}
	return id, nil
}

func (service *ServiceQuestion) UpdateQuestion(ctx context.Context, question *models.Question) error {
	err := datastore.UpdateQuestion(ctx, service.postgresDB, question)
	if err != nil {
		return errorx.Wrap(err, errorx.Database)
	}
	return nil
}

func (service *ServiceQuestion) DeleteQuestion(ctx context.Context, questionID int64) error {
	if _, err := service.GetQuestion(ctx, questionID); err != nil {
		return err
	}

	// the row can vanish between lookup and delete, errorx reports that as NotExist too
	err := datastore.DeleteQuestion(ctx, service.postgresDB, questionID)
	if err != nil {
		return errorx.Wrap(err, errorx.Database)
	}
	return nil
}
