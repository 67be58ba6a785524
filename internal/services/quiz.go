package services

import (
	"context"
	"errors"

	"trivia/internal/datastore"
	"trivia/internal/models"
	"trivia/internal/pkg"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/mroth/weightedrand/v2"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

var ErrNoQuestionAvailable = errors.New("no question available")

type ServiceQuiz struct {
	container  *do.Injector
	postgresDB *bun.DB
}

func NewServiceQuiz(container *do.Injector) (*ServiceQuiz, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	return &ServiceQuiz{container, postgresDB}, nil
}

// NextQuestion draws one question of the category that is not in previous.
// The draw is uniform over the given page of candidates, not over every candidate.
func (service *ServiceQuiz) NextQuestion(ctx context.Context, categoryID int64, previous []int64, page int) (*models.Question, error) {
	candidates, err := datastore.GetQuestionsExcluding(ctx, service.postgresDB, categoryID, previous)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Database)
	}

	candidates = pkg.Paginate(candidates, page)
	if len(candidates) == 0 {
		return nil, errorx.Wrap(ErrNoQuestionAvailable, errorx.NotExist)
	}

	return pickQuestion(candidates)
}

func pickQuestion(candidates []*models.Question) (*models.Question, error) {
	choices := make([]weightedrand.Choice[*models.Question, int], 0, len(candidates))
	for _, candidate := range candidates {
		choices = append(choices, weightedrand.NewChoice(candidate, 1))
	}

	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, err
	}
	return chooser.Pick(), nil
}
