package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"trivia/internal/models"
	"trivia/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupQuiz struct {
	container *do.Injector
}

type quizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

// Missing structure (errorx.Invalid) is left out, so it surfaces as 500 like any unexpected failure.
var statusNextQuestion = statusTable{
	errorx.NotExist:   http.StatusNotFound,
	errorx.Validation: http.StatusUnprocessableEntity,
	errorx.Database:   http.StatusNotFound,
}

func (gr *groupQuiz) NextQuestion(c echo.Context) error {
	serviceQuiz, err := do.Invoke[*services.ServiceQuiz](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}

	body, err := bindPayload(c)
	if err != nil {
		return abort(c, err, statusNextQuestion)
	}

	previous, err := previousQuestions(body)
	if err != nil {
		return abort(c, err, statusNextQuestion)
	}

	categoryID, err := quizCategoryID(body)
	if err != nil {
		return abort(c, err, statusNextQuestion)
	}

	question, err := serviceQuiz.NextQuestion(c.Request().Context(), categoryID, previous, queryPage(c))
	if err != nil {
		return abort(c, err, statusNextQuestion)
	}

	return c.JSON(http.StatusOK, quizResponse{
		Success:  true,
		Question: question,
	})
}

func previousQuestions(body payload) ([]int64, error) {
	if !body.present("previous_questions") {
		return nil, errorx.Wrap(fmt.Errorf("%w: previous_questions", errMissingField), errorx.Invalid)
	}

	var ids []models.ID
	if err := json.Unmarshal(body["previous_questions"], &ids); err != nil {
		return nil, errorx.Wrap(fmt.Errorf("previous_questions: %w", err), errorx.Validation)
	}

	previous := make([]int64, 0, len(ids))
	for _, id := range ids {
		previous = append(previous, int64(id))
	}
	return previous, nil
}

// quizCategoryID digs the category id out of quiz_category.type.id.
func quizCategoryID(body payload) (int64, error) {
	quizCategory, err := body.object("quiz_category")
	if err != nil {
		return 0, err
	}

	categoryType, err := quizCategory.object("type")
	if err != nil {
		return 0, err
	}

	if !categoryType.present("id") {
		return 0, errorx.Wrap(fmt.Errorf("%w: quiz_category.type.id", errMissingField), errorx.Invalid)
	}
	return categoryType.id("id")
}
