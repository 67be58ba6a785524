package handler

import (
	"net/http"

	"trivia/internal/models"
	"trivia/internal/pkg"
	"trivia/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupQuestion struct {
	container *do.Injector
}

type questionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []*models.Question `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      []*models.Category `json:"categories"`
	CurrentCategory *models.Category   `json:"current_category"`
}

type questionMutationResponse struct {
	Success        bool               `json:"success"`
	Created        *int64             `json:"created,omitempty"`
	Deleted        *int64             `json:"deleted,omitempty"`
	Questions      []*models.Question `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

var questionFields = []string{"question", "answer", "difficulty", "category", "rating"}

var (
	statusGetQuestions = statusTable{
		errorx.NotExist: http.StatusNotFound,
		errorx.Database: http.StatusNotFound,
	}
	statusDeleteQuestion = statusTable{
		errorx.NotExist:   http.StatusUnprocessableEntity,
		errorx.Validation: http.StatusUnprocessableEntity,
		errorx.Database:   http.StatusUnprocessableEntity,
	}
	statusCreateQuestion = statusTable{
		errorx.Validation: http.StatusUnprocessableEntity,
		errorx.Invalid:    http.StatusUnprocessableEntity,
		errorx.Database:   http.StatusMethodNotAllowed,
	}
	statusSearchQuestions = statusTable{
		errorx.NotExist:   http.StatusNotFound,
		errorx.Validation: http.StatusUnprocessableEntity,
		errorx.Invalid:    http.StatusUnprocessableEntity,
		errorx.Database:   http.StatusUnprocessableEntity,
	}
)

// currentCategory is the first category by id, whatever the listed questions belong to.
func currentCategory(categories []*models.Category) *models.Category {
	if len(categories) == 0 {
		return nil
	}
	return categories[0]
}

func (gr *groupQuestion) GetQuestions(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}
	serviceCategory, err := do.Invoke[*services.ServiceCategory](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}

	ctx := c.Request().Context()
	questions, err := serviceQuestion.GetQuestions(ctx)
	if err != nil {
		return abort(c, err, statusGetQuestions)
	}

	page := pkg.Paginate(questions, queryPage(c))
	if len(page) == 0 {
		return writeError(c, statusGetQuestions[errorx.NotExist])
	}

	categories, err := serviceCategory.GetCategories(ctx)
	if err != nil {
		return abort(c, err, statusGetQuestions)
	}

	return c.JSON(http.StatusOK, questionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		Categories:      categories,
		CurrentCategory: currentCategory(categories),
	})
}

func (gr *groupQuestion) DeleteQuestion(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}

	questionID, err := pathID(c, "id")
	if err != nil {
		return abort(c, err, statusDeleteQuestion)
	}

	ctx := c.Request().Context()
	if err := serviceQuestion.DeleteQuestion(ctx, questionID); err != nil {
		return abort(c, err, statusDeleteQuestion)
	}

	questions, err := serviceQuestion.GetQuestions(ctx)
	if err != nil {
		return abort(c, err, statusDeleteQuestion)
	}

	return c.JSON(http.StatusOK, questionMutationResponse{
		Success:        true,
		Deleted:        &questionID,
		Questions:      pkg.Paginate(questions, queryPage(c)),
		TotalQuestions: len(questions),
	})
}

func (gr *groupQuestion) CreateQuestion(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}

	body, err := bindPayload(c)
	if err != nil {
		return abort(c, err, statusCreateQuestion)
	}

	input, err := questionInput(body)
	if err != nil {
		return abort(c, err, statusCreateQuestion)
	}

	ctx := c.Request().Context()
	id, err := serviceQuestion.CreateQuestion(ctx, input)
	if err != nil {
		return abort(c, err, statusCreateQuestion)
	}

	questions, err := serviceQuestion.GetQuestions(ctx)
	if err != nil {
		return abort(c, err, statusCreateQuestion)
	}

	return c.JSON(http.StatusOK, questionMutationResponse{
		Success:        true,
		Created:        &id,
		Questions:      pkg.Paginate(questions, queryPage(c)),
		TotalQuestions: len(questions),
	})
}

func questionInput(body payload) (models.QuestionInput, error) {
	var (
		input models.QuestionInput
		err   error
	)

	if err = body.requireKeys(questionFields...); err != nil {
		return input, err
	}
	if input.Question, err = body.string("question"); err != nil {
		return input, err
	}
	if input.Answer, err = body.string("answer"); err != nil {
		return input, err
	}
	if input.Category, err = body.id("category"); err != nil {
		return input, err
	}
	if input.Difficulty, err = body.int("difficulty"); err != nil {
		return input, err
	}
	if input.Rating, err = body.int("rating"); err != nil {
		return input, err
	}
	return input, nil
}

func (gr *groupQuestion) SearchQuestions(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}
	serviceCategory, err := do.Invoke[*services.ServiceCategory](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}

	body, err := bindPayload(c)
	if err != nil {
		return abort(c, err, statusSearchQuestions)
	}

	if err := body.requireKeys("searchTerm"); err != nil {
		return abort(c, err, statusSearchQuestions)
	}
	term, err := body.string("searchTerm")
	if err != nil {
		return abort(c, err, statusSearchQuestions)
	}

	ctx := c.Request().Context()
	questions, err := serviceQuestion.SearchQuestions(ctx, term)
	if err != nil {
		return abort(c, err, statusSearchQuestions)
	}

	page := pkg.Paginate(questions, queryPage(c))
	if len(page) == 0 {
		return writeError(c, statusSearchQuestions[errorx.NotExist])
	}

	categories, err := serviceCategory.GetCategories(ctx)
	if err != nil {
		return abort(c, err, statusSearchQuestions)
	}

	return c.JSON(http.StatusOK, questionsResponse{
		Success:   true,
		Questions: page,
		// the size of this page, not of every match
		TotalQuestions:  len(page),
		Categories:      categories,
		CurrentCategory: currentCategory(categories),
	})
}
