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

type groupCategory struct {
	container *do.Injector
}

type categoriesResponse struct {
	Success         bool               `json:"success"`
	Created         *int64             `json:"created,omitempty"`
	Categories      []*models.Category `json:"categories"`
	TotalCategories int                `json:"total_categories"`
}

type categoryQuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []*models.Question `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

var (
	statusCreateCategory = statusTable{
		errorx.Validation: http.StatusUnprocessableEntity,
		errorx.Invalid:    http.StatusUnprocessableEntity,
		errorx.Database:   http.StatusUnprocessableEntity,
	}
	statusGetCategories = statusTable{
		errorx.NotExist: http.StatusNotFound,
		errorx.Database: http.StatusNotFound,
	}
	statusCategoryQuestions = statusTable{
		errorx.NotExist:   http.StatusUnprocessableEntity,
		errorx.Validation: http.StatusUnprocessableEntity,
		errorx.Database:   http.StatusUnprocessableEntity,
	}
)

func (gr *groupCategory) CreateCategory(c echo.Context) error {
	serviceCategory, err := do.Invoke[*services.ServiceCategory](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}

	body, err := bindPayload(c)
	if err != nil {
		return abort(c, err, statusCreateCategory)
	}

	// type may be absent, null or empty
	categoryType, err := body.optionalString("type")
	if err != nil {
		return abort(c, err, statusCreateCategory)
	}

	ctx := c.Request().Context()
	id, err := serviceCategory.CreateCategory(ctx, categoryType)
	if err != nil {
		return abort(c, err, statusCreateCategory)
	}

	categories, err := serviceCategory.GetCategories(ctx)
	if err != nil {
		return abort(c, err, statusCreateCategory)
	}

	total, err := serviceCategory.CountCategories(ctx)
	if err != nil {
		return abort(c, err, statusCreateCategory)
	}

	return c.JSON(http.StatusOK, categoriesResponse{
		Success:         true,
		Created:         &id,
		Categories:      pkg.Paginate(categories, queryPage(c)),
		TotalCategories: total,
	})
}

func (gr *groupCategory) GetCategories(c echo.Context) error {
	serviceCategory, err := do.Invoke[*services.ServiceCategory](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}

	ctx := c.Request().Context()
	categories, err := serviceCategory.GetCategories(ctx)
	if err != nil {
		return abort(c, err, statusGetCategories)
	}

	if len(categories) == 0 {
		return writeError(c, http.StatusNotFound)
	}

	total, err := serviceCategory.CountCategories(ctx)
	if err != nil {
		return abort(c, err, statusGetCategories)
	}

	return c.JSON(http.StatusOK, categoriesResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: total,
	})
}

func (gr *groupCategory) GetCategoryQuestions(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return abort(c, err, nil)
	}

	categoryID, err := pathID(c, "id")
	if err != nil {
		return abort(c, err, statusCategoryQuestions)
	}

	questions, err := serviceQuestion.GetQuestionsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return abort(c, err, statusCategoryQuestions)
	}

	page := pkg.Paginate(questions, queryPage(c))
	if len(page) == 0 {
		return writeError(c, statusCategoryQuestions[errorx.NotExist])
	}

	return c.JSON(http.StatusOK, categoryQuestionsResponse{
		Success:        true,
		Questions:      page,
		TotalQuestions: len(questions),
	})
}
