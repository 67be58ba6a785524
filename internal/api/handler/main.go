package handler

import (
	"net/http"

	"trivia/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.HTTPErrorHandler = httpErrorHandler
	r.Use(middlewareRequestID())
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${id}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())
	r.Use(middlewareCORS(cfg.Origins))

	// fail at startup rather than on the first request
	if _, err := do.Invoke[*services.ServiceCategory](cfg.Container); err != nil {
		return nil, err
	}
	if _, err := do.Invoke[*services.ServiceQuestion](cfg.Container); err != nil {
		return nil, err
	}
	if _, err := do.Invoke[*services.ServiceQuiz](cfg.Container); err != nil {
		return nil, err
	}

	r.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "🤖")
	})

	cg := groupCategory{cfg.Container}
	r.GET("/categories", cg.GetCategories)
	r.POST("/categories", cg.CreateCategory)
	r.GET("/categories/:id/questions", cg.GetCategoryQuestions)

	q := groupQuestion{cfg.Container}
	r.GET("/questions", q.GetQuestions)
	r.POST("/questions", q.CreateQuestion)
	r.POST("/questions/search", q.SearchQuestions)
	r.DELETE("/questions/:id", q.DeleteQuestion)

	qz := groupQuiz{cfg.Container}
	r.POST("/quizzes", qz.NextQuestion)

	return r, nil
}
