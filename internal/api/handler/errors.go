package handler

import (
	"errors"
	"net/http"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/labstack/echo/v4"
)

var messages = map[int]string{
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusInternalServerError: "Internal Server Error",
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// statusTable maps failure kinds to the status an endpoint answers with.
// Kinds missing from the table become 500.
type statusTable map[errorx.Kind]int

func (t statusTable) status(err error) int {
	var target *errorx.Error
	if !errors.As(err, &target) {
		return http.StatusInternalServerError
	}

	for kind, status := range t {
		if target.Of(kind) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func abort(c echo.Context, err error, table statusTable) error {
	status := table.status(err)
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return writeError(c, status)
}

func writeError(c echo.Context, status int) error {
	message, ok := messages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = messages[status]
	}

	return c.JSON(status, errorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// httpErrorHandler renders router and middleware failures (unknown route, wrong method, panics)
// with the same envelope the handlers use.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			status = he.Code
		}
	}

	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	//nolint:errcheck
	writeError(c, status)
}
