package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/stretchr/testify/assert"
)

func TestStatusTable(t *testing.T) {
	table := statusTable{
		errorx.NotExist:   http.StatusNotFound,
		errorx.Validation: http.StatusUnprocessableEntity,
		errorx.Database:   http.StatusMethodNotAllowed,
	}

	assert.Equal(t, http.StatusNotFound, table.status(errorx.Wrap(errors.New("gone"), errorx.NotExist)))
	assert.Equal(t, http.StatusUnprocessableEntity, table.status(errorx.Wrap(errors.New("bad"), errorx.Validation)))
	assert.Equal(t, http.StatusMethodNotAllowed, table.status(errorx.Wrap(errors.New("down"), errorx.Database)))

	// no rows is NotExist whatever kind it was wrapped with
	assert.Equal(t, http.StatusNotFound, table.status(errorx.Wrap(sql.ErrNoRows, errorx.Database)))

	wrapped := fmt.Errorf("delete: %w", errorx.Wrap(errors.New("bad"), errorx.Validation))
	assert.Equal(t, http.StatusUnprocessableEntity, table.status(wrapped))

	assert.Equal(t, http.StatusInternalServerError, table.status(errorx.Wrap(errors.New("broken"), errorx.Invalid)))
	assert.Equal(t, http.StatusInternalServerError, table.status(errors.New("plain")))

	var empty statusTable
	assert.Equal(t, http.StatusInternalServerError, empty.status(errorx.Wrap(errors.New("gone"), errorx.NotExist)))
}
