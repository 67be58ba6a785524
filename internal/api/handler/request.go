package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"trivia/internal/models"
	"trivia/internal/pkg"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/labstack/echo/v4"
)

var errMissingField = errors.New("missing field")

// payload keeps the raw JSON object so handlers can tell an absent key from a null or a wrong type.
type payload map[string]json.RawMessage

func bindPayload(c echo.Context) (payload, error) {
	var p payload
	if err := c.Echo().JSONSerializer.Deserialize(c, &p); err != nil {
		return nil, errorx.Wrap(err, errorx.Invalid)
	}
	if p == nil {
		return nil, errorx.Wrap(errors.New("body must be a JSON object"), errorx.Invalid)
	}
	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// present reports whether key exists with a non-null value.
func (p payload) present(key string) bool {
	raw, ok := p[key]
	return ok && !isNull(raw)
}

func (p payload) requireKeys(keys ...string) error {
	for _, key := range keys {
		if !p.present(key) {
			return errorx.Wrap(fmt.Errorf("%w: %s", errMissingField, key), errorx.Validation)
		}
	}
	return nil
}

func (p payload) string(key string) (string, error) {
	var v string
	if err := json.Unmarshal(p[key], &v); err != nil {
		return "", errorx.Wrap(fmt.Errorf("%s: %w", key, err), errorx.Validation)
	}
	return v, nil
}

// optionalString is like string but absent and null read as "".
func (p payload) optionalString(key string) (string, error) {
	if !p.present(key) {
		return "", nil
	}
	return p.string(key)
}

func (p payload) id(key string) (int64, error) {
	var v models.ID
	if err := json.Unmarshal(p[key], &v); err != nil {
		return 0, errorx.Wrap(fmt.Errorf("%s: %w", key, err), errorx.Validation)
	}
	return int64(v), nil
}

func (p payload) int(key string) (int, error) {
	v, err := p.id(key)
	return int(v), err
}

// object reads a nested JSON object. Anything but an object is treated as broken structure.
func (p payload) object(key string) (payload, error) {
	if !p.present(key) {
		return nil, errorx.Wrap(fmt.Errorf("%w: %s", errMissingField, key), errorx.Invalid)
	}
	var nested payload
	if err := json.Unmarshal(p[key], &nested); err != nil {
		return nil, errorx.Wrap(fmt.Errorf("%s: %w", key, err), errorx.Invalid)
	}
	return nested, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := models.ParseID(c.Param(name))
	if err != nil {
		return 0, errorx.Wrap(err, errorx.Validation)
	}
	return int64(id), nil
}

func queryPage(c echo.Context) int {
	return pkg.ParsePage(c.QueryParam("page"))
}
