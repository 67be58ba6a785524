package handler

import (
	"net/http"
	"testing"

	"trivia/internal/datastore/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategoriesEmpty(t *testing.T) {
	h, _ := newTestServer(t)
	rec := send(t, h, http.MethodGet, "/categories", nil)
	assertEnvelope(t, rec, http.StatusNotFound, "resource not found")
}

func TestGetCategories(t *testing.T) {
	h, db := newTestServer(t)
	seeded := dbtest.SeedCategories(t, db, "Science", "Art", "Geography")

	rec := send(t, h, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[listResponse](t, rec)
	assert.True(t, got.Success)
	assert.Equal(t, 3, got.TotalCategories)
	require.Len(t, got.Categories, 3)
	for i, category := range seeded {
		assert.Equal(t, *category, *got.Categories[i])
	}
}

func TestCreateCategory(t *testing.T) {
	h, db := newTestServer(t)
	dbtest.SeedCategories(t, db, "Art")

	// warm the cache so creation has to invalidate it
	rec := send(t, h, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	before := decode[listResponse](t, rec).TotalCategories

	rec = send(t, h, http.MethodPost, "/categories", map[string]any{"type": "Science"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[listResponse](t, rec)
	assert.True(t, got.Success)
	require.NotNil(t, got.Created)
	assert.Equal(t, before+1, got.TotalCategories)
	require.Len(t, got.Categories, 2)
	assert.Equal(t, *got.Created, got.Categories[1].ID)
	assert.Equal(t, "Science", got.Categories[1].Type)

	rec = send(t, h, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[listResponse](t, rec)
	assert.Equal(t, before+1, listed.TotalCategories)
	assert.Equal(t, "Science", listed.Categories[len(listed.Categories)-1].Type)
}

func TestCreateCategoryLenientType(t *testing.T) {
	h, _ := newTestServer(t)

	for _, body := range []any{map[string]any{"type": nil}, map[string]any{}, map[string]any{"type": ""}} {
		rec := send(t, h, http.MethodPost, "/categories", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotNil(t, decode[listResponse](t, rec).Created)
	}
}

func TestCreateCategoryPaginates(t *testing.T) {
	h, db := newTestServer(t)
	dbtest.SeedCategories(t, db, "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "c11")

	rec := send(t, h, http.MethodPost, "/categories?page=2", map[string]any{"type": "c12"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[listResponse](t, rec)
	assert.Equal(t, 12, got.TotalCategories)
	require.Len(t, got.Categories, 2)
	assert.Equal(t, "c11", got.Categories[0].Type)
	assert.Equal(t, "c12", got.Categories[1].Type)
}

func TestCreateCategoryRejectsBadBody(t *testing.T) {
	h, _ := newTestServer(t)

	rec := send(t, h, http.MethodPost, "/categories", "{not json")
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")

	rec = send(t, h, http.MethodPost, "/categories", map[string]any{"type": 5})
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")
}

func TestCreateCategoryStoreFailure(t *testing.T) {
	h, db := newTestServer(t)
	require.NoError(t, db.Close())

	rec := send(t, h, http.MethodPost, "/categories", map[string]any{"type": "Science"})
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")
}

func TestGetCategoriesStoreFailure(t *testing.T) {
	h, db := newTestServer(t)
	require.NoError(t, db.Close())

	rec := send(t, h, http.MethodGet, "/categories", nil)
	assertEnvelope(t, rec, http.StatusNotFound, "resource not found")
}

func TestGetCategoryQuestions(t *testing.T) {
	h, db := newTestServer(t)
	sport := dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Sport", 6, 12)...)
	dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Art", 2, 3)...)

	rec := send(t, h, http.MethodGet, "/categories/6/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[listResponse](t, rec)
	assert.True(t, got.Success)
	assert.Equal(t, 12, got.TotalQuestions)
	assert.Equal(t, questionIDs(sport[:10]), questionIDs(got.Questions))
	for _, q := range got.Questions {
		assert.Equal(t, int64(6), q.Category)
	}

	rec = send(t, h, http.MethodGet, "/categories/6/questions?page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[listResponse](t, rec)
	assert.Equal(t, questionIDs(sport[10:]), questionIDs(got.Questions))
	assert.Equal(t, 12, got.TotalQuestions)
}

func TestGetCategoryQuestionsFailures(t *testing.T) {
	h, db := newTestServer(t)
	dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Sport", 6, 2)...)

	rec := send(t, h, http.MethodGet, "/categories/7/questions", nil)
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")

	rec = send(t, h, http.MethodGet, "/categories/6/questions?page=3", nil)
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")

	rec = send(t, h, http.MethodGet, "/categories/sport/questions", nil)
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")
}
