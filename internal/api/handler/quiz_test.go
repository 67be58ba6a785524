package handler

import (
	"net/http"
	"testing"

	"trivia/internal/datastore/dbtest"
	"trivia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizBody(previous any, categoryID any) map[string]any {
	return map[string]any{
		"previous_questions": previous,
		"quiz_category": map[string]any{
			"type": map[string]any{"id": categoryID},
		},
	}
}

func TestNextQuestion(t *testing.T) {
	h, db := newTestServer(t)
	dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Sport", 6, 4)...)
	dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("History", 4, 4)...)

	rec := send(t, h, http.MethodPost, "/quizzes", quizBody([]int64{}, "6"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[listResponse](t, rec)
	assert.True(t, got.Success)
	require.NotNil(t, got.Question)
	assert.Equal(t, int64(6), got.Question.Category)
}

func TestNextQuestionSkipsPrevious(t *testing.T) {
	h, db := newTestServer(t)
	seeded := dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Sport", 6, 5)...)
	dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("History", 4, 5)...)

	previous := questionIDs(seeded[:4])
	want := seeded[4]
	for i := 0; i < 20; i++ {
		rec := send(t, h, http.MethodPost, "/quizzes", quizBody(previous, 6))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		got := decode[listResponse](t, rec)
		require.NotNil(t, got.Question)
		assert.Equal(t, *want, *got.Question)
	}

	rec := send(t, h, http.MethodPost, "/quizzes", quizBody(questionIDs(seeded), 6))
	assertEnvelope(t, rec, http.StatusNotFound, "resource not found")
}

func TestNextQuestionDrawsFromRequestedPage(t *testing.T) {
	h, db := newTestServer(t)
	seeded := dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Sport", 6, 12)...)

	secondPage := questionIDs(seeded[10:])
	for i := 0; i < 20; i++ {
		rec := send(t, h, http.MethodPost, "/quizzes?page=2", quizBody([]int64{}, 6))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, secondPage, decode[listResponse](t, rec).Question.ID)
	}

	rec := send(t, h, http.MethodPost, "/quizzes?page=3", quizBody([]int64{}, 6))
	assertEnvelope(t, rec, http.StatusNotFound, "resource not found")
}

func TestNextQuestionUnknownCategory(t *testing.T) {
	h, db := newTestServer(t)
	dbtest.SeedQuestions(t, db, &models.Question{Question: "2+2?", Answer: "4", Category: 1, Difficulty: 1, Rating: 1})

	rec := send(t, h, http.MethodPost, "/quizzes", quizBody([]int64{}, 99))
	assertEnvelope(t, rec, http.StatusNotFound, "resource not found")
}

func TestNextQuestionInvalidValues(t *testing.T) {
	h, db := newTestServer(t)
	dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Sport", 6, 2)...)

	rec := send(t, h, http.MethodPost, "/quizzes", quizBody([]int64{}, "six"))
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")

	rec = send(t, h, http.MethodPost, "/quizzes", quizBody("1,2", 6))
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")

	rec = send(t, h, http.MethodPost, "/quizzes", quizBody([]any{1, "two"}, 6))
	assertEnvelope(t, rec, http.StatusUnprocessableEntity, "unprocessable")
}

func TestNextQuestionMissingStructure(t *testing.T) {
	h, db := newTestServer(t)
	dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Sport", 6, 2)...)

	bodies := []any{
		map[string]any{"previous_questions": []int64{}},
		map[string]any{"quiz_category": map[string]any{"type": map[string]any{"id": 6}}},
		quizBody(nil, 6),
		map[string]any{"previous_questions": []int64{}, "quiz_category": map[string]any{}},
		map[string]any{"previous_questions": []int64{}, "quiz_category": map[string]any{"type": "Sport"}},
		map[string]any{"previous_questions": []int64{}, "quiz_category": map[string]any{"type": map[string]any{}}},
		"not json",
	}
	for _, body := range bodies {
		rec := send(t, h, http.MethodPost, "/quizzes", body)
		assertEnvelope(t, rec, http.StatusInternalServerError, "Internal Server Error")
	}
}
