package main

import (
	"context"
	"strings"
	"testing"

	"trivia/internal/bank"
	"trivia/internal/datastore/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.SeedQuestions(t, db, dbtest.NumberedQuestions("Q", 2, 5)...)

	var out strings.Builder
	exported, err := export(context.Background(), db, bank.NewWriter(&out), 2)
	require.NoError(t, err)
	assert.Equal(t, 5, exported)

	questions, skipped, err := bank.ReadQuestions(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, questions, 5)
	assert.Equal(t, "Q 1", questions[0].Question)
	assert.Equal(t, "Q 5", questions[4].Question)
}

func TestExportEmpty(t *testing.T) {
	db := dbtest.Open(t)

	var out strings.Builder
	exported, err := export(context.Background(), db, bank.NewWriter(&out), 0)
	require.NoError(t, err)
	assert.Zero(t, exported)
	assert.Equal(t, "question,answer,category,difficulty,rating\n", out.String())
}
