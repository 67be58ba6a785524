package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	var body struct {
		A ID `json:"a"`
		B ID `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 6, "b": "6"}`), &body))
	assert.Equal(t, ID(6), body.A)
	assert.Equal(t, ID(6), body.B)
}

func TestIDUnmarshalRejects(t *testing.T) {
	for _, raw := range []string{`"six"`, `6.5`, `"6.5"`, `true`, `null`, `""`, `[1]`} {
		var id ID
		err := json.Unmarshal([]byte(raw), &id)
		assert.Error(t, err, raw)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, ID(42), id)

	_, err = ParseID("4a")
	assert.ErrorIs(t, err, ErrInvalidID)
}
