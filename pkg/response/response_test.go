package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessOmitsErrors(t *testing.T) {
	env := Success("Item created successfully", map[string]int{"id": 1})
	assert.True(t, env.Success)
	assert.False(t, env.Timestamp.IsZero())

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "data")
	assert.NotContains(t, decoded, "errors")
	assert.Equal(t, "Item created successfully", decoded["message"])
}

func TestFailureOmitsData(t *testing.T) {
	env := Failure("Validation failed. Please check the input fields.", []string{"name: Item name is required"})
	assert.False(t, env.Success)
	assert.False(t, env.Timestamp.IsZero())

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "errors")
	assert.NotContains(t, decoded, "data")
}

func TestFailureWithoutDetailsOmitsErrors(t *testing.T) {
	raw, err := json.Marshal(Failure("Cannot GET /api/unknown", nil))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "errors")
	assert.NotContains(t, decoded, "data")
}
