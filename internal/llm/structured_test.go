package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goalsPayload struct {
	Goals []struct {
		Title string `json:"title"`
	} `json:"goals"`
}

func TestExtractJSON_CleanObject(t *testing.T) {
	result, err := ExtractJSON[goalsPayload](`{"goals":[{"title":"Gym"}]}`, nil)
	require.NoError(t, err)
	require.Len(t, result.Goals, 1)
	assert.Equal(t, "Gym", result.Goals[0].Title)
}

func TestExtractJSON_FencedObject(t *testing.T) {
	raw := "```json\n{\"goals\":[{\"title\":\"Read\"}]}\n```"
	result, err := ExtractJSON[goalsPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Read", result.Goals[0].Title)
}

func TestExtractJSON_BareArray(t *testing.T) {
	raw := "Here you go:\n[{\"title\":\"A\"},{\"title\":\"B\"}]\nThanks"
	result, err := ExtractJSON[[]map[string]any](raw, nil)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "B", result[1]["title"])
}

func TestExtractJSON_UntypedValue(t *testing.T) {
	result, err := ExtractJSON[any](`{"days":[{"day":1}]}`, nil)
	require.NoError(t, err)
	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "days")
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"goals":[{"title":"Learn {Go} [fast]"}]} trailing }`
	result, err := ExtractJSON[goalsPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Learn {Go} [fast]", result.Goals[0].Title)
}

func TestExtractJSON_Comments(t *testing.T) {
	raw := "{\n  // parsed goals\n  \"goals\": [{\"title\": \"https://x.io\"}] /* end */\n}"
	result, err := ExtractJSON[goalsPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://x.io", result.Goals[0].Title)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[goalsPayload]("I could not understand that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[goalsPayload](`{"goals":[{"title":"x"}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	validator := func(p goalsPayload) error {
		if len(p.Goals) == 0 {
			return errors.New("no goals")
		}
		return nil
	}
	_, err := ExtractJSON(`{"goals":[]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}
