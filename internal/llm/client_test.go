package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sprintwise_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.AIConfig {
	cfg := config.Default().AI
	cfg.BaseURL = baseURL
	cfg.APIKey = "sk-test"
	return cfg
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.events = append(o.events, e)
}

func chatReply(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
}

func TestOpenAIClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 0.3, req.Temperature)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user prompt", req.Messages[1].Content)

		chatReply(w, `{"goals":[]}`)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewOpenAIClient(testConfig(srv.URL), obs)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskParseGoals,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
		JSONMode:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"goals":[]}`, resp.Text)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	require.Len(t, obs.events, 1)
	assert.NoError(t, obs.events[0].Err)
	assert.Equal(t, TaskParseGoals, obs.events[0].Task)
}

func TestOpenAIClient_Generate_PlanTemperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 0.7, req.Temperature)
		assert.Nil(t, req.ResponseFormat)
		require.Len(t, req.Messages, 1)
		chatReply(w, "ok")
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskGeneratePlan,
		UserPrompt: "plan",
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}

func TestOpenAIClient_Generate_NotConfigured(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.APIKey = "  "

	client := NewOpenAIClient(cfg, nil)
	assert.False(t, client.Enabled())

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskParseGoals, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestOpenAIClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		chatReply(w, "late")
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.ParseTimeout = 50 * time.Millisecond

	obs := &recordingObserver{}
	client := NewOpenAIClient(cfg, obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskParseGoals, UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrTimeout)
	require.Len(t, obs.events, 1)
	assert.Equal(t, "timeout", ErrorCode(obs.events[0].Err))
}

func TestOpenAIClient_Generate_Unavailable(t *testing.T) {
	client := NewOpenAIClient(testConfig("http://127.0.0.1:1"), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskParseGoals, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenAIClient_Generate_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskParseGoals, UserPrompt: "x"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, "http_429", ErrorCode(err))
}

func TestOpenAIClient_Generate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"gpt-4o-mini","choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskParseGoals, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIClient_UpdateConfig(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.APIKey = ""
	client := NewOpenAIClient(cfg, nil)
	assert.False(t, client.Enabled())

	cfg.APIKey = "sk-rotated"
	client.UpdateConfig(cfg)
	assert.True(t, client.Enabled())
}
