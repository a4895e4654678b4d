package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKIEConfig(baseURL string) config.KIEConfig {
	cfg := config.Default().KIE
	cfg.BaseURL = baseURL
	cfg.APIKey = "kie-test"
	return cfg
}

func TestKIEClient_CreateTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/createTask", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer kie-test", r.Header.Get("Authorization"))

		var req kieCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nano-banana-pro", req.Model)
		assert.Equal(t, []string{"https://t/zen.png", "https://u/me.jpg"}, req.Input.ImageInput)
		assert.Equal(t, "4:3", req.Input.AspectRatio)
		assert.Equal(t, "1K", req.Input.Resolution)
		assert.Equal(t, "png", req.Input.OutputFormat)
		assert.NotEmpty(t, req.Input.Prompt)

		w.Write([]byte(`{"code":200,"data":{"taskId":"task-1"}}`))
	}))
	defer srv.Close()

	client := NewKIEClient(testKIEConfig(srv.URL))
	taskID, err := client.CreateTask(context.Background(), "https://t/zen.png", "https://u/me.jpg")
	require.NoError(t, err)
	assert.Equal(t, "task-1", taskID)
}

func TestKIEClient_CreateTask_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"data":{}}`))
	}))
	defer srv.Close()

	client := NewKIEClient(testKIEConfig(srv.URL))

	_, err := client.CreateTask(context.Background(), "", "https://u/me.jpg")
	assert.ErrorIs(t, err, model.ErrPosterInput)

	_, err = client.CreateTask(context.Background(), "https://t", "https://u")
	assert.ErrorIs(t, err, ErrNoTaskID)

	cfg := testKIEConfig(srv.URL)
	cfg.APIKey = ""
	_, err = NewKIEClient(cfg).CreateTask(context.Background(), "https://t", "https://u")
	assert.ErrorIs(t, err, ErrKIENotConfigured)
}

func TestKIEClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte("insufficient credits"))
	}))
	defer srv.Close()

	_, err := NewKIEClient(testKIEConfig(srv.URL)).CreateTask(context.Background(), "https://t", "https://u")

	var statusErr *KIEStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusPaymentRequired, statusErr.StatusCode)
	assert.Equal(t, "insufficient credits", statusErr.Error())
}

func TestKIEClient_RecordInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/recordInfo", r.URL.Path)
		assert.Equal(t, "task 1", r.URL.Query().Get("taskId"))
		w.Write([]byte(`{"code":200,"data":{"taskId":"task 1","state":"success","resultJson":"{\"resultUrls\":[\"https://cdn/out.png\",\"https://cdn/2.png\"]}"}}`))
	}))
	defer srv.Close()

	status, err := NewKIEClient(testKIEConfig(srv.URL)).RecordInfo(context.Background(), "task 1")
	require.NoError(t, err)
	assert.Equal(t, KIEStateSuccess, status.State)
	assert.Equal(t, []string{"https://cdn/out.png", "https://cdn/2.png"}, status.ResultURLs)
	assert.NotNil(t, status.Raw["data"])
}

func TestParseRecordInfo(t *testing.T) {
	failed := parseRecordInfo(map[string]any{"data": map[string]any{"state": "fail", "failMsg": "NSFW content"}})
	assert.Equal(t, KIEStateFail, failed.State)
	assert.Equal(t, "NSFW content", failed.FailMessage)

	objectResult := parseRecordInfo(map[string]any{"data": map[string]any{
		"state":      "success",
		"resultJson": map[string]any{"resultUrls": []any{"https://cdn/a.png"}},
	}})
	assert.Equal(t, []string{"https://cdn/a.png"}, objectResult.ResultURLs)

	broken := parseRecordInfo(map[string]any{"data": map[string]any{"state": "success", "resultJson": "{oops"}})
	assert.Empty(t, broken.ResultURLs)

	empty := parseRecordInfo(map[string]any{})
	assert.Equal(t, "", empty.State)
}
