package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/model"
)

var (
	ErrKIENotConfigured = errors.New("KIE_API_KEY is not configured")
	ErrNoTaskID         = errors.New("No taskId in KIE response")
	ErrTaskIDRequired   = errors.New("taskId is required")
)

// KIEStatusError 图像服务返回非 2xx，Body 为原始响应
type KIEStatusError struct {
	StatusCode int
	Body       string
}

func (e *KIEStatusError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("KIE API error: %d", e.StatusCode)
}

const (
	KIEStateSuccess = "success"
	KIEStateFail    = "fail"
)

// KIETaskStatus recordInfo 的解析结果
type KIETaskStatus struct {
	State       string   `json:"state"`
	ResultURLs  []string `json:"resultUrls,omitempty"`
	FailMessage string   `json:"failMsg,omitempty"`
	// Raw 原始响应，状态透传接口直接返回
	Raw map[string]any `json:"-"`
}

type KIEClient struct {
	mu   sync.RWMutex
	cfg  config.KIEConfig
	http *http.Client
}

func NewKIEClient(cfg config.KIEConfig) *KIEClient {
	return &KIEClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *KIEClient) UpdateConfig(cfg config.KIEConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.http = &http.Client{Timeout: cfg.Timeout}
}

func (c *KIEClient) snapshot() (config.KIEConfig, *http.Client) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg, c.http
}

func (c *KIEClient) Enabled() bool {
	cfg, _ := c.snapshot()
	return strings.TrimSpace(cfg.APIKey) != ""
}

type kieCreateInput struct {
	Prompt       string   `json:"prompt"`
	ImageInput   []string `json:"image_input"`
	AspectRatio  string   `json:"aspect_ratio"`
	Resolution   string   `json:"resolution"`
	OutputFormat string   `json:"output_format"`
}

type kieCreateRequest struct {
	Model string         `json:"model"`
	Input kieCreateInput `json:"input"`
}

// CreateTask 提交生成任务，image_input 依次为模板与用户照片
func (c *KIEClient) CreateTask(ctx context.Context, templateURL, userImageURL string) (string, error) {
	cfg, client := c.snapshot()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return "", ErrKIENotConfigured
	}
	if templateURL == "" || userImageURL == "" {
		return "", model.ErrPosterInput
	}

	body, err := json.Marshal(kieCreateRequest{
		Model: cfg.Model,
		Input: kieCreateInput{
			Prompt:       cfg.Prompt,
			ImageInput:   []string{templateURL, userImageURL},
			AspectRatio:  cfg.AspectRatio,
			Resolution:   cfg.Resolution,
			OutputFormat: cfg.Format,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(cfg, "/api/v1/jobs/createTask"), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	raw, err := c.do(client, req)
	if err != nil {
		return "", err
	}

	taskID := toString(asObject(raw["data"])["taskId"])
	if taskID == "" {
		return "", ErrNoTaskID
	}
	return taskID, nil
}

// RecordInfo 查询任务状态；resultJson 可能是字符串化的 JSON
func (c *KIEClient) RecordInfo(ctx context.Context, taskID string) (*KIETaskStatus, error) {
	cfg, client := c.snapshot()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrKIENotConfigured
	}
	if taskID == "" {
		return nil, ErrTaskIDRequired
	}

	endpoint := c.endpoint(cfg, "/api/v1/jobs/recordInfo") + "?taskId=" + url.QueryEscape(taskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	raw, err := c.do(client, req)
	if err != nil {
		return nil, err
	}
	return parseRecordInfo(raw), nil
}

func parseRecordInfo(raw map[string]any) *KIETaskStatus {
	data := asObject(raw["data"])
	status := &KIETaskStatus{
		State:       toString(data["state"]),
		FailMessage: toString(data["failMsg"]),
		Raw:         raw,
	}

	var result map[string]any
	switch rj := data["resultJson"].(type) {
	case string:
		if rj != "" {
			_ = json.Unmarshal([]byte(rj), &result)
		}
	case map[string]any:
		result = rj
	}
	if urls, ok := asArray(result["resultUrls"]); ok {
		for _, u := range toStrings(urls) {
			if u != "" {
				status.ResultURLs = append(status.ResultURLs, u)
			}
		}
	}
	return status
}

func (c *KIEClient) endpoint(cfg config.KIEConfig, path string) string {
	return strings.TrimRight(cfg.BaseURL, "/") + path
}

func (c *KIEClient) do(client *http.Client, req *http.Request) (map[string]any, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &KIEStatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding KIE response: %w", err)
	}
	return raw, nil
}
