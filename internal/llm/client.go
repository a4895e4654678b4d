// Package llm OpenAI 兼容的 chat/completions 客户端与 JSON 结构化输出提取
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type TaskType string

const (
	TaskParseGoals   TaskType = "parse_goals"
	TaskGeneratePlan TaskType = "generate_plan"
)

type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil 使用任务默认值
	JSONMode     bool
}

type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client 语言模型访问接口
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	// Enabled 是否配置了凭证；false 时调用方直接走确定性逻辑
	Enabled() bool
}

// OpenAIClient 支持配置热更新
type OpenAIClient struct {
	mu       sync.RWMutex
	cfg      config.AIConfig
	http     *http.Client
	observer Observer
}

func NewOpenAIClient(cfg config.AIConfig, observer Observer) *OpenAIClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &OpenAIClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *OpenAIClient) UpdateConfig(cfg config.AIConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}

func (c *OpenAIClient) config() config.AIConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

func (c *OpenAIClient) Enabled() bool {
	return strings.TrimSpace(c.config().APIKey) != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	cfg := c.config()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "llm.generate",
		attribute.String("llm.task", string(req.Task)),
		attribute.String("llm.model", cfg.Model),
	)

	temp := taskTemperature(cfg, req.Task)
	if req.Temperature != nil {
		temp = *req.Temperature
	}

	ctx, cancel := context.WithTimeout(ctx, taskTimeout(cfg, req.Task))
	defer cancel()

	body := chatRequest{
		Model:       cfg.Model,
		Temperature: temp,
	}
	if req.SystemPrompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.UserPrompt})
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	resp, err := c.doRequest(ctx, cfg, body)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = ErrTimeout
		case ctx.Err() != nil:
			err = ctx.Err()
		case isConnectionError(err):
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	var text, model string
	if err == nil {
		model = resp.Model
		if len(resp.Choices) > 0 {
			text = strings.TrimSpace(resp.Choices[0].Message.Content)
		}
		if text == "" {
			err = ErrEmptyResponse
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     cfg.Model,
		LatencyMs: latency,
		Err:       err,
	})
	tracing.EndSpan(span, err)

	if err != nil {
		return nil, err
	}
	if model == "" {
		model = cfg.Model
	}
	return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
}

func (c *OpenAIClient) doRequest(ctx context.Context, cfg config.AIConfig, body chatRequest) (*chatResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Body: string(respBody)}
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}
	return &resp, nil
}

func taskTemperature(cfg config.AIConfig, task TaskType) float64 {
	if task == TaskGeneratePlan {
		return cfg.PlanTemperature
	}
	return cfg.ParseTemperature
}

func taskTimeout(cfg config.AIConfig, task TaskType) time.Duration {
	var d time.Duration
	switch task {
	case TaskParseGoals:
		d = cfg.ParseTimeout
	case TaskGeneratePlan:
		d = cfg.PlanTimeout
	}
	if d <= 0 {
		d = cfg.Timeout
	}
	if d <= 0 {
		d = 30 * time.Second
	}
	return d
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
