package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured 未配置 API Key，调用方应走确定性逻辑
	ErrNotConfigured = errors.New("llm api key not configured")

	// ErrTimeout 请求超过任务超时
	ErrTimeout = errors.New("llm request timed out")

	// ErrUnavailable 无法连接到模型服务
	ErrUnavailable = errors.New("llm service unavailable")

	// ErrEmptyResponse 响应中没有任何内容
	ErrEmptyResponse = errors.New("llm returned empty response")

	// ErrInvalidOutput 响应无法解析为期望的结构
	ErrInvalidOutput = errors.New("invalid llm output format")
)

// StatusError 模型服务返回非 200
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm service returned status %d: %s", e.StatusCode, e.Body)
}

// ErrorCode 用于日志与指标的错误分类
func ErrorCode(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.Is(err, ErrInvalidOutput):
		return "invalid_output"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("http_%d", statusErr.StatusCode)
	default:
		return "unknown"
	}
}
