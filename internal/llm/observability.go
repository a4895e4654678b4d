package llm

import (
	"sprintwise_backend/pkg/logger"
	"sprintwise_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// CallEvent 单次模型调用的元数据
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Err       error
}

// Observer 接收模型调用事件，用于日志与指标
type Observer interface {
	OnCallComplete(event CallEvent)
}

// DefaultObserver 记录 prometheus 指标，Verbose 时成功调用也写日志
type DefaultObserver struct {
	Verbose bool
}

func (o DefaultObserver) OnCallComplete(event CallEvent) {
	code := ErrorCode(event.Err)
	monitoring.LLMCalls.WithLabelValues(string(event.Task), code).Inc()

	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
		zap.String("status", code),
	}
	if event.Err != nil {
		logger.Log.Warn("llm call failed", append(fields, zap.Error(event.Err))...)
		return
	}
	if o.Verbose {
		logger.Log.Info("llm call", fields...)
	}
}

// NoopObserver 丢弃所有事件，测试使用
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
