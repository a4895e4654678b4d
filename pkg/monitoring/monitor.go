package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// LLMCalls 语言模型调用结果，status 为 ok 或错误码
	LLMCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_calls_total",
			Help: "Language model calls by task and outcome",
		},
		[]string{"task", "status"},
	)

	// GoalParses 目标解析来源：llm / fallback / empty
	GoalParses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_parse_total",
			Help: "Goal parse requests by source",
		},
		[]string{"source"},
	)

	// PlanGenerations 计划生成来源：llm / deterministic
	PlanGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_generation_total",
			Help: "Plans generated by source",
		},
		[]string{"source"},
	)

	// PosterJobs 海报任务终态：succeeded / failed / timed_out / error
	PosterJobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_jobs_total",
			Help: "Poster generation jobs by final outcome",
		},
		[]string{"outcome"},
	)

	PosterPollAttempts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "poster_poll_attempts",
			Help:    "Status polls issued per poster job",
			Buckets: []float64{1, 5, 10, 20, 40, 60},
		},
	)

	initOnce sync.Once
)

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(LLMCalls)
		prometheus.MustRegister(GoalParses)
		prometheus.MustRegister(PlanGenerations)
		prometheus.MustRegister(PosterJobs)
		prometheus.MustRegister(PosterPollAttempts)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
