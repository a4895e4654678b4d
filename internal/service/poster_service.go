package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/pkg/logger"
	"sprintwise_backend/pkg/monitoring"
	"sprintwise_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const GenericPosterFailure = "Generation failed"

// ErrPosterTimedOut 轮询次数耗尽仍未成功或失败
var ErrPosterTimedOut = errors.New("Generation timed out")

// PosterFailedError 图像服务报告任务失败
type PosterFailedError struct {
	Message string
}

func (e *PosterFailedError) Error() string {
	return e.Message
}

// ImageJobClient 异步图像任务的创建与查询
type ImageJobClient interface {
	CreateTask(ctx context.Context, templateURL, userImageURL string) (string, error)
	RecordInfo(ctx context.Context, taskID string) (*KIETaskStatus, error)
}

type PosterService struct {
	jobs ImageJobClient

	mu          sync.RWMutex
	interval    time.Duration
	maxAttempts int

	now func() time.Time
}

func NewPosterService(jobs ImageJobClient, cfg config.PosterConfig) *PosterService {
	s := &PosterService{jobs: jobs, now: time.Now}
	s.UpdateConfig(cfg)
	return s
}

func (s *PosterService) UpdateConfig(cfg config.PosterConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = cfg.PollInterval
	s.maxAttempts = cfg.MaxPollAttempts
}

func (s *PosterService) limits() (time.Duration, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interval, s.maxAttempts
}

// Generate 创建任务后按固定间隔顺序轮询，直到成功、失败或次数耗尽。
// 返回的 PosterJob 在出错时也会带上终态。
func (s *PosterService) Generate(ctx context.Context, templateURL, userImageURL string) (*model.PosterJob, error) {
	job := &model.PosterJob{State: model.PosterCreated, StartedAt: s.now()}
	if templateURL == "" || userImageURL == "" {
		return s.finish(job, model.PosterFailed, model.ErrPosterInput)
	}

	ctx, span := tracing.StartSpan(ctx, "poster.generate")
	var err error
	defer func() {
		span.SetAttributes(
			attribute.String("poster.task_id", job.TaskID),
			attribute.String("poster.state", string(job.State)),
			attribute.Int("poster.attempts", job.Attempts),
		)
		tracing.EndSpan(span, err)
	}()

	job.TaskID, err = s.jobs.CreateTask(ctx, templateURL, userImageURL)
	if err != nil {
		return s.finish(job, model.PosterFailed, err)
	}
	logger.Log.Info("poster task created", zap.String("task_id", job.TaskID))

	interval, maxAttempts := s.limits()
	job.State = model.PosterPolling
	for job.Attempts < maxAttempts {
		if err = wait(ctx, interval); err != nil {
			return s.finish(job, model.PosterFailed, err)
		}
		job.Attempts++

		var status *KIETaskStatus
		status, err = s.jobs.RecordInfo(ctx, job.TaskID)
		if err != nil {
			return s.finish(job, model.PosterFailed, err)
		}

		switch {
		case status.State == KIEStateSuccess && len(status.ResultURLs) > 0:
			job.ImageURL = status.ResultURLs[0]
			return s.finish(job, model.PosterSucceeded, nil)
		case status.State == KIEStateFail:
			msg := status.FailMessage
			if msg == "" {
				msg = GenericPosterFailure
			}
			err = &PosterFailedError{Message: msg}
			return s.finish(job, model.PosterFailed, err)
		}
	}

	err = ErrPosterTimedOut
	return s.finish(job, model.PosterTimedOut, err)
}

func (s *PosterService) finish(job *model.PosterJob, state model.PosterState, err error) (*model.PosterJob, error) {
	job.State = state
	job.FinishedAt = s.now()
	if err != nil {
		job.FailMessage = err.Error()
	}

	outcome := string(state)
	var failed *PosterFailedError
	if state == model.PosterFailed && !errors.As(err, &failed) {
		outcome = "error"
	}
	monitoring.PosterJobs.WithLabelValues(outcome).Inc()
	if job.TaskID != "" {
		monitoring.PosterPollAttempts.Observe(float64(job.Attempts))
	}

	fields := []zap.Field{
		zap.String("task_id", job.TaskID),
		zap.String("state", string(state)),
		zap.Int("attempts", job.Attempts),
	}
	if err != nil {
		logger.Log.Warn("poster generation ended", append(fields, zap.Error(err))...)
	} else {
		logger.Log.Info("poster generation succeeded", append(fields, zap.String("image_url", job.ImageURL))...)
	}
	return job, err
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
