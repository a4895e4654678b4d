package model

import "time"

type PosterState string

const (
	PosterCreated   PosterState = "created"
	PosterPolling   PosterState = "polling"
	PosterSucceeded PosterState = "succeeded"
	PosterFailed    PosterState = "failed"
	PosterTimedOut  PosterState = "timed_out"
)

// Terminal 是否为终态
func (s PosterState) Terminal() bool {
	return s == PosterSucceeded || s == PosterFailed || s == PosterTimedOut
}

// PosterJob 一次海报生成任务的结果记录
type PosterJob struct {
	TaskID      string      `json:"taskId"`
	State       PosterState `json:"state"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	FailMessage string      `json:"failMessage,omitempty"`
	Attempts    int         `json:"attempts"`
	StartedAt   time.Time   `json:"startedAt"`
	FinishedAt  time.Time   `json:"finishedAt"`
}
