package service

import (
	"context"

	"sprintwise_backend/internal/llm"
)

type mockLLMClient struct {
	response string
	err      error
	disabled bool

	calls    int
	lastTask llm.TaskType
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.lastTask = req.Task
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gpt-4o-mini"}, nil
}

func (m *mockLLMClient) Enabled() bool { return !m.disabled }
