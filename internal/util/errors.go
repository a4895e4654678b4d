package util

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrPlanNotFound    = errors.New("no plan has been generated for this session")
	ErrInvalidSession  = errors.New("invalid session id")
)
