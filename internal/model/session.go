package model

import "time"

// Session 浏览会话内的临时状态，过期即丢弃
type Session struct {
	ID            string         `json:"id"`
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
	Plan          *Plan          `json:"plan,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// SetPosterURL 海报生成后唯一的原地修改点
func (s *Session) SetPosterURL(url string) {
	if s.Questionnaire == nil {
		s.Questionnaire = &Questionnaire{}
	}
	s.Questionnaire.GeneratedPosterURL = url
	if s.Plan != nil {
		s.Plan.Questionnaire.GeneratedPosterURL = url
	}
}
