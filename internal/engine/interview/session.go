package interview

import (
	"errors"
	"fmt"
	"maps"
	"time"
)

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrQuestionIndex is returned when an answer targets a question that does not exist.
	ErrQuestionIndex = errors.New("question index out of range")
)

// Session is the state of one practice run. It is a value: every action
// returns a new Session and the old one is left untouched.
type Session struct {
	ID             string         `json:"id"`
	JobDescription string         `json:"job_description"`
	Keywords       []string       `json:"keywords"`
	Questions      []string       `json:"questions"`
	Answers        map[int]string `json:"answers"`
	Report         *Report        `json:"report,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewSession extracts keywords from jd and generates up to maxQuestions questions.
func NewSession(id, jd string, maxQuestions int, now time.Time) Session {
	kw := ExtractKeywords(jd)
	return Session{
		ID:             id,
		JobDescription: jd,
		Keywords:       kw,
		Questions:      GenerateQuestions(kw, maxQuestions),
		Answers:        map[int]string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithAnswer returns a copy of s with the answer to question idx replaced.
// A previously built report is kept until the next Analyze.
func (s Session) WithAnswer(idx int, answer string, now time.Time) (Session, error) {
	if idx < 0 || idx >= len(s.Questions) {
		return s, fmt.Errorf("%w: %d (have %d questions)", ErrQuestionIndex, idx, len(s.Questions))
	}
	answers := maps.Clone(s.Answers)
	if answers == nil {
		answers = map[int]string{}
	}
	answers[idx] = answer

	next := s
	next.Answers = answers
	next.UpdatedAt = now
	return next, nil
}

// Analyze returns a copy of s carrying a freshly built report.
func (s Session) Analyze(now time.Time) Session {
	r := buildReport(s.Questions, s.Answers, s.Keywords)
	next := s
	next.Report = &r
	next.UpdatedAt = now
	return next
}

// Answered returns how many questions have a non-empty answer.
func (s Session) Answered() int {
	n := 0
	for i := range s.Questions {
		if s.Answers[i] != "" {
			n++
		}
	}
	return n
}
