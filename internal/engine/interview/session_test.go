package interview

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJD = "Backend engineer: Golang, Kubernetes, PostgreSQL. You will design APIs and mentor engineers."

func TestNewSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession("abc", sampleJD, 5, now)

	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, ExtractKeywords(sampleJD), s.Keywords)
	assert.Len(t, s.Questions, 5)
	assert.Empty(t, s.Answers)
	assert.Nil(t, s.Report)
	assert.Equal(t, now, s.CreatedAt)
	assert.Equal(t, now, s.UpdatedAt)
}

func TestSessionWithAnswer_DoesNotMutate(t *testing.T) {
	now := time.Now()
	s := NewSession("abc", sampleJD, 4, now)

	s2, err := s.WithAnswer(1, "I designed the APIs.", now.Add(time.Minute))
	require.NoError(t, err)

	assert.Empty(t, s.Answers, "original session must stay untouched")
	assert.Equal(t, "I designed the APIs.", s2.Answers[1])
	assert.Equal(t, now.Add(time.Minute), s2.UpdatedAt)
	assert.Equal(t, 1, s2.Answered())

	s3, err := s2.WithAnswer(1, "Replaced.", now)
	require.NoError(t, err)
	assert.Equal(t, "I designed the APIs.", s2.Answers[1])
	assert.Equal(t, "Replaced.", s3.Answers[1])
}

func TestSessionWithAnswer_OutOfRange(t *testing.T) {
	s := NewSession("abc", sampleJD, 3, time.Now())
	for _, idx := range []int{-1, 3, 100} {
		_, err := s.WithAnswer(idx, "x", time.Now())
		if !errors.Is(err, ErrQuestionIndex) {
			t.Errorf("WithAnswer(%d) error = %v, want ErrQuestionIndex", idx, err)
		}
	}
}

func TestSessionAnalyze(t *testing.T) {
	now := time.Now()
	s := NewSession("abc", sampleJD, 4, now)
	s, err := s.WithAnswer(0, "I led a team building Golang services on Kubernetes and improved latency by 30%.", now)
	require.NoError(t, err)

	analyzed := s.Analyze(now.Add(time.Second))
	require.NotNil(t, analyzed.Report)
	assert.Nil(t, s.Report, "original session must not gain a report")
	assert.Equal(t, BuildReport(s.Questions, s.Answers, sampleJD), *analyzed.Report)

	// A second analysis replaces the report wholesale.
	edited, err := analyzed.WithAnswer(0, "", now)
	require.NoError(t, err)
	again := edited.Analyze(now)
	assert.NotEqual(t, analyzed.Report.OverallScore, again.Report.OverallScore)
	assert.Equal(t, 0, again.Report.KeywordHits)
}
