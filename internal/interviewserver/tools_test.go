package interviewserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anatolykoptev/go_interview/internal/engine"
	"github.com/anatolykoptev/go_interview/internal/engine/interview"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJD = "<h2>Backend engineer</h2><ul><li>Golang and Kubernetes</li><li>Design APIs, mentor engineers</li></ul>"

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "go_interview", Version: "test"}, nil)
	assert.NotPanics(t, func() {
		RegisterTools(server, interview.NewStore(time.Hour, 10))
	})
}

func TestExtractKeywords(t *testing.T) {
	out, err := extractKeywords(context.Background(), engine.ExtractKeywordsInput{Text: testJD})
	require.NoError(t, err)
	assert.Equal(t, len(out.Keywords), out.Count)
	assert.Contains(t, out.Keywords, "golang")
	assert.Contains(t, out.Keywords, "kubernetes")
	for _, kw := range out.Keywords {
		assert.NotContains(t, kw, "<")
	}

	empty, err := extractKeywords(context.Background(), engine.ExtractKeywordsInput{})
	require.NoError(t, err)
	assert.Empty(t, empty.Keywords)
	assert.Zero(t, empty.Count)
}

func TestGenerateQuestions(t *testing.T) {
	ctx := context.Background()

	_, err := generateQuestions(ctx, engine.GenerateQuestionsInput{})
	assert.Error(t, err)

	out, err := generateQuestions(ctx, engine.GenerateQuestionsInput{JobDescription: testJD, MaxQuestions: 4})
	require.NoError(t, err)
	assert.Len(t, out.Questions, 4)
	assert.NotEmpty(t, out.Keywords)
}

func TestMaxQuestions(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"default", 0, engine.Cfg.MaxQuestions},
		{"negative", -3, engine.Cfg.MaxQuestions},
		{"explicit", 4, 4},
		{"capped", 500, questionCap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maxQuestions(tt.in))
		})
	}
}

func TestScoreAnswer(t *testing.T) {
	ctx := context.Background()
	answer := "I led a project, solved the problem and improved results by 20%"

	t.Run("explicit keywords", func(t *testing.T) {
		got, err := scoreAnswer(ctx, engine.ScoreAnswerInput{
			Answer:   answer,
			Keywords: []string{" Project ", "RESULTS", "project"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.KeywordOverlap)
		assert.True(t, got.STAR.Action)
		assert.True(t, got.STAR.Result)
	})

	t.Run("keywords from job description", func(t *testing.T) {
		got, err := scoreAnswer(ctx, engine.ScoreAnswerInput{
			Answer:         "I built Golang services on Kubernetes.",
			JobDescription: testJD,
		})
		require.NoError(t, err)
		assert.Contains(t, got.MatchedKeywords, "golang")
		assert.Contains(t, got.MatchedKeywords, "kubernetes")
	})

	t.Run("no keywords", func(t *testing.T) {
		got, err := scoreAnswer(ctx, engine.ScoreAnswerInput{})
		require.NoError(t, err)
		assert.Equal(t, 5, got.Score)
	})
}

func TestBuildReport(t *testing.T) {
	ctx := context.Background()

	t.Run("requires questions", func(t *testing.T) {
		_, err := buildReport(ctx, engine.BuildReportInput{JobDescription: testJD})
		assert.Error(t, err)
	})

	t.Run("too many answers", func(t *testing.T) {
		_, err := buildReport(ctx, engine.BuildReportInput{
			Questions: []string{"q1"},
			Answers:   []string{"a1", "a2"},
		})
		assert.Error(t, err)
	})

	t.Run("aggregates", func(t *testing.T) {
		report, err := buildReport(ctx, engine.BuildReportInput{
			Questions:      []string{"Tell me about yourself.", "Why Golang?"},
			Answers:        []string{"I mentor engineers and design APIs."},
			JobDescription: testJD,
		})
		require.NoError(t, err)
		require.Len(t, report.Answers, 2)
		assert.Equal(t, "", report.Answers[1].Answer)
		assert.Equal(t, 5, report.Answers[1].Result.Score)
		assert.LessOrEqual(t, report.KeywordHits, report.KeywordTotal)
		assert.Positive(t, report.KeywordHits)
		assert.NotContains(t, report.MissingKeywords, "mentor")
	})
}

func TestInterviewSessionFlow(t *testing.T) {
	ctx := context.Background()
	store := interview.NewStore(time.Hour, 10)

	_, err := interviewStart(ctx, store, engine.InterviewStartInput{JobDescription: "  "})
	assert.Error(t, err)

	started, err := interviewStart(ctx, store, engine.InterviewStartInput{JobDescription: testJD, MaxQuestions: 4})
	require.NoError(t, err)
	require.NotEmpty(t, started.SessionID)
	require.Len(t, started.Questions, 4)
	assert.Zero(t, started.Answered)
	assert.Nil(t, started.Report)

	answered, err := interviewAnswer(ctx, store, engine.InterviewAnswerInput{
		SessionID: started.SessionID,
		Index:     1,
		Answer:    "I designed Golang APIs and reduced latency by 30%.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, answered.Answered)
	assert.Equal(t, "I designed Golang APIs and reduced latency by 30%.", answered.Questions[1].Answer)

	_, err = interviewAnswer(ctx, store, engine.InterviewAnswerInput{SessionID: started.SessionID, Index: 9, Answer: "x"})
	assert.True(t, errors.Is(err, interview.ErrQuestionIndex))

	reported, err := interviewReport(ctx, store, engine.InterviewReportInput{SessionID: started.SessionID})
	require.NoError(t, err)
	require.NotNil(t, reported.Report)
	assert.Len(t, reported.Report.Answers, 4)
	assert.True(t, reported.Report.Answers[1].Result.STAR.Result)
}

func TestInterviewUnknownSession(t *testing.T) {
	ctx := context.Background()
	store := interview.NewStore(time.Hour, 10)

	_, err := interviewAnswer(ctx, store, engine.InterviewAnswerInput{SessionID: "nope", Answer: "x"})
	assert.True(t, errors.Is(err, interview.ErrSessionNotFound))

	_, err = interviewReport(ctx, store, engine.InterviewReportInput{SessionID: "nope"})
	assert.True(t, errors.Is(err, interview.ErrSessionNotFound))

	_, err = interviewReport(ctx, store, engine.InterviewReportInput{})
	assert.Error(t, err)
}
