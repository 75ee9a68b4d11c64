package interviewserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_interview/internal/engine"
	"github.com/anatolykoptev/go_interview/internal/engine/interview"
	"github.com/ecodeclub/ekit/slice"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SessionView is the tool-facing projection of an interview session.
type SessionView struct {
	SessionID string                `json:"session_id"`
	Keywords  []string              `json:"keywords"`
	Questions []engine.QuestionView `json:"questions"`
	Answered  int                   `json:"answered"`
	Report    *interview.Report     `json:"report,omitempty"`
	UpdatedAt string                `json:"updated_at"`
}

func newSessionView(s interview.Session) SessionView {
	return SessionView{
		SessionID: s.ID,
		Keywords:  s.Keywords,
		Questions: slice.Map(s.Questions, func(idx int, q string) engine.QuestionView {
			return engine.QuestionView{Index: idx, Question: q, Answer: s.Answers[idx]}
		}),
		Answered:  s.Answered(),
		Report:    s.Report,
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func registerInterviewStart(server *mcp.Server, store *interview.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_start",
		Description: "Start a practice interview for a job description. Extracts keywords, generates questions and returns a session_id to use with interview_answer and interview_report. Sessions live in memory and expire after inactivity.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.InterviewStartInput) (*mcp.CallToolResult, SessionView, error) {
		out, err := interviewStart(ctx, store, input)
		return nil, out, err
	})
}

func interviewStart(_ context.Context, store *interview.Store, input engine.InterviewStartInput) (SessionView, error) {
	jd := engine.NormalizeJobDescription(input.JobDescription)
	if jd == "" {
		return SessionView{}, errors.New("job_description is required")
	}
	sess := store.Start(jd, maxQuestions(input.MaxQuestions))
	engine.IncrSessionsStarted()
	slog.Info("interview_start: session created",
		slog.String("session", sess.ID),
		slog.Int("keywords", len(sess.Keywords)),
		slog.Int("questions", len(sess.Questions)),
	)
	return newSessionView(sess), nil
}

func registerInterviewAnswer(server *mcp.Server, store *interview.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_answer",
		Description: "Record or replace the answer to one question (zero-based index) of a practice interview session.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.InterviewAnswerInput) (*mcp.CallToolResult, SessionView, error) {
		out, err := interviewAnswer(ctx, store, input)
		return nil, out, err
	})
}

func interviewAnswer(_ context.Context, store *interview.Store, input engine.InterviewAnswerInput) (SessionView, error) {
	if input.SessionID == "" {
		return SessionView{}, errors.New("session_id is required")
	}
	sess, err := store.Answer(input.SessionID, input.Index, input.Answer)
	if err != nil {
		return SessionView{}, fmt.Errorf("interview_answer: %w", err)
	}
	slog.Debug("interview_answer: recorded",
		slog.String("session", sess.ID),
		slog.Int("index", input.Index),
		slog.String("preview", engine.TruncateAtWord(input.Answer, 80)),
	)
	return newSessionView(sess), nil
}

func registerInterviewReport(server *mcp.Server, store *interview.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_report",
		Description: "Analyze all answers of a practice interview session and return the session with a fresh report that replaces any earlier one.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.InterviewReportInput) (*mcp.CallToolResult, SessionView, error) {
		out, err := interviewReport(ctx, store, input)
		return nil, out, err
	})
}

func interviewReport(ctx context.Context, store *interview.Store, input engine.InterviewReportInput) (SessionView, error) {
	if input.SessionID == "" {
		return SessionView{}, errors.New("session_id is required")
	}
	var sess interview.Session
	err := engine.TrackOperation(ctx, "interview_report", func(context.Context) error {
		var err error
		sess, err = store.Analyze(input.SessionID)
		return err
	})
	if err != nil {
		return SessionView{}, fmt.Errorf("interview_report: %w", err)
	}
	engine.IncrReportsBuilt()
	engine.IncrAnswersScored(len(sess.Questions))
	slog.Info("interview_report: analyzed",
		slog.String("session", sess.ID),
		slog.Int("answered", sess.Answered()),
		slog.Int("overall", sess.Report.OverallScore),
	)
	return newSessionView(sess), nil
}
