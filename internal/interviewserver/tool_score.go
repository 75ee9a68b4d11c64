package interviewserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_interview/internal/engine"
	"github.com/anatolykoptev/go_interview/internal/engine/interview"
	"github.com/anatolykoptev/go_interview/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerScoreAnswer(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_answer",
		Description: "Score one interview answer with simple heuristics: keyword overlap, filler-word count, STAR structure cues, word-list sentiment and words per sentence, combined into a 0-100 score. Pass keywords directly or a job_description to extract them from.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ScoreAnswerInput) (*mcp.CallToolResult, interview.AnalysisResult, error) {
		out, err := scoreAnswer(ctx, input)
		return nil, out, err
	})
}

func scoreAnswer(_ context.Context, input engine.ScoreAnswerInput) (interview.AnalysisResult, error) {
	keywords := toolutil.NormKeywords(input.Keywords)
	if len(keywords) == 0 && input.JobDescription != "" {
		keywords = interview.ExtractKeywords(engine.NormalizeJobDescription(input.JobDescription))
	}
	engine.IncrAnswersScored(1)
	return interview.ScoreAnswer(input.Answer, keywords), nil
}

func registerBuildReport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_report",
		Description: "Score every answer of a question list against a job description and aggregate them: per-answer analysis, overall average score, number of job keywords covered by at least one answer and the keywords never mentioned.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.BuildReportInput) (*mcp.CallToolResult, interview.Report, error) {
		out, err := buildReport(ctx, input)
		return nil, out, err
	})
}

func buildReport(ctx context.Context, input engine.BuildReportInput) (interview.Report, error) {
	if len(input.Questions) == 0 {
		return interview.Report{}, errors.New("questions are required")
	}
	if len(input.Answers) > len(input.Questions) {
		return interview.Report{}, fmt.Errorf("got %d answers for %d questions", len(input.Answers), len(input.Questions))
	}

	jd := engine.NormalizeJobDescription(input.JobDescription)
	cacheKey := engine.CacheKey("build_report", jd,
		strings.Join(input.Questions, "\x1f"), strings.Join(input.Answers, "\x1f"))

	return toolutil.CachedJSON(ctx, cacheKey, func() (interview.Report, error) {
		var report interview.Report
		err := engine.TrackOperation(ctx, "build_report", func(context.Context) error {
			report = interview.BuildReport(input.Questions, toolutil.IndexAnswers(input.Answers), jd)
			return nil
		})
		engine.IncrReportsBuilt()
		engine.IncrAnswersScored(len(report.Answers))
		return report, err
	})
}
