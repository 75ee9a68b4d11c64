package interviewserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_interview/internal/engine"
	"github.com/anatolykoptev/go_interview/internal/engine/interview"
	"github.com/anatolykoptev/go_interview/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerExtractKeywords(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_keywords",
		Description: "Extract up to 40 lowercase keywords from a job description. Tokens of 3 characters or fewer and common stop words are dropped; order of first appearance is kept. HTML postings are converted to text first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ExtractKeywordsInput) (*mcp.CallToolResult, engine.ExtractKeywordsOutput, error) {
		out, err := extractKeywords(ctx, input)
		return nil, out, err
	})
}

func extractKeywords(ctx context.Context, input engine.ExtractKeywordsInput) (engine.ExtractKeywordsOutput, error) {
	cacheKey := engine.CacheKey("extract_keywords", input.Text)
	return toolutil.CachedJSON(ctx, cacheKey, func() (engine.ExtractKeywordsOutput, error) {
		engine.IncrKeywordExtractions()
		kw := interview.ExtractKeywords(engine.NormalizeJobDescription(input.Text))
		return engine.ExtractKeywordsOutput{Keywords: kw, Count: len(kw)}, nil
	})
}

func registerGenerateQuestions(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_questions",
		Description: "Generate a short ordered list of interview questions for a job description: a few standard behavioural questions followed by questions about the top keywords of the posting.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.GenerateQuestionsInput) (*mcp.CallToolResult, engine.GenerateQuestionsOutput, error) {
		out, err := generateQuestions(ctx, input)
		return nil, out, err
	})
}

func generateQuestions(_ context.Context, input engine.GenerateQuestionsInput) (engine.GenerateQuestionsOutput, error) {
	if input.JobDescription == "" {
		return engine.GenerateQuestionsOutput{}, errors.New("job_description is required")
	}
	engine.IncrQuestionSets()
	kw := interview.ExtractKeywords(engine.NormalizeJobDescription(input.JobDescription))
	return engine.GenerateQuestionsOutput{
		Keywords:  kw,
		Questions: interview.GenerateQuestions(kw, maxQuestions(input.MaxQuestions)),
	}, nil
}

// questionCap bounds caller-requested question counts.
const questionCap = 20

// maxQuestions falls back to the configured default for non-positive requests.
func maxQuestions(n int) int {
	if n <= 0 {
		return engine.Cfg.MaxQuestions
	}
	return min(n, questionCap)
}
