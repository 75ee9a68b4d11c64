package interviewserver

import (
	"github.com/anatolykoptev/go_interview/internal/engine/interview"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all interview coach tools on the given MCP server:
// extract_keywords, generate_questions, score_answer, build_report and the
// interview_start / interview_answer / interview_report session tools.
func RegisterTools(server *mcp.Server, store *interview.Store) {
	registerExtractKeywords(server)
	registerGenerateQuestions(server)
	registerScoreAnswer(server)
	registerBuildReport(server)
	registerInterviewStart(server, store)
	registerInterviewAnswer(server, store)
	registerInterviewReport(server, store)
}

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 7
