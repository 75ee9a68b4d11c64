package engine

// --- Interview coach tool types ---

type ExtractKeywordsInput struct {
	Text string `json:"text" jsonschema:"Free text to tokenize, usually a job description (plain text or HTML)"`
}

type ExtractKeywordsOutput struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

type GenerateQuestionsInput struct {
	JobDescription string `json:"job_description" jsonschema:"Job description text or HTML"`
	MaxQuestions   int    `json:"max_questions,omitempty" jsonschema:"Maximum number of questions (default: 6)"`
}

type GenerateQuestionsOutput struct {
	Keywords  []string `json:"keywords"`
	Questions []string `json:"questions"`
}

type ScoreAnswerInput struct {
	Answer         string   `json:"answer" jsonschema:"Free-text interview answer"`
	Keywords       []string `json:"keywords,omitempty" jsonschema:"Keywords to look for; takes precedence over job_description"`
	JobDescription string   `json:"job_description,omitempty" jsonschema:"Job description to extract keywords from when keywords are not given"`
}

type BuildReportInput struct {
	Questions      []string `json:"questions" jsonschema:"Ordered interview questions"`
	Answers        []string `json:"answers" jsonschema:"Answers aligned with questions by index; missing entries count as empty"`
	JobDescription string   `json:"job_description" jsonschema:"Job description text or HTML"`
}

type InterviewStartInput struct {
	JobDescription string `json:"job_description" jsonschema:"Job description text or HTML"`
	MaxQuestions   int    `json:"max_questions,omitempty" jsonschema:"Maximum number of questions (default: 6)"`
}

type InterviewAnswerInput struct {
	SessionID string `json:"session_id" jsonschema:"Session id returned by interview_start"`
	Index     int    `json:"index" jsonschema:"Zero-based question index"`
	Answer    string `json:"answer" jsonschema:"Answer text; replaces any previous answer"`
}

type InterviewReportInput struct {
	SessionID string `json:"session_id" jsonschema:"Session id returned by interview_start"`
}

// QuestionView is one question with its current answer.
type QuestionView struct {
	Index    int    `json:"index"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}
