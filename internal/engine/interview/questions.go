package interview

import "fmt"

// DefaultMaxQuestions is the question count used when the caller passes <= 0.
const DefaultMaxQuestions = 6

// baseQuestions open every session regardless of the job description.
var baseQuestions = []string{
	"Tell me about yourself and why this role interests you.",
	"Describe a challenging situation at work and how you handled it.",
	"Tell me about a time you had to learn something new quickly.",
}

var keywordTemplates = []string{
	"Tell me about a time you worked with %s. What was the result?",
	"How have you applied %s in a recent project?",
	"What is the hardest problem you solved involving %s?",
}

// GenerateQuestions builds an ordered question list: the fixed behavioural
// prompts first, then one prompt per keyword, capped at limit.
func GenerateQuestions(keywords []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxQuestions
	}
	questions := make([]string, 0, limit)
	for _, q := range baseQuestions {
		if len(questions) == limit {
			return questions
		}
		questions = append(questions, q)
	}
	for i, kw := range keywords {
		if len(questions) == limit {
			break
		}
		questions = append(questions, fmt.Sprintf(keywordTemplates[i%len(keywordTemplates)], kw))
	}
	return questions
}
