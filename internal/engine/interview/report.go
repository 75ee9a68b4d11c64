package interview

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// AnswerAnalysis pairs a question and its answer with the analysis result.
type AnswerAnalysis struct {
	Index    int            `json:"index"`
	Question string         `json:"question"`
	Answer   string         `json:"answer"`
	Result   AnalysisResult `json:"result"`
}

// Report aggregates the analysis of every answer in a session.
type Report struct {
	Answers         []AnswerAnalysis `json:"answers"`
	OverallScore    int              `json:"overall_score"`
	KeywordHits     int              `json:"keyword_hits"`
	KeywordTotal    int              `json:"keyword_total"`
	MissingKeywords []string         `json:"missing_keywords"`
}

// BuildReport scores the answer of every question against the keywords of
// jdText. Questions without an answer are scored as empty answers.
func BuildReport(questions []string, answers map[int]string, jdText string) Report {
	return buildReport(questions, answers, ExtractKeywords(jdText))
}

func buildReport(questions []string, answers map[int]string, keywords []string) Report {
	analyses := slice.Map(questions, func(idx int, q string) AnswerAnalysis {
		a := answers[idx]
		return AnswerAnalysis{
			Index:    idx,
			Question: q,
			Answer:   a,
			Result:   ScoreAnswer(a, keywords),
		}
	})

	total := 0
	for _, a := range analyses {
		total += a.Result.Score
	}
	overall := 0
	if len(analyses) > 0 {
		overall = roundHalfUp(float64(total) / float64(len(analyses)))
	}

	lowerAnswers := slice.Map(analyses, func(_ int, a AnswerAnalysis) string {
		return strings.ToLower(a.Answer)
	})
	hits := 0
	missing := []string{}
	for _, kw := range keywords {
		if anyContains(lowerAnswers, kw) {
			hits++
		} else {
			missing = append(missing, kw)
		}
	}

	return Report{
		Answers:         analyses,
		OverallScore:    overall,
		KeywordHits:     hits,
		KeywordTotal:    len(keywords),
		MissingKeywords: missing,
	}
}

func anyContains(lowerTexts []string, kw string) bool {
	for _, t := range lowerTexts {
		if containsKeyword(t, kw) {
			return true
		}
	}
	return false
}
