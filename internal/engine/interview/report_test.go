package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	jd := "We need someone who managed a project and delivered results"
	questions := []string{"Tell me about a project.", "Anything else?"}
	answers := map[int]string{0: "I led a project, solved the problem and improved results by 20%"}

	r := BuildReport(questions, answers, jd)

	require.Len(t, r.Answers, 2)
	assert.Equal(t, 6, r.KeywordTotal)
	assert.Equal(t, 2, r.KeywordHits)
	assert.Equal(t, []string{"need", "someone", "managed", "delivered"}, r.MissingKeywords)

	first := r.Answers[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, questions[0], first.Question)
	assert.InDelta(t, 2.0/6.0, first.Result.KeywordOverlap, 1e-9)
	assert.Equal(t, 54, first.Result.Score)

	second := r.Answers[1]
	assert.Equal(t, "", second.Answer)
	assert.Equal(t, 5, second.Result.Score)

	// (54 + 5) / 2 = 29.5 rounds up.
	assert.Equal(t, 30, r.OverallScore)
}

func TestBuildReport_OverallIsRoundedMean(t *testing.T) {
	questions := []string{"q1", "q2", "q3"}
	answers := map[int]string{
		0: "When I was at my previous job, my task was to migrate the database. I implemented a plan and we reduced costs by 30%.",
		1: "um, like, so basically this was great",
		2: "Kubernetes and Terraform every day.",
	}
	r := BuildReport(questions, answers, "Kubernetes Terraform database migration")

	sum := 0
	for _, a := range r.Answers {
		sum += a.Result.Score
	}
	assert.Equal(t, roundHalfUp(float64(sum)/3), r.OverallScore)
	assert.LessOrEqual(t, r.KeywordHits, r.KeywordTotal)
	assert.Equal(t, r.KeywordTotal, r.KeywordHits+len(r.MissingKeywords))
}

func TestBuildReport_NoQuestions(t *testing.T) {
	r := BuildReport(nil, nil, "Golang engineer")
	assert.Empty(t, r.Answers)
	assert.Equal(t, 0, r.OverallScore)
	assert.Equal(t, 0, r.KeywordHits)
	assert.Equal(t, []string{"golang", "engineer"}, r.MissingKeywords)
}

func TestBuildReport_EmptyJD(t *testing.T) {
	r := BuildReport([]string{"q"}, map[int]string{0: "Some answer here."}, "")
	assert.Equal(t, 0, r.KeywordTotal)
	assert.Equal(t, 0, r.KeywordHits)
	assert.Equal(t, 0.0, r.Answers[0].Result.KeywordOverlap)
}

func TestBuildReport_FreshEachCall(t *testing.T) {
	questions := []string{"q"}
	answers := map[int]string{0: "first answer"}
	r1 := BuildReport(questions, answers, "first answer")

	answers[0] = "changed"
	r2 := BuildReport(questions, answers, "first answer")

	assert.Equal(t, "first answer", r1.Answers[0].Answer)
	assert.Equal(t, "changed", r2.Answers[0].Answer)
	assert.Equal(t, 2, r1.KeywordHits)
	assert.Equal(t, 0, r2.KeywordHits)
}
