package interview

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Sentiment is the coarse tone label of an answer.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Composite score weights.
const (
	overlapWeight  = 40
	fluencyWeight  = 20
	starWeight     = 30
	pacingGood     = 10
	pacingPoor     = 5
	fillerTolerate = 5
	pacingMinWords = 8
	pacingMaxWords = 25
)

// fillerTerms are counted as raw substrings, so "so" also matches inside words.
var fillerTerms = []string{
	"um", "uh", "like", "you know", "so", "basically",
	"actually", "literally", "kind of", "sort of",
}

var positiveWords = map[string]bool{
	"great": true, "good": true, "success": true, "successful": true,
	"successfully": true, "improved": true, "achieved": true, "happy": true,
	"excited": true, "love": true, "proud": true, "effective": true,
	"positive": true, "excellent": true, "enjoyed": true, "win": true,
}

var negativeWords = map[string]bool{
	"bad": true, "fail": true, "failed": true, "failure": true,
	"problem": true, "difficult": true, "hate": true, "poor": true,
	"issue": true, "negative": true, "conflict": true, "wrong": true,
	"blame": true, "frustrated": true, "terrible": true,
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// AnalysisResult holds the heuristic metrics for one answer.
type AnalysisResult struct {
	KeywordOverlap      float64   `json:"kw_overlap"`
	MatchedKeywords     []string  `json:"matched_keywords"`
	FillerCount         int       `json:"filler_count"`
	STAR                STARFlags `json:"star"`
	STARScore           float64   `json:"star_score"`
	Sentiment           Sentiment `json:"sentiment"`
	WordCount           int       `json:"word_count"`
	AvgWordsPerSentence float64   `json:"avg_words_per_sentence"`
	Score               int       `json:"score"`
}

// ScoreAnswer computes the heuristic metrics of answer against keywords and
// combines overlap, fluency, STAR coverage and pacing into one score.
// Empty input degrades to zero metrics; it never fails.
func ScoreAnswer(answer string, keywords []string) AnalysisResult {
	lower := strings.ToLower(answer)

	overlap, matched := keywordOverlap(lower, keywords)
	fillers := CountFillers(answer)
	star := CheckSTAR(answer)
	words, avg := Pacing(answer)

	r := AnalysisResult{
		KeywordOverlap:      overlap,
		MatchedKeywords:     matched,
		FillerCount:         fillers,
		STAR:                star,
		STARScore:           star.Score(),
		Sentiment:           DetectSentiment(answer),
		WordCount:           words,
		AvgWordsPerSentence: avg,
	}
	r.Score = compositeScore(overlap, fillers, r.STARScore, words, avg)
	return r
}

// keywordOverlap returns the fraction of keywords found in lowerText and the
// matched keywords in keyword order.
func keywordOverlap(lowerText string, keywords []string) (float64, []string) {
	matched := []string{}
	if len(keywords) == 0 {
		return 0, matched
	}
	for _, kw := range keywords {
		if containsKeyword(lowerText, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return float64(len(matched)) / float64(len(keywords)), matched
}

// CountFillers sums non-overlapping substring occurrences of every filler term.
func CountFillers(answer string) int {
	lower := strings.ToLower(answer)
	n := 0
	for _, f := range fillerTerms {
		n += strings.Count(lower, f)
	}
	return n
}

// DetectSentiment compares positive and negative word counts. Ties are positive.
func DetectSentiment(answer string) Sentiment {
	tokens := strings.FieldsFunc(strings.ToLower(answer), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	pos, neg := 0, 0
	for _, t := range tokens {
		switch {
		case positiveWords[t]:
			pos++
		case negativeWords[t]:
			neg++
		}
	}
	if pos >= neg {
		return SentimentPositive
	}
	return SentimentNegative
}

// Pacing returns the word count and the average number of words per sentence.
// Without any sentence the raw word count is returned as the average.
func Pacing(answer string) (words int, avg float64) {
	words = len(strings.Fields(answer))
	sentences := 0
	for _, s := range sentenceSplitRe.Split(answer, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		return words, float64(words)
	}
	return words, float64(words) / float64(sentences)
}

func compositeScore(overlap float64, fillers int, starScore float64, words int, avg float64) int {
	fluency := 0.0
	if words > 0 {
		fluency = clamp(1-float64(fillers)/fillerTolerate, 0, 1)
	}
	pace := pacingPoor
	if avg >= pacingMinWords && avg <= pacingMaxWords {
		pace = pacingGood
	}
	raw := overlap*overlapWeight + fluency*fluencyWeight + starScore*starWeight + float64(pace)
	return max(roundHalfUp(raw), 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
