package interview

import (
	"regexp"
	"strings"
)

// MaxKeywords caps the keyword set extracted from a job description.
const MaxKeywords = 40

// nonWordRe matches runs of characters that are neither word chars nor whitespace.
var nonWordRe = regexp.MustCompile(`[^\w\s]+`)

// keywordStopWords filters common English words that survive the length cut
// but say nothing about the role.
var keywordStopWords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "also": true,
	"been": true, "before": true, "being": true, "below": true, "between": true,
	"both": true, "could": true, "does": true, "doing": true, "down": true,
	"during": true, "each": true, "from": true, "further": true, "have": true,
	"having": true, "here": true, "into": true, "just": true, "more": true,
	"most": true, "must": true, "only": true, "other": true, "ours": true,
	"over": true, "same": true, "should": true, "some": true, "such": true,
	"than": true, "that": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"through": true, "under": true, "until": true, "very": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"will": true, "with": true, "within": true, "would": true, "your": true,
	"yours": true, "able": true, "work": true, "working": true, "team": true,
	"role": true, "join": true, "looking": true, "including": true, "strong": true,
	"experience": true, "years": true, "like": true, "well": true, "plus": true,
}

// ExtractKeywords tokenizes free text (typically a job description) into an
// ordered, deduplicated keyword set capped at MaxKeywords.
// Tokens of 3 characters or fewer and stop words are dropped.
func ExtractKeywords(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	seen := make(map[string]bool)
	keywords := []string{}
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 3 || keywordStopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}

// containsKeyword reports whether the lowercased text contains kw as a substring.
func containsKeyword(lowerText, kw string) bool {
	return kw != "" && strings.Contains(lowerText, kw)
}
