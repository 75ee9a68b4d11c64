package engine

import (
	"log/slog"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// NormalizeJobDescription turns a pasted job description into plain text.
// HTML postings are converted to markdown; when conversion fails goquery text
// extraction is used, then regex tag stripping. The result is capped at
// Cfg.MaxJDChars runes.
func NormalizeJobDescription(raw string) string {
	text := strings.TrimSpace(raw)
	if LooksLikeHTML(text) {
		metrics.HTMLNormalized.Add(1)
		text = htmlToText(text)
	}
	if limit := Cfg.MaxJDChars; limit > 0 {
		text = TruncateRunes(text, limit, "")
	}
	return text
}

func htmlToText(html string) string {
	md, err := htmltomarkdown.ConvertString(html)
	if err == nil && strings.TrimSpace(md) != "" {
		return collapseBlankLines(strings.TrimSpace(md))
	}
	metrics.HTMLFallbacks.Add(1)
	slog.Warn("jobdesc: markdown conversion failed, falling back to goquery", slog.Any("error", err))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		if text := strings.TrimSpace(doc.Find("body").Text()); text != "" {
			return collapseBlankLines(text)
		}
	}
	return CleanHTML(html)
}
