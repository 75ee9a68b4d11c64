package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	KeywordExtractions atomic.Int64
	QuestionSets       atomic.Int64
	AnswersScored      atomic.Int64
	ReportsBuilt       atomic.Int64
	SessionsStarted    atomic.Int64
	SessionsExpired    atomic.Int64
	HTMLNormalized     atomic.Int64
	HTMLFallbacks      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"keyword_extractions": metrics.KeywordExtractions.Load(),
		"question_sets":       metrics.QuestionSets.Load(),
		"answers_scored":      metrics.AnswersScored.Load(),
		"reports_built":       metrics.ReportsBuilt.Load(),
		"sessions_started":    metrics.SessionsStarted.Load(),
		"sessions_expired":    metrics.SessionsExpired.Load(),
		"html_normalized":     metrics.HTMLNormalized.Load(),
		"html_fallbacks":      metrics.HTMLFallbacks.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// metricKeys fixes the output order of FormatMetrics.
var metricKeys = []string{
	"keyword_extractions", "question_sets",
	"answers_scored", "reports_built",
	"sessions_started", "sessions_expired",
	"html_normalized", "html_fallbacks",
	"cache_hits", "cache_misses",
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the tool layer.
func IncrKeywordExtractions() { metrics.KeywordExtractions.Add(1) }
func IncrQuestionSets() { metrics.QuestionSets.Add(1) }
func IncrAnswersScored(n int) { metrics.AnswersScored.Add(int64(n)) }
func IncrReportsBuilt() { metrics.ReportsBuilt.Add(1) }
func IncrSessionsStarted() { metrics.SessionsStarted.Add(1) }
func IncrSessionsExpired(n int) { metrics.SessionsExpired.Add(int64(n)) }

// TrackOperation logs a warning if an operation takes longer than Cfg.SlowOpThreshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if threshold := Cfg.SlowOpThreshold; threshold > 0 && elapsed > threshold {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
