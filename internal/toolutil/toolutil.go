// Package toolutil provides shared helper functions for go_interview MCP tools.
package toolutil

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_interview/internal/engine"
)

// CachedJSON returns the cached value under key, or computes, stores and
// returns it on a miss. Compute errors are not cached.
func CachedJSON[T any](ctx context.Context, key string, compute func() (T, error)) (T, error) {
	if out, ok := engine.CacheLoadJSON[T](ctx, key); ok {
		return out, nil
	}
	out, err := compute()
	if err != nil {
		return out, err
	}
	engine.CacheStoreJSON(ctx, key, out)
	return out, nil
}

// IndexAnswers keys answers by their position. Blank answers are skipped.
func IndexAnswers(answers []string) map[int]string {
	m := make(map[int]string, len(answers))
	for i, a := range answers {
		if strings.TrimSpace(a) != "" {
			m[i] = a
		}
	}
	return m
}

// NormKeywords lowercases and trims caller-supplied keywords, dropping blanks
// and duplicates while preserving order.
func NormKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}
