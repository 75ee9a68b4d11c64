// coach is the command-line front end of go_interview: paste a job
// description, get questions, score answers and print a report.
package main

import (
	"log/slog"
	"os"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_interview/internal/engine"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(env.Str("LOG_LEVEL", "warn"))); err != nil {
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	c := engine.DefaultConfig
	c.MaxQuestions = env.Int("MAX_QUESTIONS", c.MaxQuestions)
	c.MaxJDChars = env.Int("MAX_JD_CHARS", c.MaxJDChars)
	engine.Init(c)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
