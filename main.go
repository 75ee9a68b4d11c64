// go_interview: interview practice MCP server.
//
// Extracts keywords from a job description, generates practice questions and
// scores free-text answers with lightweight text heuristics.
// Runs over stdio (default) or as an HTTP MCP server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_interview/internal/engine"
	"github.com/anatolykoptev/go_interview/internal/engine/interview"
	"github.com/anatolykoptev/go_interview/internal/interviewserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("dotenv load failed", slog.Any("error", err))
	}
	initLogger(env.Str("LOG_LEVEL", "info"))
	initEngine()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := interview.NewStore(engine.Cfg.SessionTTL, engine.Cfg.SessionMaxEntries)
	go store.RunCleanup(ctx, engine.Cfg.SessionSweepInterval, engine.IncrSessionsExpired)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_interview",
		Version: version,
	}, nil)

	interviewserver.RegisterTools(server, store)
	slog.Info("tools registered", slog.Int("count", interviewserver.ToolCount))

	transport := strings.ToLower(env.Str("MCP_TRANSPORT", "stdio"))
	slog.Info("starting go_interview", slog.String("transport", transport), slog.String("version", version))

	var err error
	switch transport {
	case "http":
		err = mcpserver.Run(server, mcpserver.Config{
			Name:         "go_interview",
			Version:      version,
			Port:         env.Str("MCP_PORT", "8892"),
			WriteTimeout: env.Duration("MCP_WRITE_TIMEOUT", 60*time.Second),
			Metrics:      engine.FormatMetrics,
		})
	default:
		err = server.Run(ctx, &mcp.StdioTransport{})
	}
	if err != nil && ctx.Err() == nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger routes slog to stderr; stdout belongs to the stdio transport.
func initLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func initEngine() {
	d := engine.DefaultConfig
	c := engine.Config{
		MaxQuestions:         env.Int("MAX_QUESTIONS", d.MaxQuestions),
		MaxJDChars:           env.Int("MAX_JD_CHARS", d.MaxJDChars),
		SessionTTL:           env.Duration("SESSION_TTL", d.SessionTTL),
		SessionMaxEntries:    env.Int("SESSION_MAX_ENTRIES", d.SessionMaxEntries),
		SessionSweepInterval: env.Duration("SESSION_SWEEP_INTERVAL", d.SessionSweepInterval),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", d.CacheMaxEntries),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", d.CacheCleanupInterval),
		SlowOpThreshold:      env.Duration("SLOW_OP_THRESHOLD", d.SlowOpThreshold),
	}
	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
