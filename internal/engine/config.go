package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	MaxQuestions         int
	MaxJDChars           int
	SessionTTL           time.Duration
	SessionMaxEntries    int
	SessionSweepInterval time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	SlowOpThreshold      time.Duration
}

// DefaultConfig mirrors the env defaults used by main.
var DefaultConfig = Config{
	MaxQuestions:         6,
	MaxJDChars:           20000,
	SessionTTL:           2 * time.Hour,
	SessionMaxEntries:    500,
	SessionSweepInterval: 5 * time.Minute,
	CacheMaxEntries:      1000,
	CacheCleanupInterval: 5 * time.Minute,
	SlowOpThreshold:      2 * time.Second,
}

var cfg = DefaultConfig

// Cfg exposes the engine configuration to sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
