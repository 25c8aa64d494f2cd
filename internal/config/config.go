package config

import (
	"os"
	"strconv"
)

type Config struct {
	DefaultAlgorithm string
	JournalPath      string
	JournalBuffer    int
	LogLevel         string
	LogFormat        string
}

func Load() Config {
	return Config{
		DefaultAlgorithm: envOr("ECSIG_DEFAULT_ALG", "ES256"),
		JournalPath:      os.Getenv("ECSIG_JOURNAL_PATH"),
		JournalBuffer:    envInt("ECSIG_JOURNAL_BUFFER", 1024),
		LogLevel:         envOr("ECSIG_LOG_LEVEL", "info"),
		LogFormat:        envOr("ECSIG_LOG_FORMAT", "text"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
