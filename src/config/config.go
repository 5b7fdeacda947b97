package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	LogLevel       string
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string
	RedisAddr      string
}

func NewConfig() (Config, error) {
	// Get backend address from environment
	apiBaseURL := os.Getenv("CURALINK_API_URL")
	if apiBaseURL == "" {
		return Config{}, fmt.Errorf("CURALINK_API_URL environment variable is required")
	}

	timeout := 15 * time.Second
	if timeoutStr := os.Getenv("CURALINK_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.ParseInt(timeoutStr, 10, 32)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("CURALINK_TIMEOUT_SECONDS must be a positive integer")
		}
		timeout = time.Duration(seconds) * time.Second
	}

	sessionFile := os.Getenv("CURALINK_SESSION_FILE")
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot resolve home directory for session file: %w", err)
		}
		sessionFile = filepath.Join(home, ".curalink", "session.json")
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		LogLevel:       logLevel,
		APIBaseURL:     apiBaseURL,
		RequestTimeout: timeout,
		SessionFile:    sessionFile,
		// Optional: when set, session state is kept in Redis instead of a file
		RedisAddr: os.Getenv("CURALINK_REDIS_ADDR"),
	}, nil
}
