package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables that override the config file
const (
	EnvServerURL   = "TODO_SERVER_URL"
	EnvTimeout     = "TODO_TIMEOUT"
	EnvLoadOnStart = "TODO_LOAD_ON_START"
	EnvLogLevel    = "TODO_LOG_LEVEL"
	EnvLogFormat   = "TODO_LOG_FORMAT"
	EnvLogFile     = "TODO_LOG_FILE"
)

func applyEnv(cfg *Config) error {
	cfg.ServerURL = envStr(EnvServerURL, cfg.ServerURL)
	cfg.Log.Level = envStr(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = envStr(EnvLogFormat, cfg.Log.Format)
	cfg.Log.File = envStr(EnvLogFile, cfg.Log.File)

	timeout, err := envDuration(EnvTimeout, cfg.Timeout)
	if err != nil {
		return err
	}
	cfg.Timeout = timeout

	load, err := envBool(EnvLoadOnStart, cfg.LoadOnStart)
	if err != nil {
		return err
	}
	cfg.LoadOnStart = load

	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
