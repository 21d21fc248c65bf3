package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration for the kill-feed worker and read API.
type Config struct {
	DBURL         string
	RedisURL      string
	RedisQueue    string
	WorkerCount   int
	JobBufferSize int
	LiveFeedTTL   time.Duration
	HTTPAddr      string
	MetricsAddr   string
}

// Load builds a Config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DBURL:       os.Getenv("DB_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RedisQueue:  os.Getenv("REDIS_QUEUE"),
		HTTPAddr:    os.Getenv("HTTP_ADDR"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}

	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	if cfg.RedisQueue == "" {
		cfg.RedisQueue = "killfeed_matches"
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = ":9090"
	}

	var err error
	cfg.WorkerCount, err = intEnv("WORKER_COUNT", 1)
	if err != nil {
		return nil, err
	}

	cfg.JobBufferSize, err = intEnv("JOB_BUFFER_SIZE", 16)
	if err != nil {
		return nil, err
	}

	ttlSec, err := intEnv("LIVE_FEED_TTL_SEC", 120)
	if err != nil {
		return nil, err
	}
	cfg.LiveFeedTTL = time.Duration(ttlSec) * time.Second

	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return v, nil
}
