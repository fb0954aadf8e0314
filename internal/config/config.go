// Package config resolves run settings: defaults, then an optional YAML
// file, then environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv        = "CONFIG_PATH"
	reviewsFileEnv       = "REVIEWS_FILE"
	outputFileEnv        = "OUTPUT_FILE"
	maxBooksEnv          = "MAX_BOOKS"
	maxReviewsPerBookEnv = "MAX_REVIEWS_PER_BOOK"
	progressEveryEnv     = "PROGRESS_EVERY"
	httpRetrySecEnv      = "HTTP_RETRY_SEC"
)

// Config holds everything one analysis run needs. MaxBooks and
// MaxReviewsPerBook are sampling limits; zero means unlimited.
type Config struct {
	ReviewsFile       string `yaml:"reviews_file"`
	OutputFile        string `yaml:"output_file"`
	MaxBooks          int    `yaml:"max_books"`
	MaxReviewsPerBook int    `yaml:"max_reviews_per_book"`
	ProgressEvery     int    `yaml:"progress_every"`
	HTTPRetrySec      int    `yaml:"http_retry_sec"`
}

func defaultConfig() Config {
	return Config{
		ReviewsFile:   "datos_goodreads/goodreads_reviews_dedup.json",
		OutputFile:    "features_reviews.csv",
		ProgressEvery: 100000,
		HTTPRetrySec:  30,
	}
}

// Load resolves the run configuration. A CONFIG_PATH that cannot be read or
// parsed fails the run; a silently wrong config is worse than no run.
func Load() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = defaultConfig().ProgressEvery
	}
	if cfg.HTTPRetrySec <= 0 {
		cfg.HTTPRetrySec = defaultConfig().HTTPRetrySec
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(reviewsFileEnv); v != "" {
		c.ReviewsFile = v
	}
	if v := os.Getenv(outputFileEnv); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv(maxBooksEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxBooks = n
		}
	}
	if v := os.Getenv(maxReviewsPerBookEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxReviewsPerBook = n
		}
	}
	if v := os.Getenv(progressEveryEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ProgressEvery = n
		}
	}
	if v := os.Getenv(httpRetrySecEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HTTPRetrySec = n
		}
	}
}
