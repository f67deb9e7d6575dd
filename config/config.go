// Package config reads the explorer settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/LIAMBB/chess-movegen/components"
)

const bytesPerGB = 1024 * 1024 * 1024

type Config struct {
	DBPath         string
	MaxDepth       int
	MaxDBSizeBytes int64
	Workers        int
	LogLevel       logrus.Level
	Interactive    bool
	StartPlacement string
}

// Load reads the given env files (".env" when none are named). Missing files
// are skipped; variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}

	cfg := &Config{
		DBPath:         getEnv("CHESS_DB_PATH", "./chess.db"),
		StartPlacement: getEnv("CHESS_START", components.StartPlacement),
	}

	var err error
	if cfg.MaxDepth, err = intEnv("CHESS_MAX_DEPTH", 3); err != nil {
		return nil, err
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("config: CHESS_MAX_DEPTH must not be negative, got %d", cfg.MaxDepth)
	}
	if cfg.Workers, err = intEnv("CHESS_WORKERS", runtime.NumCPU()); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("config: CHESS_WORKERS must be at least 1, got %d", cfg.Workers)
	}

	maxSizeGB, err := floatEnv("CHESS_MAX_DB_GB", 10)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(maxSizeGB) || math.IsInf(maxSizeGB, 0) || maxSizeGB <= 0 || maxSizeGB > math.MaxInt64/bytesPerGB {
		return nil, fmt.Errorf("config: CHESS_MAX_DB_GB must be a positive size below %d, got %v", int64(math.MaxInt64/bytesPerGB), maxSizeGB)
	}
	cfg.MaxDBSizeBytes = int64(maxSizeGB * bytesPerGB)

	if cfg.LogLevel, err = logrus.ParseLevel(getEnv("CHESS_LOG_LEVEL", "info")); err != nil {
		return nil, fmt.Errorf("config: CHESS_LOG_LEVEL: %w", err)
	}
	if cfg.Interactive, err = boolEnv("CHESS_INTERACTIVE", false); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
