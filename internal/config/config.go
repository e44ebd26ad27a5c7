// Package config loads zsample settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zarlcorp/zsample/internal/sheet"
)

// environment keys
const (
	EnvCount    = "ZSAMPLE_COUNT"
	EnvOutput   = "ZSAMPLE_OUTPUT"
	EnvSeed     = "ZSAMPLE_SEED"
	EnvLogLevel = "ZSAMPLE_LOG_LEVEL"
)

// DefaultCount is the batch size when none is configured.
const DefaultCount = 100

// Config holds run settings. Flags override these values.
type Config struct {
	Count    int
	Output   string
	Seed     uint64
	HasSeed  bool
	LogLevel slog.Level
}

// Default returns the settings used with no environment at all.
func Default() Config {
	return Config{
		Count:    DefaultCount,
		Output:   sheet.DefaultFile,
		LogLevel: slog.LevelInfo,
	}
}

// Load reads .env files (missing files are fine) and then the process
// environment. Existing environment variables win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, p := range envFiles {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", p, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if v, ok := lookup(EnvCount); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvCount, err)
		}
		c.Count = n
	}

	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
		c.HasSeed = true
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings no run can use.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count %d: must not be negative", c.Count)
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	return nil
}
