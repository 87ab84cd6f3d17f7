// SPDX-License-Identifier: MIT

// Package config loads gasnet tool settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the gasnet subcommands.
type Config struct {
	LogLevel        string
	LogFormat       string
	Format          string // default snapshot format: yaml, json or msgpack
	OutDir          string // default output directory for generated files
	Compress        bool   // zstd-compress snapshots written to OutDir
	CompressorEvery int    // compressor stride for generated networks
	Seed            int64  // RNG seed for generated networks
}

// Load reads files with godotenv (missing files are ignored; none given
// means ".env") and then builds a Config from GASNET_* variables.
// Variables already set in the environment win over file entries.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		LogLevel:        getEnvWithDefault("GASNET_LOG_LEVEL", "info"),
		LogFormat:       getEnvWithDefault("GASNET_LOG_FORMAT", "text"),
		Format:          strings.ToLower(getEnvWithDefault("GASNET_FORMAT", "yaml")),
		OutDir:          getEnvWithDefault("GASNET_OUT_DIR", "."),
		Compress:        getEnvAsBool("GASNET_COMPRESS", false),
		CompressorEvery: getEnvAsInt("GASNET_COMPRESSOR_EVERY", 0),
		Seed:            int64(getEnvAsInt("GASNET_SEED", 1)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch c.Format {
	case "yaml", "json", "msgpack":
	default:
		return fmt.Errorf("GASNET_FORMAT must be yaml, json or msgpack, got %q", c.Format)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("GASNET_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.CompressorEvery < 0 {
		return fmt.Errorf("GASNET_COMPRESSOR_EVERY must be non-negative, got %d", c.CompressorEvery)
	}

	return nil
}

// Extension returns the file extension for snapshots written with c.
func (c *Config) Extension() string {
	ext := "." + c.Format
	if c.Compress {
		ext += ".zst"
	}
	return ext
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr := os.Getenv(key); valueStr != "" {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr := os.Getenv(key); valueStr != "" {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
