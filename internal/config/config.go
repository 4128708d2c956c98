// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Remote store backends selectable with REMOTE_STORE.
const (
	RemoteNone     = ""
	RemotePostgres = "postgres"
	RemoteS3       = "s3"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel slog.Level

	// RemoteStore selects the content store backend. Empty runs local-only.
	RemoteStore    string
	PersistTimeout time.Duration

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// S3-compatible object storage
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Prefix    string

	// Valkey (Redis-compatible cache). Empty host disables caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Admin API
	AdminUser         string
	AdminPasswordHash string
	AdminTOTPSecret   string
	AdminRateLimit    float64 // requests per second per client
	AdminRateBurst    int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing or malformed.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		RemoteStore: os.Getenv("REMOTE_STORE"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "marketsite"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "marketsite"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Prefix:    envOrDefault("S3_PREFIX", "content"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AdminUser:         envOrDefault("ADMIN_USER", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminTOTPSecret:   os.Getenv("ADMIN_TOTP_SECRET"),
	}

	level := envOrDefault("LOG_LEVEL", "info")
	if cfg.IsDev() {
		level = envOrDefault("LOG_LEVEL", "debug")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.PersistTimeout, err = time.ParseDuration(envOrDefault("PERSIST_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("PERSIST_TIMEOUT: %w", err)
	}
	if cfg.AdminRateLimit, err = strconv.ParseFloat(envOrDefault("ADMIN_RATE_LIMIT", "5"), 64); err != nil {
		return nil, fmt.Errorf("ADMIN_RATE_LIMIT: %w", err)
	}
	if cfg.AdminRateBurst, err = strconv.Atoi(envOrDefault("ADMIN_RATE_BURST", "10")); err != nil {
		return nil, fmt.Errorf("ADMIN_RATE_BURST: %w", err)
	}

	switch cfg.RemoteStore {
	case RemoteNone, RemotePostgres:
	case RemoteS3:
		required := map[string]string{
			"S3_ENDPOINT":   cfg.S3Endpoint,
			"S3_ACCESS_KEY": cfg.S3AccessKey,
			"S3_SECRET_KEY": cfg.S3SecretKey,
			"S3_BUCKET":     cfg.S3Bucket,
		}
		for _, key := range []string{"S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET"} {
			if required[key] == "" {
				return nil, fmt.Errorf("%s must be set when REMOTE_STORE=s3", key)
			}
		}
	default:
		return nil, fmt.Errorf("REMOTE_STORE: unknown backend %q (want postgres, s3 or empty)", cfg.RemoteStore)
	}

	if cfg.Env == "production" {
		if cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
		if cfg.RemoteStore == RemotePostgres && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
