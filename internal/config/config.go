// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Server    ServerConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	Palette   PaletteConfig
	Sake      SakeConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Name           string
	Port           string        // Server port (default: 8080)
	ReadTimeout    time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout   time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout    time.Duration // HTTP idle timeout (default: 60s)
	AllowedOrigins []string      // CORS origins (default: *)
	AdvertiseMDNS  bool          // Advertise via mDNS/Zeroconf (default: true)
}

// RateLimitConfig holds per-client request limits for the API.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64 // Sustained requests per second per client (default: 20)
	Burst   int     // Bucket size (default: 40)
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// PaletteConfig holds palette generation defaults.
type PaletteConfig struct {
	// DefaultAngle is used for analogous colours when a request gives none.
	DefaultAngle int
}

// SakeConfig controls where the sake catalog comes from.
type SakeConfig struct {
	// CatalogPath overrides the embedded catalog with a YAML file.
	CatalogPath string
	// WatchCatalog reloads CatalogPath when it changes on disk.
	WatchCatalog bool
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("palette-server", flag.ContinueOnError)

	env := fs.String("env", "", "Environment (development, staging, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	serverName := fs.String("server-name", "", "Name for the server")

	// Server flags
	serverPort := fs.String("port", "", "Server port (default: 8080)")
	readTimeout := fs.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := fs.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := fs.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	allowedOrigins := fs.String("cors-origins", "", "Comma-separated CORS origins (default: *)")
	advertiseMDNS := fs.String("advertise-mdns", "", "Advertise via mDNS/Zeroconf (default: true)")

	// Rate limit flags
	rateLimitEnabled := fs.String("rate-limit", "", "Enable per-client rate limiting (default: true)")
	rateLimitRPS := fs.String("rate-limit-rps", "", "Requests per second per client (default: 20)")
	rateLimitBurst := fs.String("rate-limit-burst", "", "Burst size per client (default: 40)")

	metricsEnabled := fs.String("metrics", "", "Expose Prometheus metrics (default: true)")
	defaultAngle := fs.String("default-angle", "", "Default analogous angle in degrees (default: 30)")

	// Sake catalog flags
	catalogPath := fs.String("sake-catalog", "", "Path to a sake catalog YAML file (default: embedded)")
	watchCatalog := fs.String("watch-sake-catalog", "", "Reload the sake catalog file on change (default: false)")

	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// Load .env file if it exists (silently ignore if not found).
	// godotenv.Load never overrides variables that are already set.
	_ = godotenv.Load(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Name:           getConfigValue(*serverName, "SERVER_NAME", "Palette Server"),
			Port:           getConfigValue(*serverPort, "SERVER_PORT", "8080"),
			AllowedOrigins: splitList(getConfigValue(*allowedOrigins, "CORS_ALLOWED_ORIGINS", "*")),
			AdvertiseMDNS:  getBoolConfigValue(*advertiseMDNS, "ADVERTISE_MDNS", true),
		},
		RateLimit: RateLimitConfig{
			Enabled: getBoolConfigValue(*rateLimitEnabled, "RATE_LIMIT_ENABLED", true),
			Burst:   getIntConfigValue(*rateLimitBurst, "RATE_LIMIT_BURST", 40),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolConfigValue(*metricsEnabled, "METRICS_ENABLED", true),
			Path:    "/metrics",
		},
		Palette: PaletteConfig{
			DefaultAngle: getIntConfigValue(*defaultAngle, "PALETTE_DEFAULT_ANGLE", 30),
		},
		Sake: SakeConfig{
			CatalogPath:  getConfigValue(*catalogPath, "SAKE_CATALOG_PATH", ""),
			WatchCatalog: getBoolConfigValue(*watchCatalog, "SAKE_WATCH_CATALOG", false),
		},
	}

	rpsStr := getConfigValue(*rateLimitRPS, "RATE_LIMIT_RPS", "20")
	rps, err := strconv.ParseFloat(rpsStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit rps %q: %w", rpsStr, err)
	}
	cfg.RateLimit.RPS = rps

	// Parse server timeouts.
	if cfg.Server.ReadTimeout, err = parseDuration(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = parseDuration(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = parseDuration(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	if err := cfg.expandCatalogPath(); err != nil {
		return nil, fmt.Errorf("invalid sake catalog path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("invalid rate limit rps: %v (must be positive)", c.RateLimit.RPS)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("invalid rate limit burst: %d (must be at least 1)", c.RateLimit.Burst)
		}
	}

	if c.Sake.WatchCatalog && c.Sake.CatalogPath == "" {
		return errors.New("SAKE_WATCH_CATALOG requires SAKE_CATALOG_PATH")
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// expandCatalogPath expands ~ and makes the catalog path absolute.
// An empty path selects the embedded catalog.
func (c *Config) expandCatalogPath() error {
	if c.Sake.CatalogPath == "" {
		return nil
	}

	path := c.Sake.CatalogPath
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	c.Sake.CatalogPath = filepath.Clean(path)
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strValue)
	if err != nil {
		return defaultValue
	}
	return result
}

func parseDuration(flagValue, envKey, defaultValue string) (time.Duration, error) {
	s := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return d, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
