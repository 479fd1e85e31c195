package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Network NetworkConfig
	HTTP    HTTPConfig
	Routing RoutingConfig
	Logging LoggingConfig
}

// NetworkConfig points at the tram network document.
type NetworkConfig struct {
	File string
}

type HTTPConfig struct {
	Addr         string
	QueryTimeout time.Duration
}

// RoutingConfig holds the change penalties and the route cache size.
type RoutingConfig struct {
	ChangeTime     float64 // minutes per line change
	ChangeDistance float64 // kilometres per line change
	CacheSize      int     // 0 disables the route cache
}

type LoggingConfig struct {
	Level    string
	FilePath string // empty logs to the console only
}

// LoadEnvFile merges KEY=value pairs from path into the process
// environment. Variables already set win. A missing file is not an error
// when path is empty (the default ".env" is tried).
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	p := &parser{}
	cfg := &Config{
		Network: NetworkConfig{
			File: getEnv("TRANSIT_NETWORK_FILE", ""),
		},
		HTTP: HTTPConfig{
			Addr:         getEnv("TRANSIT_HTTP_ADDR", ":8080"),
			QueryTimeout: p.durationEnv("TRANSIT_QUERY_TIMEOUT", 5*time.Second),
		},
		Routing: RoutingConfig{
			ChangeTime:     p.floatEnv("TRANSIT_CHANGE_TIME", 10),
			ChangeDistance: p.floatEnv("TRANSIT_CHANGE_DISTANCE", 0.02),
			CacheSize:      p.intEnv("TRANSIT_ROUTE_CACHE_SIZE", 256),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE", ""),
		},
	}
	if len(p.errs) > 0 {
		return nil, errors.Join(p.errs...)
	}

	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Network.File == "" {
		errs = append(errs, errors.New("TRANSIT_NETWORK_FILE is required"))
	}
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("TRANSIT_HTTP_ADDR must not be empty"))
	}
	if c.HTTP.QueryTimeout <= 0 {
		errs = append(errs, fmt.Errorf("TRANSIT_QUERY_TIMEOUT must be positive, got %s", c.HTTP.QueryTimeout))
	}
	if c.Routing.ChangeTime < 0 {
		errs = append(errs, fmt.Errorf("TRANSIT_CHANGE_TIME must be non-negative, got %v", c.Routing.ChangeTime))
	}
	if c.Routing.ChangeDistance < 0 {
		errs = append(errs, fmt.Errorf("TRANSIT_CHANGE_DISTANCE must be non-negative, got %v", c.Routing.ChangeDistance))
	}
	if c.Routing.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("TRANSIT_ROUTE_CACHE_SIZE must be non-negative, got %d", c.Routing.CacheSize))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parser collects malformed values instead of silently using defaults.
type parser struct {
	errs []error
}

func (p *parser) durationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return d
}

func (p *parser) floatEnv(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return f
}

func (p *parser) intEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return n
}
