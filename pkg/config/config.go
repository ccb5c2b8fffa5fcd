// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for the server, caches, recipe service, sessions, logging and workers

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Recipes contains remote recipe service configuration
	Recipes RecipesConfig

	// Session contains session lifetime configuration
	Session SessionConfig

	// Log contains logging configuration
	Log LogConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig

	// Prefetch contains details prefetch worker configuration
	Prefetch PrefetchConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ShutdownTimeout is the graceful shutdown window in seconds
	ShutdownTimeout int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key this service writes
	KeyPrefix string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// RecipesConfig holds remote recipe service configuration
type RecipesConfig struct {
	// BaseURL is the Spoonacular endpoint
	BaseURL string

	// DefaultAPIKey is seeded into new sessions when set
	DefaultAPIKey string

	// Timeout is the per-request timeout in seconds
	Timeout int

	// RatePerSecond paces outgoing calls; 0 disables pacing
	RatePerSecond float64

	// Burst is the number of calls allowed at once
	Burst int

	// ResultCacheTTL is how long searches and suggestions are cached, in seconds
	ResultCacheTTL int

	// DetailsCacheTTL is how long recipe details are cached, in seconds
	DetailsCacheTTL int

	// IncludeNutrition asks for nutrition data with recipe details
	IncludeNutrition bool
}

// SessionConfig holds session lifetime configuration
type SessionConfig struct {
	// TTL is the idle lifetime of a session in seconds
	TTL int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// File enables rotating file output when set
	File string

	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept
	MaxBackups int

	// MaxAgeDays is how long rotated files are kept
	MaxAgeDays int

	// Compress gzips rotated files
	Compress bool
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained rate per client IP
	RequestsPerMinute int

	// Burst is the number of requests allowed at once
	Burst int
}

// PrefetchConfig holds details prefetch worker configuration
type PrefetchConfig struct {
	// Workers is the number of concurrent prefetch workers
	Workers int

	// QueueSize is the job buffer size
	QueueSize int

	// Limit is how many top results are prefetched per search
	Limit int
}

// LoadFromEnv loads configuration from environment variables.
// A .env file (or the file named by ENV_FILE) is read first when present;
// it never overrides variables already set.
func LoadFromEnv() (*Config, error) {
	if err := loadDotEnv(getEnvOrDefault("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			ShutdownTimeout: getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT", 30),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "recipe-finder:"),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "recipes-cache.db"),
			},
		},
		Recipes: RecipesConfig{
			BaseURL:          getEnvOrDefault("SPOONACULAR_BASE_URL", "https://api.spoonacular.com"),
			DefaultAPIKey:    os.Getenv("SPOONACULAR_API_KEY"),
			Timeout:          getEnvAsIntOrDefault("SPOONACULAR_TIMEOUT", 10),
			RatePerSecond:    getEnvAsFloatOrDefault("UPSTREAM_RATE_PER_SEC", 5),
			Burst:            getEnvAsIntOrDefault("UPSTREAM_BURST", 5),
			ResultCacheTTL:   getEnvAsIntOrDefault("RESULT_CACHE_TTL", 3600),
			DetailsCacheTTL:  getEnvAsIntOrDefault("DETAILS_CACHE_TTL", 86400),
			IncludeNutrition: getEnvAsBoolOrDefault("INCLUDE_NUTRITION", true),
		},
		Session: SessionConfig{
			TTL: getEnvAsIntOrDefault("SESSION_TTL", 3600),
		},
		Log: LogConfig{
			Level:      strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format:     strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
			File:       getEnvOrDefault("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsIntOrDefault("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsIntOrDefault("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsIntOrDefault("LOG_MAX_AGE_DAYS", 28),
			Compress:   getEnvAsBoolOrDefault("LOG_COMPRESS", true),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsIntOrDefault("RATE_LIMIT_RPM", 120),
			Burst:             getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
		},
		Prefetch: PrefetchConfig{
			Workers:   getEnvAsIntOrDefault("PREFETCH_WORKERS", 2),
			QueueSize: getEnvAsIntOrDefault("PREFETCH_QUEUE", 64),
			Limit:     getEnvAsIntOrDefault("PREFETCH_LIMIT", 3),
		},
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Recipes.BaseURL == "" {
		return errors.New("recipe service base URL cannot be empty")
	}
	if c.Recipes.Timeout < 1 {
		return errors.New("recipe service timeout must be at least 1 second")
	}
	if c.Recipes.RatePerSecond < 0 {
		return errors.New("upstream rate cannot be negative")
	}
	if c.Recipes.RatePerSecond > 0 && c.Recipes.Burst < 1 {
		return errors.New("upstream burst must be at least 1 when pacing is enabled")
	}
	if c.Recipes.ResultCacheTTL < 0 || c.Recipes.DetailsCacheTTL < 0 {
		return errors.New("cache TTLs cannot be negative")
	}

	if c.Session.TTL < 60 {
		return errors.New("session TTL must be at least 60 seconds")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	if c.RateLimit.RequestsPerMinute < 1 {
		return errors.New("rate limit must allow at least 1 request per minute")
	}
	if c.RateLimit.Burst < 1 {
		return errors.New("rate limit burst must be at least 1")
	}

	if c.Prefetch.Workers < 1 {
		return errors.New("prefetch workers must be at least 1")
	}
	if c.Prefetch.QueueSize < 1 {
		return errors.New("prefetch queue size must be at least 1")
	}
	if c.Prefetch.Limit < 0 {
		return errors.New("prefetch limit cannot be negative")
	}

	return nil
}

// RequestTimeout returns the per-request timeout
func (r RecipesConfig) RequestTimeout() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}

// ResultTTL returns the search and suggestion cache lifetime
func (r RecipesConfig) ResultTTL() time.Duration {
	return time.Duration(r.ResultCacheTTL) * time.Second
}

// DetailsTTL returns the recipe details cache lifetime
func (r RecipesConfig) DetailsTTL() time.Duration {
	return time.Duration(r.DetailsCacheTTL) * time.Second
}

// IdleTimeout returns the session idle lifetime
func (s SessionConfig) IdleTimeout() time.Duration {
	return time.Duration(s.TTL) * time.Second
}
