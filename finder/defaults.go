// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package finder

import (
	"io"
	"time"

	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/infrastructure/cache/memory"
	"recipe-finder-api/infrastructure/cache/sqlite"
	httpInfra "recipe-finder-api/infrastructure/http/standard"
	"recipe-finder-api/infrastructure/logger/structured"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultUserAgent   = "recipe-finder-lib/1.0"
	defaultSQLitePath  = "recipe_finder_cache.db"
	memoryCacheCleanup = 10 * time.Minute
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(defaultTimeout, httpInfra.WithUserAgent(defaultUserAgent))
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache(memoryCacheCleanup)
}

// DefaultSQLiteCache creates a default SQLite cache with the given file path
func DefaultSQLiteCache(filePath string, logger interfaces.Logger) (interfaces.Cache, error) {
	cache, err := sqlite.NewSQLiteCache(filePath, logger)
	if err != nil {
		return nil, err
	}
	return cache, nil
}

// DefaultLogger creates a default logger that writes text to stderr
func DefaultLogger() interfaces.Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	base.SetLevel(logrus.WarnLevel)
	return structured.NewFromLogrus(base)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return structured.NewFromLogrus(base)
}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string // For SQLite cache
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
)

// WithCacheOption creates a cache based on the provided options. Apply it
// after WithLogger so the SQLite cache logs through the chosen logger.
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = defaultSQLitePath
			}
			cache, err := DefaultSQLiteCache(opt.FilePath, c.Logger)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").WithCause(err)
			}
			c.Cache = cache
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type: "+string(opt.Type))
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
