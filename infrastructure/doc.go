// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-based cache for single-node deployments
// - http/standard: net/http client with an outbound rate limit
// - logger/structured: logrus logger with optional lumberjack rotation
// - metrics: Prometheus recorder
// - session/memory: In-memory session repository with idle expiry
// - spoonacular: Client for the remote recipe service
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "recipe-finder:",
//	})
//
// # HTTP Client
//
// Outbound calls share one token bucket so a burst of sessions cannot
// exhaust the remote quota:
//
//	client := standard.NewStandardHTTPClient(10*time.Second,
//	    standard.WithRateLimit(5, 5),
//	)
//	resp, err := client.Get(ctx, "https://api.spoonacular.com/...")
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger, err := structured.New(cfg.Log)
//	logger.Info("Search finished", map[string]interface{}{
//	    "session_id": id,
//	    "results":    12,
//	})
//
// Credentials never appear in log fields.
package infrastructure
