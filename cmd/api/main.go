// ABOUTME: Main entry point for the Recipe Finder API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-finder-api/api"
	"recipe-finder-api/api/handlers"
	"recipe-finder-api/api/middleware"
	"recipe-finder-api/core/flows"
	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/core/recipes"
	"recipe-finder-api/core/session"
	"recipe-finder-api/core/workers"
	"recipe-finder-api/infrastructure/cache/memory"
	"recipe-finder-api/infrastructure/cache/redis"
	"recipe-finder-api/infrastructure/cache/sqlite"
	stdhttp "recipe-finder-api/infrastructure/http/standard"
	"recipe-finder-api/infrastructure/logger/structured"
	"recipe-finder-api/infrastructure/metrics"
	sessionmemory "recipe-finder-api/infrastructure/session/memory"
	"recipe-finder-api/infrastructure/spoonacular"
	"recipe-finder-api/pkg/config"
	"recipe-finder-api/pkg/featureflags"
)

const (
	userAgent              = "recipe-finder-api/" + api.Version
	sessionCleanupInterval = time.Minute
	rateLimiterIdleTTL     = 10 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Starting Recipe Finder API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	ctx := context.Background()
	recorder := metrics.NewRecorder()
	metricsOn := flags.IsEnabled(ctx, featureflags.MetricsEnabled)

	cache, closeCache := newCache(cfg, logger)
	defer closeCache()

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Recipes.RequestTimeout(),
		stdhttp.WithRateLimit(cfg.Recipes.RatePerSecond, cfg.Recipes.Burst),
		stdhttp.WithUserAgent(userAgent),
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		}),
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}
	if metricsOn {
		deps.Metrics = recorder
	}

	upstream := spoonacular.NewClient(cfg.Recipes.BaseURL, deps)
	recipeService := recipes.NewService(upstream, deps,
		recipes.WithTTLs(cfg.Recipes.ResultTTL(), cfg.Recipes.DetailsTTL()),
		recipes.WithFlags(flags),
	)

	repo := sessionmemory.NewRepository(cfg.Session.IdleTimeout(), sessionCleanupInterval,
		sessionmemory.WithExpiryHook(func(id string) {
			if deps.Metrics != nil {
				deps.Metrics.SessionEvent("expired")
			}
			logger.Debug("Session expired", map[string]interface{}{"session_id": id})
		}),
	)
	sessions := session.NewService(repo, cfg.Recipes.DefaultAPIKey, deps)

	flowOpts := []flows.Option{flows.WithNutrition(cfg.Recipes.IncludeNutrition)}

	var worker *workers.PrefetchWorker
	if flags.IsEnabled(ctx, featureflags.PrefetchEnabled) {
		worker = workers.NewPrefetchWorker(recipeService, deps, workers.WorkerConfig{
			MaxWorkers: cfg.Prefetch.Workers,
			QueueSize:  cfg.Prefetch.QueueSize,
		})
		if err := worker.Start(); err != nil {
			logger.Error("Failed to start prefetch worker", map[string]interface{}{
				"error": err.Error(),
			})
			worker = nil
		} else {
			flowOpts = append(flowOpts, flows.WithPrefetcher(worker, cfg.Prefetch.Limit))
		}
	}

	orchestrator := flows.NewOrchestrator(recipeService, logger, flowOpts...)

	apiConfig := api.APIConfig{Logger: logger}
	if metricsOn {
		apiConfig.Metrics = recorder
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) && cfg.RateLimit.RequestsPerMinute > 0 {
		apiConfig.RateLimiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, rateLimiterIdleTTL)
		defer apiConfig.RateLimiter.Stop()
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewSessionHandler(sessions).RegisterRoutes(humaAPI)
	handlers.NewSearchHandler(sessions, orchestrator, flags).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(sessions).RegisterRoutes(humaAPI)

	errWriter := logger.ErrorWriter()
	defer errWriter.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Recipes.RequestTimeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     log.New(errWriter, "", 0),
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if worker != nil {
		if err := worker.Stop(); err != nil {
			logger.Warn("Prefetch worker stop failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory when
// the backend cannot be reached. The returned func releases it.
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	cleanup := time.Duration(cfg.Cache.Memory.CleanupInterval) * time.Second
	closer := func(c io.Closer) func() {
		return func() {
			if err := c.Close(); err != nil {
				logger.Warn("Failed to close cache", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, closer(redisCache)
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, closer(sqliteCache)
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cleanup), func() {}
}

func init() {
	fmt.Println(`
    ____            _               _______           __
   / __ \___  _____(_)___  ___     / ____(_)___  ____/ /__  _____
  / /_/ / _ \/ ___/ / __ \/ _ \   / /_  / / __ \/ __  / _ \/ ___/
 / _, _/  __/ /__/ / /_/ /  __/  / __/ / / / / / /_/ /  __/ /
/_/ |_|\___/\___/_/ .___/\___/  /_/   /_/_/ /_/\__,_/\___/_/
                 /_/
	`)
}
