// ABOUTME: Prefetch worker warms the recipe details cache after searches
// ABOUTME: Provides a bounded worker pool that drops work instead of blocking callers

package workers

import (
	"context"
	"sync"
	"time"

	"recipe-finder-api/core/interfaces"

	"golang.org/x/sync/errgroup"
)

// PrefetchJob asks for one recipe's details with the caller's credential
type PrefetchJob struct {
	APIKey           string
	RecipeID         int
	IncludeNutrition bool
}

// WorkerConfig holds configuration for the prefetch worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
	JobTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 2,
		QueueSize:  64,
		JobTimeout: 15 * time.Second,
	}
}

// PrefetchWorker manages background details lookups
type PrefetchWorker struct {
	api    interfaces.RecipeAPI
	deps   interfaces.Dependencies
	config WorkerConfig

	mu       sync.RWMutex
	running  bool
	jobQueue chan PrefetchJob
	group    *errgroup.Group
	ctx      context.Context
	cancel   context.CancelFunc
}

var _ interfaces.RecipePrefetcher = (*PrefetchWorker)(nil)

// NewPrefetchWorker creates a new prefetch worker. api should be the cached
// recipe service so that each job leaves its result in the cache.
func NewPrefetchWorker(api interfaces.RecipeAPI, deps interfaces.Dependencies, config WorkerConfig) *PrefetchWorker {
	defaults := DefaultWorkerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = defaults.JobTimeout
	}

	return &PrefetchWorker{
		api:    api,
		deps:   deps,
		config: config,
	}
}

// Start starts the worker pool
func (pw *PrefetchWorker) Start() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.running {
		return nil
	}

	pw.ctx, pw.cancel = context.WithCancel(context.Background())
	pw.jobQueue = make(chan PrefetchJob, pw.config.QueueSize)
	pw.group = &errgroup.Group{}

	ctx, queue := pw.ctx, pw.jobQueue
	for i := 0; i < pw.config.MaxWorkers; i++ {
		pw.group.Go(func() error {
			pw.run(ctx, queue)
			return nil
		})
	}

	pw.running = true
	pw.logInfo("Prefetch worker started", map[string]interface{}{
		"workers":    pw.config.MaxWorkers,
		"queue_size": pw.config.QueueSize,
	})
	return nil
}

// Stop closes the queue and waits for queued jobs to finish
func (pw *PrefetchWorker) Stop() error {
	pw.mu.Lock()
	if !pw.running {
		pw.mu.Unlock()
		return nil
	}
	pw.running = false
	close(pw.jobQueue)
	group, cancel := pw.group, pw.cancel
	pw.mu.Unlock()

	err := group.Wait()
	cancel()

	pw.logInfo("Prefetch worker stopped", nil)
	return err
}

// Submit queues a job without blocking
func (pw *PrefetchWorker) Submit(job PrefetchJob) error {
	pw.mu.RLock()
	defer pw.mu.RUnlock()

	if !pw.running {
		return ErrWorkerNotRunning
	}

	select {
	case pw.jobQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Prefetch queues details lookups for the given recipes. Jobs that do not fit
// are dropped.
func (pw *PrefetchWorker) Prefetch(apiKey string, recipeIDs []int, includeNutrition bool) {
	dropped := 0
	for _, id := range recipeIDs {
		err := pw.Submit(PrefetchJob{APIKey: apiKey, RecipeID: id, IncludeNutrition: includeNutrition})
		if err != nil {
			dropped++
			pw.record("dropped")
		}
	}

	if dropped > 0 && pw.deps.Logger != nil {
		pw.deps.Logger.Warn("Prefetch jobs dropped", map[string]interface{}{
			"requested": len(recipeIDs),
			"dropped":   dropped,
		})
	}
}

// QueueLength returns the number of jobs waiting
func (pw *PrefetchWorker) QueueLength() int {
	pw.mu.RLock()
	defer pw.mu.RUnlock()

	if pw.jobQueue == nil {
		return 0
	}
	return len(pw.jobQueue)
}

func (pw *PrefetchWorker) run(ctx context.Context, queue <-chan PrefetchJob) {
	for job := range queue {
		pw.process(ctx, job)
	}
}

func (pw *PrefetchWorker) process(ctx context.Context, job PrefetchJob) {
	ctx, cancel := context.WithTimeout(ctx, pw.config.JobTimeout)
	defer cancel()

	_, err := pw.api.RecipeDetails(ctx, job.APIKey, job.RecipeID, job.IncludeNutrition)
	if err != nil {
		pw.record("error")
		if pw.deps.Logger != nil {
			pw.deps.Logger.Debug("Prefetch failed", map[string]interface{}{
				"recipe_id": job.RecipeID,
				"error":     err.Error(),
			})
		}
		return
	}
	pw.record("ok")
}

func (pw *PrefetchWorker) record(outcome string) {
	if pw.deps.Metrics != nil {
		pw.deps.Metrics.PrefetchJob(outcome)
	}
}

func (pw *PrefetchWorker) logInfo(msg string, fields map[string]interface{}) {
	if pw.deps.Logger != nil {
		pw.deps.Logger.Info(msg, fields)
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
