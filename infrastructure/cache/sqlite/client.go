// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Keeps recipe lookups across restarts in a single file with periodic expiry cleanup

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"recipe-finder-api/core/interfaces"

	_ "github.com/mattn/go-sqlite3"
)

const (
	tableName = "recipe_cache"

	// DefaultCleanupInterval is how often expired rows are deleted
	DefaultCleanupInterval = 5 * time.Minute
)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	queries  *cacheQueries
	logger   interfaces.Logger

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewSQLiteCache creates a new SQLite cache client. logger may be nil.
func NewSQLiteCache(filePath string, logger interfaces.Logger) (*Client, error) {
	return newClient(filePath, logger, DefaultCleanupInterval)
}

func newClient(filePath string, logger interfaces.Logger, cleanupInterval time.Duration) (*Client, error) {
	if filePath == "" {
		filePath = "recipes-cache.db"
	}

	queries, err := buildCacheQueries(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to build queries: %w", err)
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if filePath == ":memory:" {
		// Every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	c := &Client{
		db:       db,
		filePath: filePath,
		queries:  queries,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go c.cleanupRoutine(cleanupInterval)

	return c, nil
}

func (c *Client) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS ` + tableName + ` (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_` + tableName + `_expiry ON ` + tableName + `(expiry);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key, nil); err != nil {
		return nil, err
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, c.queries.get, key, time.Now().UnixNano()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL. A zero TTL never expires.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}
	if err := ValidateValue(value); err != nil {
		return err
	}

	expiry := int64(math.MaxInt64)
	if ttl > 0 {
		expiry = time.Now().Add(ttl).UnixNano()
	}

	if _, err := c.db.ExecContext(ctx, c.queries.set, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key, nil); err != nil {
		return err
	}

	if _, err := c.db.ExecContext(ctx, c.queries.delete, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

func (c *Client) cleanupRoutine(interval time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

func (c *Client) cleanup() {
	res, err := c.db.Exec(c.queries.cleanup, time.Now().UnixNano())
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("SQLite cache cleanup failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return
	}
	if n, _ := res.RowsAffected(); n > 0 && c.logger != nil {
		c.logger.Debug("SQLite cache cleanup", map[string]interface{}{
			"removed": n,
		})
	}
}

// Close stops the cleanup routine and closes the database connection
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.stop)
		<-c.done
		err = c.db.Close()
	})
	return err
}

// Stats returns cache statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM " + tableName).Scan(&count); err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	var expired int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM "+tableName+" WHERE expiry <= ?", time.Now().UnixNano()).Scan(&expired); err != nil {
		return nil, err
	}
	stats["expired_entries"] = expired

	var pageCount, pageSize int
	if err := c.db.QueryRow("PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := c.db.QueryRow("PRAGMA page_size").Scan(&pageSize); err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
