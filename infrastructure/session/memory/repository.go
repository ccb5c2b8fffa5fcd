// ABOUTME: In-memory session repository backed by patrickmn/go-cache
// ABOUTME: Sessions expire after an idle period that is refreshed on every load

package memory

import (
	"context"
	"sync"
	"time"

	"recipe-finder-api/core/session"

	gocache "github.com/patrickmn/go-cache"
)

// Repository implements session.Repository in process memory
type Repository struct {
	// mu keeps Load's read-and-refresh from resurrecting a removed session
	mu      sync.Mutex
	items   *gocache.Cache
	ttl     time.Duration
	removed sync.Map
}

// Option configures a Repository
type Option func(*Repository)

// WithExpiryHook calls fn with the id of every session that expires
// without being removed explicitly
func WithExpiryHook(fn func(id string)) Option {
	return func(r *Repository) {
		r.items.OnEvicted(func(id string, _ interface{}) {
			if _, explicit := r.removed.LoadAndDelete(id); explicit {
				return
			}
			fn(id)
		})
	}
}

// NewRepository creates a repository whose sessions idle out after ttl.
// Expired sessions are purged every cleanupInterval.
func NewRepository(ttl, cleanupInterval time.Duration, opts ...Option) *Repository {
	r := &Repository{
		items: gocache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ session.Repository = (*Repository)(nil)

// Save stores a session with a fresh lifetime
func (r *Repository) Save(ctx context.Context, s *session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.items.Set(s.ID, s, gocache.DefaultExpiration)
	return nil
}

// Load returns a live session and restarts its idle timer
func (r *Repository) Load(ctx context.Context, id string) (*session.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.items.Get(id)
	if !ok {
		return nil, false
	}
	s := v.(*session.Session)
	r.items.Set(id, s, gocache.DefaultExpiration)
	return s, true
}

// Remove deletes a session
func (r *Repository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items.Get(id); !ok {
		return nil
	}
	r.removed.Store(id, struct{}{})
	r.items.Delete(id)
	return nil
}

// Count returns the number of stored sessions, including expired ones not yet purged
func (r *Repository) Count() int {
	return r.items.ItemCount()
}

// Flush drops every session
func (r *Repository) Flush() {
	r.items.Flush()
}
