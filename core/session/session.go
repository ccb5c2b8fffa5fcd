// ABOUTME: Session service manages per-client recipe finder state
// ABOUTME: Each session owns one state store and is addressed by a random UUID

package session

import (
	"context"
	"time"

	"recipe-finder-api/core/errors"
	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/core/state"

	"github.com/google/uuid"
)

// Session is one client's view of the recipe finder
type Session struct {
	ID        string
	CreatedAt time.Time
	Store     *state.Store
}

// Repository stores sessions. Implementations decide how sessions expire.
type Repository interface {
	// Save stores or replaces a session
	Save(ctx context.Context, s *Session) error

	// Load returns the session and refreshes its lifetime
	Load(ctx context.Context, id string) (*Session, bool)

	// Remove deletes a session; removing an unknown id is not an error
	Remove(ctx context.Context, id string) error

	// Count returns the number of live sessions
	Count() int
}

// Service creates and looks up sessions
type Service struct {
	repo          Repository
	deps          interfaces.Dependencies
	defaultAPIKey string
	now           func() time.Time
}

// NewService creates a new session service. New sessions start with
// defaultAPIKey when it is not empty.
func NewService(repo Repository, defaultAPIKey string, deps interfaces.Dependencies) *Service {
	return &Service{
		repo:          repo,
		deps:          deps,
		defaultAPIKey: defaultAPIKey,
		now:           time.Now,
	}
}

// Create starts a new session
func (s *Service) Create(ctx context.Context) (*Session, error) {
	store := state.NewStore()
	if s.defaultAPIKey != "" {
		store.Dispatch(state.SetAPIKey{Key: s.defaultAPIKey})
	}

	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Store:     store,
	}

	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, errors.WrapError(err, "failed to save session")
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.SessionEvent("created")
	}
	if s.deps.Logger != nil {
		s.deps.Logger.Info("Session created", map[string]interface{}{
			"session_id":      sess.ID,
			"default_api_key": s.defaultAPIKey != "",
		})
	}

	return sess, nil
}

// Get returns a live session. Unknown, expired and malformed ids are all NotFoundError.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}

	sess, ok := s.repo.Load(ctx, id)
	if !ok {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}
	return sess, nil
}

// Delete ends a session
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return errors.WrapError(err, "failed to remove session")
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.SessionEvent("deleted")
	}
	if s.deps.Logger != nil {
		s.deps.Logger.Info("Session deleted", map[string]interface{}{
			"session_id": id,
		})
	}
	return nil
}

// Count returns the number of live sessions
func (s *Service) Count() int {
	return s.repo.Count()
}
