// ABOUTME: Feature flag management for toggling optional recipe finder features
// ABOUTME: Provides interface-based feature toggling with environment and static backends

package featureflags

import (
	"context"
	"maps"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// SuggestionsEnabled enables ingredient autocomplete
	SuggestionsEnabled FeatureFlag = "suggestions_enabled"

	// ComplexSearchEnabled enables free text search with filters
	ComplexSearchEnabled FeatureFlag = "complex_search_enabled"

	// PrefetchEnabled warms the details cache after each search
	PrefetchEnabled FeatureFlag = "prefetch_enabled"

	// MetricsEnabled enables the metrics endpoint
	MetricsEnabled FeatureFlag = "metrics_enabled"

	// RateLimitEnabled enables rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// CacheEnabled enables caching of remote results
	CacheEnabled FeatureFlag = "cache_enabled"
)

// AllFlags lists every defined flag
func AllFlags() []FeatureFlag {
	return []FeatureFlag{
		SuggestionsEnabled,
		ComplexSearchEnabled,
		PrefetchEnabled,
		MetricsEnabled,
		RateLimitEnabled,
		CacheEnabled,
	}
}

// Defaults are the states used when nothing overrides a flag
var Defaults = map[FeatureFlag]bool{
	SuggestionsEnabled:   true,
	ComplexSearchEnabled: true,
	PrefetchEnabled:      true,
	MetricsEnabled:       true,
	RateLimitEnabled:     true,
	CacheEnabled:         true,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables.
// An unset or unrecognized value falls back to Defaults.
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, ok := m.overrides[flag]; ok {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	envKey := m.prefix + strings.ToUpper(string(flag))
	switch strings.ToLower(os.Getenv(envKey)) {
	case "true", "1", "enabled":
		return true
	case "false", "0", "disabled":
		return false
	default:
		return Defaults[flag]
	}
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool)
	for _, f := range AllFlags() {
		flags[f] = m.IsEnabled(ctx, f)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states.
// Flags missing from the map are disabled.
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	copied := maps.Clone(flags)
	if copied == nil {
		copied = make(map[FeatureFlag]bool)
	}
	return &StaticManager{flags: copied}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool, len(AllFlags()))
	for _, f := range AllFlags() {
		result[f] = m.flags[f]
	}
	return result
}
