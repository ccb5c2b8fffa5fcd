// ABOUTME: Configuration options for the recipe finder library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package finder

import (
	"recipe-finder-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithBaseURL points the client at another recipe service endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		c.BaseURL = baseURL
		return nil
	}
}

// WithNutrition requests nutrition data with recipe details
func WithNutrition(include bool) Option {
	return func(c *Config) error {
		c.IncludeNutrition = include
		return nil
	}
}

// WithDefaultAPIKey sets the key every new session starts with
func WithDefaultAPIKey(key string) Option {
	return func(c *Config) error {
		c.DefaultAPIKey = key
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:            DefaultMemoryCache(),
		HTTPClient:       DefaultHTTPClient(),
		Logger:           DefaultLogger(),
		IncludeNutrition: true,
	}
}
