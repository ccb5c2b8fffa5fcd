// ABOUTME: Dependencies container handed to every core service and adapter
// ABOUTME: Bundles cache, outbound HTTP, logging and metrics for injection

package interfaces

// Dependencies holds the external collaborators of the recipe services
type Dependencies struct {
	// Cache stores remote results; keys never contain credentials
	Cache Cache

	// HTTPClient performs calls to the recipe service
	HTTPClient HTTPClient

	Logger Logger

	// Metrics records cache, upstream, session and prefetch measurements. May be nil.
	Metrics Metrics
}
