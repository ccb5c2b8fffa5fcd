// Package core contains the business logic for the Recipe Finder API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Recipe, RecipeDetails, ingredient suggestions, filters and queries
// - state: The per-session AppState, its nine actions, the reducer and the Store
// - recipes: Cache-first wrapper around the remote recipe service
// - flows: Search, details, suggestion and filtered search orchestration
// - session: Session lifecycle on top of a pluggable repository
// - workers: Background prefetching of recipe details
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - State changes only through dispatched actions
//
// # Usage Example
//
//	import (
//	    "recipe-finder-api/core/flows"
//	    "recipe-finder-api/core/state"
//	    "recipe-finder-api/infrastructure/spoonacular"
//	)
//
//	client := spoonacular.NewClient("", deps)
//	orchestrator := flows.NewOrchestrator(client, deps.Logger)
//
//	store := state.NewStore()
//	store.Dispatch(
//	    state.SetAPIKey{Key: apiKey},
//	    state.AddIngredient{Value: "tomato"},
//	)
//
//	if err := orchestrator.SearchByIngredients(ctx, store); err != nil {
//	    // store.State().Error holds the message shown to the user
//	}
package core
