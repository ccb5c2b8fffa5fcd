// ABOUTME: Client for the Spoonacular recipe API
// ABOUTME: Encodes parameters, performs GET requests, checks status and decodes JSON for four endpoints

package spoonacular

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/errors"
	"recipe-finder-api/core/interfaces"
)

// DefaultBaseURL is the public Spoonacular endpoint
const DefaultBaseURL = "https://api.spoonacular.com"

// Operation names used in errors, logs and metrics
const (
	OpSearchByIngredients   = "search_by_ingredients"
	OpRecipeDetails         = "recipe_details"
	OpIngredientSuggestions = "ingredient_suggestions"
	OpComplexSearch         = "complex_search"
)

// Client talks to the remote recipe service. It holds no credential:
// every call carries its own, so a single Client can serve many users.
type Client struct {
	baseURL string
	deps    interfaces.Dependencies
}

// NewClient creates a client for baseURL; an empty baseURL uses DefaultBaseURL
func NewClient(baseURL string, deps interfaces.Dependencies) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		deps:    deps,
	}
}

var _ interfaces.RecipeAPI = (*Client)(nil)

// SearchByIngredients calls GET /recipes/findByIngredients
func (c *Client) SearchByIngredients(ctx context.Context, apiKey string, query domain.IngredientQuery) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.get(ctx, OpSearchByIngredients, "/recipes/findByIngredients", ingredientSearchParams(apiKey, query), &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, nil
}

// RecipeDetails calls GET /recipes/{id}/information
func (c *Client) RecipeDetails(ctx context.Context, apiKey string, id int, includeNutrition bool) (*domain.RecipeDetails, error) {
	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("includeNutrition", fmt.Sprint(includeNutrition))

	var details domain.RecipeDetails
	path := fmt.Sprintf("/recipes/%d/information", id)
	if err := c.get(ctx, OpRecipeDetails, path, params, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// IngredientSuggestions calls GET /food/ingredients/autocomplete
func (c *Client) IngredientSuggestions(ctx context.Context, apiKey string, query string, number int) ([]domain.IngredientSuggestion, error) {
	if number <= 0 {
		number = domain.DefaultSuggestionCount
	}

	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("query", query)
	params.Set("number", fmt.Sprint(number))
	params.Set("metaInformation", "true")

	var suggestions []domain.IngredientSuggestion
	if err := c.get(ctx, OpIngredientSuggestions, "/food/ingredients/autocomplete", params, &suggestions); err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []domain.IngredientSuggestion{}
	}
	return suggestions, nil
}

// ComplexSearch calls GET /recipes/complexSearch
func (c *Client) ComplexSearch(ctx context.Context, apiKey string, query domain.ComplexQuery) (*domain.SearchPage, error) {
	var page domain.SearchPage
	if err := c.get(ctx, OpComplexSearch, "/recipes/complexSearch", complexSearchParams(apiKey, query), &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []domain.Recipe{}
	}
	return &page, nil
}

// get performs one request and records its outcome
func (c *Client) get(ctx context.Context, op, path string, params url.Values, dest interface{}) error {
	start := time.Now()
	err := c.fetch(ctx, op, path, params, dest)
	elapsed := time.Since(start)

	if c.deps.Metrics != nil {
		c.deps.Metrics.UpstreamCall(op, outcome(err), elapsed)
	}

	if err != nil && c.deps.Logger != nil {
		// The query string carries the credential and is never logged
		c.deps.Logger.Error("Recipe API request failed", map[string]interface{}{
			"operation":   op,
			"path":        path,
			"duration_ms": elapsed.Milliseconds(),
			"status":      errors.StatusCode(err),
			"error":       err.Error(),
		})
	}
	return err
}

func (c *Client) fetch(ctx context.Context, op, path string, params url.Values, dest interface{}) error {
	if c.deps.HTTPClient == nil {
		return &errors.TransportError{Operation: op, Err: fmt.Errorf("HTTP client not configured")}
	}

	endpoint := c.baseURL + path + "?" + params.Encode()

	resp, err := c.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return &errors.TransportError{Operation: op, Err: redact(err, c.baseURL+path)}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		_, _ = io.Copy(io.Discard, resp.Body())
		return &errors.HTTPError{Operation: op, Status: resp.StatusCode()}
	}

	if err := json.NewDecoder(resp.Body()).Decode(dest); err != nil {
		return &errors.DecodeError{Operation: op, Err: err}
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.IsHTTP(err):
		return "http_error"
	case errors.IsDecode(err):
		return "decode_error"
	default:
		return "transport_error"
	}
}

// redact strips the query string, and with it the credential, from URL errors
func redact(err error, safeURL string) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		urlErr.URL = safeURL
	}
	return err
}
