// ABOUTME: Load tests for the session search endpoints
// ABOUTME: Drives many sessions through the full middleware and flow stack concurrently

package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"recipe-finder-api/api"
	"recipe-finder-api/api/dto/responses"
	"recipe-finder-api/api/handlers"
	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/flows"
	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/core/session"
	sessionmemory "recipe-finder-api/infrastructure/session/memory"
)

// stubRecipeAPI answers every call after a fixed delay
type stubRecipeAPI struct {
	delay time.Duration
	calls atomic.Int64
}

func (s *stubRecipeAPI) wait(ctx context.Context) error {
	s.calls.Add(1)
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *stubRecipeAPI) SearchByIngredients(ctx context.Context, apiKey string, q domain.IngredientQuery) ([]domain.Recipe, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Recipe, 0, len(q.Ingredients))
	for i, ing := range q.Ingredients {
		out = append(out, domain.Recipe{ID: i + 1, Title: "Recipe with " + ing})
	}
	return out, nil
}

func (s *stubRecipeAPI) RecipeDetails(ctx context.Context, apiKey string, id int, includeNutrition bool) (*domain.RecipeDetails, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &domain.RecipeDetails{ID: id, Title: fmt.Sprintf("Recipe %d", id)}, nil
}

func (s *stubRecipeAPI) IngredientSuggestions(ctx context.Context, apiKey string, query string, number int) ([]domain.IngredientSuggestion, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return []domain.IngredientSuggestion{{Name: query}}, nil
}

func (s *stubRecipeAPI) ComplexSearch(ctx context.Context, apiKey string, q domain.ComplexQuery) (*domain.SearchPage, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &domain.SearchPage{Results: []domain.Recipe{{ID: 1, Title: q.Query}}, TotalResults: 1}, nil
}

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	RequestsPerSec float64
}

func newServer(t *testing.T, upstream interfaces.RecipeAPI) *httptest.Server {
	t.Helper()

	repo := sessionmemory.NewRepository(time.Hour, time.Minute)
	sessions := session.NewService(repo, "", interfaces.Dependencies{})
	orchestrator := flows.NewOrchestrator(upstream, nil)

	humaAPI, router := api.NewAPI()
	handlers.NewSessionHandler(sessions).RegisterRoutes(humaAPI)
	handlers.NewSearchHandler(sessions, orchestrator, nil).RegisterRoutes(humaAPI)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// call sends a JSON request and decodes the response into out when non-nil
func call(client *http.Client, method, url string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
		return resp.StatusCode, nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// newSession creates a session with a key and the given ingredients
func newSession(client *http.Client, base string, ingredients ...string) (string, error) {
	var created responses.SessionResponse
	if status, err := call(client, http.MethodPost, base+"/sessions", nil, &created); err != nil || status != http.StatusCreated {
		return "", fmt.Errorf("create session: status %d: %v", status, err)
	}

	prefix := base + "/sessions/" + created.ID
	if status, err := call(client, http.MethodPut, prefix+"/api-key", map[string]string{"api_key": "load-key"}, nil); err != nil || status != http.StatusOK {
		return "", fmt.Errorf("set key: status %d: %v", status, err)
	}
	for _, ing := range ingredients {
		if status, err := call(client, http.MethodPost, prefix+"/ingredients", map[string]string{"value": ing}, nil); err != nil || status != http.StatusOK {
			return "", fmt.Errorf("add ingredient: status %d: %v", status, err)
		}
	}
	return created.ID, nil
}

func TestSearchEndpoint_100ConcurrentSessions(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}

	upstream := &stubRecipeAPI{delay: 10 * time.Millisecond}
	server := newServer(t, upstream)

	concurrency := 100
	searchesPerWorker := 5
	totalRequests := concurrency * searchesPerWorker

	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
	)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	startTime := time.Now()

	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()

			client := &http.Client{Timeout: 30 * time.Second}
			ingredient := fmt.Sprintf("ingredient-%d", workerID)
			id, err := newSession(client, server.URL, ingredient)
			if err != nil {
				atomic.AddInt64(&failCount, int64(searchesPerWorker))
				return
			}

			for j := 0; j < searchesPerWorker; j++ {
				var st responses.StateResponse
				reqStart := time.Now()
				status, err := call(client, http.MethodPost, server.URL+"/sessions/"+id+"/search", nil, &st)
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				// Each session must only ever see its own results
				if err != nil || status != http.StatusOK || len(st.Recipes) != 1 ||
					st.Recipes[0].Title != "Recipe with "+ingredient || st.Loading {
					atomic.AddInt64(&failCount, 1)
					continue
				}
				atomic.AddInt64(&successCount, 1)
			}
		}(i)
	}

	wg.Wait()
	totalDuration := time.Since(startTime)

	metrics := calculateMetrics(latencies, totalDuration, totalRequests)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	t.Logf("Load Test Results - 100 Concurrent Sessions")
	t.Logf("===========================================")
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Total Duration: %v", metrics.TotalDuration)
	t.Logf("Requests/sec: %.2f", metrics.RequestsPerSec)
	t.Logf("Avg Latency: %v", metrics.AvgLatency)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("P99 Latency: %v", metrics.P99Latency)

	if metrics.FailedReqs > 0 {
		t.Errorf("Had %d failed requests", metrics.FailedReqs)
	}

	if metrics.P95Latency > 2*time.Second {
		t.Errorf("P95 latency too high: %v", metrics.P95Latency)
	}

	if got := upstream.calls.Load(); got != int64(totalRequests) {
		t.Errorf("upstream calls = %d, want %d", got, totalRequests)
	}
}

func TestSearchEndpoint_ConcurrentRequestsOnOneSession(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}

	server := newServer(t, &stubRecipeAPI{delay: 5 * time.Millisecond})
	client := &http.Client{Timeout: 30 * time.Second}

	id, err := newSession(client, server.URL, "egg", "flour")
	if err != nil {
		t.Fatal(err)
	}
	prefix := server.URL + "/sessions/" + id

	var failCount int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url := prefix + "/search"
			if i%2 == 1 {
				url = fmt.Sprintf("%s/recipes/%d", prefix, i)
			}
			method := http.MethodPost
			if i%2 == 1 {
				method = http.MethodGet
			}
			if status, err := call(client, method, url, nil, nil); err != nil || status != http.StatusOK {
				atomic.AddInt64(&failCount, 1)
			}
		}(i)
	}
	wg.Wait()

	if failCount > 0 {
		t.Errorf("Had %d failed requests", failCount)
	}

	var final responses.SessionResponse
	if status, err := call(client, http.MethodGet, prefix, nil, &final); err != nil || status != http.StatusOK {
		t.Fatalf("get session: status %d: %v", status, err)
	}
	if final.State.Loading {
		t.Error("session still loading after every request finished")
	}
	if len(final.State.Recipes) != 2 {
		t.Errorf("len(Recipes) = %d, want 2", len(final.State.Recipes))
	}
	if final.State.Error != "" {
		t.Errorf("Error = %q, want empty", final.State.Error)
	}
}

// calculateMetrics computes performance metrics from latency data
func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	sorted := slices.Clone(latencies)
	slices.Sort(sorted)

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	p95Index := int(float64(len(sorted)) * 0.95)
	p99Index := int(float64(len(sorted)) * 0.99)

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sorted[0],
		MaxLatency:     sorted[len(sorted)-1],
		AvgLatency:     sum / time.Duration(len(latencies)),
		P95Latency:     sorted[p95Index],
		P99Latency:     sorted[p99Index],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}
