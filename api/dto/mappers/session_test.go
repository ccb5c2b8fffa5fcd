package mappers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"recipe-finder-api/core/domain"
	"recipe-finder-api/core/session"
	"recipe-finder-api/core/state"
)

func TestToStateResponse_HidesAPIKey(t *testing.T) {
	s := state.NewAppState()
	s.APIKey = "super-secret"
	s.Ingredients = []string{"egg"}

	resp := ToStateResponse(s)

	if !resp.HasAPIKey {
		t.Error("HasAPIKey = false, want true")
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "super-secret") {
		t.Errorf("response leaks the credential: %s", data)
	}
}

func TestToStateResponse_EmptyListsAreArrays(t *testing.T) {
	resp := ToStateResponse(state.AppState{})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, `"ingredients":[]`) || !strings.Contains(body, `"recipes":[]`) {
		t.Errorf("empty lists should serialize as arrays, got %s", body)
	}
	if strings.Contains(body, "selected_recipe") {
		t.Errorf("absent selected recipe should be omitted, got %s", body)
	}
}

func TestToSessionResponse(t *testing.T) {
	if ToSessionResponse(nil) != nil {
		t.Error("ToSessionResponse(nil) should return nil")
	}

	store := state.NewStore()
	store.Dispatch(state.AddIngredient{Value: "rice"})
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sess := &session.Session{ID: "abc", CreatedAt: created, Store: store}

	resp := ToSessionResponse(sess)

	if resp.ID != "abc" || !resp.CreatedAt.Equal(created) {
		t.Errorf("unexpected identity: %+v", resp)
	}
	if len(resp.State.Ingredients) != 1 || resp.State.Ingredients[0] != "rice" {
		t.Errorf("Ingredients = %v, want [rice]", resp.State.Ingredients)
	}
}

func TestToRecipePage(t *testing.T) {
	s := state.NewAppState()
	for i := 1; i <= 25; i++ {
		s.Recipes = append(s.Recipes, domain.Recipe{ID: i})
	}

	tests := []struct {
		name       string
		page       int
		perPage    int
		wantFirst  int
		wantLen    int
		wantPages  int
		wantPerPge int
	}{
		{name: "first page", page: 1, perPage: 10, wantFirst: 1, wantLen: 10, wantPages: 3, wantPerPge: 10},
		{name: "last partial page", page: 3, perPage: 10, wantFirst: 21, wantLen: 5, wantPages: 3, wantPerPge: 10},
		{name: "past the end", page: 9, perPage: 10, wantLen: 0, wantPages: 3, wantPerPge: 10},
		{name: "defaults", page: 0, perPage: 0, wantFirst: 1, wantLen: 12, wantPages: 3, wantPerPge: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ToRecipePage(s, tt.page, tt.perPage)

			if len(page.Recipes) != tt.wantLen {
				t.Fatalf("len(Recipes) = %d, want %d", len(page.Recipes), tt.wantLen)
			}
			if tt.wantLen > 0 && page.Recipes[0].ID != tt.wantFirst {
				t.Errorf("first ID = %d, want %d", page.Recipes[0].ID, tt.wantFirst)
			}
			if page.Total != 25 {
				t.Errorf("Total = %d, want 25", page.Total)
			}
			if page.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.wantPages)
			}
			if page.PerPage != tt.wantPerPge {
				t.Errorf("PerPage = %d, want %d", page.PerPage, tt.wantPerPge)
			}
		})
	}
}

func TestToRecipeDetailsResponse(t *testing.T) {
	details := &domain.RecipeDetails{
		ID:             7,
		Title:          "Stew",
		ReadyInMinutes: 65,
		Summary:        "<p>A <b>hearty</b> stew</p>",
	}
	s := state.NewAppState()
	s.SelectedRecipe = details

	resp := ToRecipeDetailsResponse(details, s)

	if resp.ReadyIn != "1 hour 5 minutes" {
		t.Errorf("ReadyIn = %q, want %q", resp.ReadyIn, "1 hour 5 minutes")
	}
	if resp.SummaryText != "A hearty stew" {
		t.Errorf("SummaryText = %q, want %q", resp.SummaryText, "A hearty stew")
	}
	if resp.State.SelectedRecipe == nil || resp.State.SelectedRecipe.ID != 7 {
		t.Errorf("State.SelectedRecipe = %+v, want recipe 7", resp.State.SelectedRecipe)
	}

	empty := ToRecipeDetailsResponse(nil, state.NewAppState())
	if empty.Recipe != nil || empty.ReadyIn != "" || empty.SummaryText != "" {
		t.Errorf("nil details produced %+v", empty)
	}
}
