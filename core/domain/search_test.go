package domain

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestDefaultSearchFilters(t *testing.T) {
	f := DefaultSearchFilters()

	if f.Cuisine != "" || f.Diet != "" || f.Type != "" {
		t.Errorf("string filters should start unset, got %+v", f)
	}
	if f.MaxReadyTime != 120 {
		t.Errorf("MaxReadyTime = %d, want 120", f.MaxReadyTime)
	}
	if f.MinCalories != 0 {
		t.Errorf("MinCalories = %d, want 0", f.MinCalories)
	}
	if f.MaxCalories != 2000 {
		t.Errorf("MaxCalories = %d, want 2000", f.MaxCalories)
	}
}

func TestSearchFilters_Merge(t *testing.T) {
	tests := []struct {
		name     string
		patch    FilterPatch
		expected SearchFilters
	}{
		{
			name:     "empty patch leaves filters alone",
			patch:    FilterPatch{},
			expected: DefaultSearchFilters(),
		},
		{
			name:  "single string field",
			patch: FilterPatch{Diet: strPtr("vegan")},
			expected: SearchFilters{
				Diet:         "vegan",
				MaxReadyTime: 120,
				MaxCalories:  2000,
			},
		},
		{
			name:  "explicit zero replaces value",
			patch: FilterPatch{MaxReadyTime: intPtr(0)},
			expected: SearchFilters{
				MaxReadyTime: 0,
				MaxCalories:  2000,
			},
		},
		{
			name: "several fields at once",
			patch: FilterPatch{
				Cuisine:     strPtr("italian"),
				Type:        strPtr("main course"),
				MinCalories: intPtr(300),
				MaxCalories: intPtr(800),
			},
			expected: SearchFilters{
				Cuisine:      "italian",
				Type:         "main course",
				MaxReadyTime: 120,
				MinCalories:  300,
				MaxCalories:  800,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultSearchFilters().Merge(tt.patch)
			if got != tt.expected {
				t.Errorf("Merge() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSearchFilters_MergeIsCumulative(t *testing.T) {
	f := DefaultSearchFilters().
		Merge(FilterPatch{Diet: strPtr("vegan")}).
		Merge(FilterPatch{Cuisine: strPtr("italian")})

	if f.Diet != "vegan" || f.Cuisine != "italian" {
		t.Errorf("both patches should apply, got %+v", f)
	}
	if f.MaxReadyTime != 120 || f.MaxCalories != 2000 || f.MinCalories != 0 || f.Type != "" {
		t.Errorf("untouched fields should keep defaults, got %+v", f)
	}
}

func TestFilterPatch_IsEmpty(t *testing.T) {
	if !(FilterPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (FilterPatch{MinCalories: intPtr(0)}).IsEmpty() {
		t.Error("patch with a set field should not be empty")
	}
}

func TestNewIngredientQuery(t *testing.T) {
	q := NewIngredientQuery([]string{"egg", "flour"})

	if q.Number != 12 {
		t.Errorf("Number = %d, want 12", q.Number)
	}
	if q.Ranking != 1 {
		t.Errorf("Ranking = %d, want 1", q.Ranking)
	}
	if !q.IgnorePantry {
		t.Error("IgnorePantry should default to true")
	}
	if len(q.Ingredients) != 2 {
		t.Errorf("Ingredients = %v, want 2 entries", q.Ingredients)
	}
}
