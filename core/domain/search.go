// ABOUTME: Search filter and query models for recipe lookups
// ABOUTME: Holds filter defaults, partial filter merging and query defaults

package domain

const (
	// DefaultMaxReadyTime is the default ready time ceiling in minutes
	DefaultMaxReadyTime = 120

	// DefaultMaxCalories is the default calorie ceiling
	DefaultMaxCalories = 2000

	// DefaultResultCount is how many recipes a search asks for
	DefaultResultCount = 12

	// DefaultRanking maximizes used ingredients
	DefaultRanking = 1

	// DefaultSuggestionCount is how many autocomplete hits are requested
	DefaultSuggestionCount = 10
)

// SearchFilters narrows a complex search. Empty strings and zero values mean unset.
type SearchFilters struct {
	Cuisine      string `json:"cuisine"`
	Diet         string `json:"diet"`
	Type         string `json:"type"`
	MaxReadyTime int    `json:"maxReadyTime"`
	MinCalories  int    `json:"minCalories"`
	MaxCalories  int    `json:"maxCalories"`
}

// DefaultSearchFilters returns the filters a new session starts with
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		MaxReadyTime: DefaultMaxReadyTime,
		MinCalories:  0,
		MaxCalories:  DefaultMaxCalories,
	}
}

// FilterPatch is a partial update of SearchFilters. Nil fields are left alone.
type FilterPatch struct {
	Cuisine      *string `json:"cuisine,omitempty"`
	Diet         *string `json:"diet,omitempty"`
	Type         *string `json:"type,omitempty"`
	MaxReadyTime *int    `json:"maxReadyTime,omitempty"`
	MinCalories  *int    `json:"minCalories,omitempty"`
	MaxCalories  *int    `json:"maxCalories,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p FilterPatch) IsEmpty() bool {
	return p.Cuisine == nil && p.Diet == nil && p.Type == nil &&
		p.MaxReadyTime == nil && p.MinCalories == nil && p.MaxCalories == nil
}

// Merge returns f with every field set in p replaced
func (f SearchFilters) Merge(p FilterPatch) SearchFilters {
	if p.Cuisine != nil {
		f.Cuisine = *p.Cuisine
	}
	if p.Diet != nil {
		f.Diet = *p.Diet
	}
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.MaxReadyTime != nil {
		f.MaxReadyTime = *p.MaxReadyTime
	}
	if p.MinCalories != nil {
		f.MinCalories = *p.MinCalories
	}
	if p.MaxCalories != nil {
		f.MaxCalories = *p.MaxCalories
	}
	return f
}

// IngredientQuery parameters for a search by ingredients
type IngredientQuery struct {
	Ingredients  []string
	Number       int
	Ranking      int
	IgnorePantry bool
}

// NewIngredientQuery returns a query with the default count, ranking and pantry handling
func NewIngredientQuery(ingredients []string) IngredientQuery {
	return IngredientQuery{
		Ingredients:  ingredients,
		Number:       DefaultResultCount,
		Ranking:      DefaultRanking,
		IgnorePantry: true,
	}
}

// ComplexQuery parameters for a free text search with filters
type ComplexQuery struct {
	Query       string
	Ingredients []string
	Filters     SearchFilters
	Number      int
	Offset      int
}
