// ABOUTME: Recipe domain models returned by the remote recipe service
// ABOUTME: Summary results, full recipe details and ingredient suggestions

package domain

import "recipe-finder-api/pkg/utils/html"

// Recipe is a summary search result. Fields the remote does not send stay zero.
type Recipe struct {
	ID                    int                `json:"id"`
	Title                 string             `json:"title"`
	Image                 string             `json:"image,omitempty"`
	ImageType             string             `json:"imageType,omitempty"`
	UsedIngredientCount   int                `json:"usedIngredientCount"`
	MissedIngredientCount int                `json:"missedIngredientCount"`
	Likes                 int                `json:"likes,omitempty"`
	ReadyInMinutes        int                `json:"readyInMinutes,omitempty"`
	UsedIngredients       []RecipeIngredient `json:"usedIngredients,omitempty"`
	MissedIngredients     []RecipeIngredient `json:"missedIngredients,omitempty"`
	UnusedIngredients     []RecipeIngredient `json:"unusedIngredients,omitempty"`
}

// RecipeIngredient is an ingredient line as the remote service reports it
type RecipeIngredient struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Original string  `json:"original,omitempty"`
	Aisle    string  `json:"aisle,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// RecipeDetails is the full recipe record fetched on demand
type RecipeDetails struct {
	ID                   int                `json:"id"`
	Title                string             `json:"title"`
	Image                string             `json:"image,omitempty"`
	Servings             int                `json:"servings,omitempty"`
	ReadyInMinutes       int                `json:"readyInMinutes,omitempty"`
	SourceURL            string             `json:"sourceUrl,omitempty"`
	Summary              string             `json:"summary,omitempty"`
	Instructions         string             `json:"instructions,omitempty"`
	Cuisines             []string           `json:"cuisines,omitempty"`
	Diets                []string           `json:"diets,omitempty"`
	DishTypes            []string           `json:"dishTypes,omitempty"`
	Vegetarian           bool               `json:"vegetarian"`
	Vegan                bool               `json:"vegan"`
	GlutenFree           bool               `json:"glutenFree"`
	DairyFree            bool               `json:"dairyFree"`
	HealthScore          float64            `json:"healthScore,omitempty"`
	PricePerServing      float64            `json:"pricePerServing,omitempty"`
	ExtendedIngredients  []RecipeIngredient `json:"extendedIngredients,omitempty"`
	AnalyzedInstructions []InstructionSet   `json:"analyzedInstructions,omitempty"`
	Nutrition            *Nutrition         `json:"nutrition,omitempty"`
}

// InstructionSet groups numbered preparation steps
type InstructionSet struct {
	Name  string            `json:"name"`
	Steps []InstructionStep `json:"steps"`
}

// InstructionStep is a single preparation step
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// Nutrition holds per-serving nutrient values
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Nutrient is one nutrient measurement
type Nutrient struct {
	Name                string  `json:"name"`
	Amount              float64 `json:"amount"`
	Unit                string  `json:"unit"`
	PercentOfDailyNeeds float64 `json:"percentOfDailyNeeds,omitempty"`
}

// PlainSummary returns the summary with markup removed.
// The remote service sends summaries as HTML fragments.
func (d *RecipeDetails) PlainSummary() string {
	if d == nil || d.Summary == "" {
		return ""
	}
	return html.StripHTML(d.Summary)
}

// Calories returns the calorie nutrient amount, if nutrition was requested
func (d *RecipeDetails) Calories() (float64, bool) {
	if d == nil || d.Nutrition == nil {
		return 0, false
	}
	for _, n := range d.Nutrition.Nutrients {
		if n.Name == "Calories" {
			return n.Amount, true
		}
	}
	return 0, false
}

// IngredientSuggestion is an autocomplete hit with optional metadata
type IngredientSuggestion struct {
	Name          string   `json:"name"`
	Image         string   `json:"image,omitempty"`
	ID            int      `json:"id,omitempty"`
	Aisle         string   `json:"aisle,omitempty"`
	PossibleUnits []string `json:"possibleUnits,omitempty"`
}

// SearchPage is one page of complex search results
type SearchPage struct {
	Results      []Recipe `json:"results"`
	Offset       int      `json:"offset"`
	Number       int      `json:"number"`
	TotalResults int      `json:"totalResults"`
}
