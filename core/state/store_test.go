package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-finder-api/core/domain"
)

func TestStore_DispatchAppliesInOrder(t *testing.T) {
	store := NewStore()

	store.Dispatch(
		AddIngredient{Value: "egg"},
		AddIngredient{Value: "flour"},
		RemoveIngredient{Value: "egg"},
		SetAPIKey{Key: "k"},
	)

	s := store.State()
	assert.Equal(t, []string{"flour"}, s.Ingredients)
	assert.Equal(t, "k", s.APIKey)
}

func TestStore_StateIsASnapshot(t *testing.T) {
	store := NewStore()
	store.Dispatch(AddIngredient{Value: "egg"})

	snap := store.State()
	snap.Ingredients[0] = "changed"
	store.Dispatch(AddIngredient{Value: "milk"})

	assert.Equal(t, []string{"egg", "milk"}, store.State().Ingredients)
	assert.Equal(t, "changed", snap.Ingredients[0])
	assert.Len(t, snap.Ingredients, 1)
}

func TestStore_BeginFinish_ClearsLoading(t *testing.T) {
	store := NewStore()

	ticket := store.Begin(RequestSearch, SetLoading{Loading: true}, SetError{Message: ""})
	require.True(t, store.State().Loading)
	assert.Equal(t, 1, store.InFlight())

	applied := store.Finish(ticket, SetRecipes{Recipes: []domain.Recipe{{ID: 7}}})

	assert.True(t, applied)
	s := store.State()
	assert.False(t, s.Loading)
	assert.Len(t, s.Recipes, 1)
	assert.Equal(t, 0, store.InFlight())
}

func TestStore_StaleResultIsDropped(t *testing.T) {
	store := NewStore()

	first := store.Begin(RequestSearch, SetLoading{Loading: true})
	second := store.Begin(RequestSearch, SetLoading{Loading: true})

	// The older request resolves last in real life; here it resolves first
	applied := store.Finish(first, SetRecipes{Recipes: []domain.Recipe{{ID: 1}}})
	assert.False(t, applied)
	assert.True(t, store.State().Loading, "newer request still in flight")
	assert.Empty(t, store.State().Recipes)

	applied = store.Finish(second, SetRecipes{Recipes: []domain.Recipe{{ID: 2}}})
	assert.True(t, applied)

	s := store.State()
	assert.False(t, s.Loading)
	require.Len(t, s.Recipes, 1)
	assert.Equal(t, 2, s.Recipes[0].ID)
}

func TestStore_StaleResultAfterNewerFinishes(t *testing.T) {
	store := NewStore()

	first := store.Begin(RequestSearch)
	second := store.Begin(RequestSearch)

	store.Finish(second, SetRecipes{Recipes: []domain.Recipe{{ID: 2}}})
	applied := store.Finish(first, SetRecipes{Recipes: []domain.Recipe{{ID: 1}}}, SetError{Message: "late failure"})

	assert.False(t, applied)
	s := store.State()
	assert.Equal(t, 2, s.Recipes[0].ID)
	assert.Empty(t, s.Error)
	assert.False(t, s.Loading)
}

func TestStore_KindsDoNotSupersedeEachOther(t *testing.T) {
	store := NewStore()

	search := store.Begin(RequestSearch, SetLoading{Loading: true})
	details := store.Begin(RequestDetails, SetLoading{Loading: true})

	assert.True(t, store.Finish(details, SetSelectedRecipe{Recipe: &domain.RecipeDetails{ID: 5}}))
	assert.True(t, store.State().Loading, "search still running")

	assert.True(t, store.Finish(search, SetRecipes{Recipes: []domain.Recipe{{ID: 5}}}))
	assert.False(t, store.State().Loading)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Dispatch(AddIngredient{Value: string(rune('a' + n%26))})
			_ = store.State()
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.State().Ingredients, 26)
}
