package memory

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// A search result page is a few kilobytes of JSON
var benchPage = []byte(fmt.Sprintf(`[%s]`, repeatRecipe(12)))

func repeatRecipe(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"id":%d,"title":"Recipe %d","usedIngredientCount":2,"missedIngredientCount":3}`, i, i)
	}
	return out
}

func populate(cache *MemoryCache, n int) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("recipes:ingredients:%d", i), benchPage, time.Hour)
	}
}

func BenchmarkMemoryCache_GetPage(b *testing.B) {
	cache := NewMemoryCache(time.Minute)
	populate(cache, 1000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, fmt.Sprintf("recipes:ingredients:%d", i%1000))
	}
}

func BenchmarkMemoryCache_SetPage(b *testing.B) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("recipes:ingredients:%d", i), benchPage, time.Hour)
	}
}

func BenchmarkMemoryCache_ConcurrentGet(b *testing.B) {
	cache := NewMemoryCache(time.Minute)
	populate(cache, 100)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = cache.Get(ctx, fmt.Sprintf("recipes:ingredients:%d", i%100))
			i++
		}
	})
}

func BenchmarkMemoryCache_ConcurrentMixed(b *testing.B) {
	cache := NewMemoryCache(time.Minute)
	populate(cache, 100)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("recipes:ingredients:%d", i%100)
			if i%10 == 0 {
				_ = cache.Set(ctx, key, benchPage, time.Hour)
			} else {
				_, _ = cache.Get(ctx, key)
			}
			i++
		}
	})
}
