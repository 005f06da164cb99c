package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestMemoryCache_GetSet(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	cache := NewMemoryCache()

	_, ok := cache.Get(ctx, "missing")
	is.True(!ok)

	is.NoErr(cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	is.True(ok)
	is.Equal(val, "v")
	is.Equal(cache.Len(), 1)
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%10)
			_ = cache.Set(ctx, key, "v")
			cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if cache.Len() != 10 {
		t.Errorf("expected 10 entries, got %d", cache.Len())
	}
}
