package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	if _, ok := store.Get(ctx, "stats:v1"); ok {
		t.Fatalf("expected miss before set")
	}

	store.Set(ctx, "stats:v1", 42)
	value, ok := store.Get(ctx, "stats:v1")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if got := value.(int); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	store.Delete(ctx, "stats:v1")
	if _, ok := store.Get(ctx, "stats:v1"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)

	store.Set(ctx, "k", "v")
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatalf("expected fresh entry to be present")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "stats:39:2025:1", "a")
	store.Set(ctx, "stats:39:2025:2", "b")
	store.Set(ctx, "form:39:2025:1", "c")

	store.DeletePrefix(ctx, "stats:")

	if _, ok := store.Get(ctx, "stats:39:2025:1"); ok {
		t.Fatalf("expected prefixed entry to be deleted")
	}
	if _, ok := store.Get(ctx, "stats:39:2025:2"); ok {
		t.Fatalf("expected prefixed entry to be deleted")
	}
	if _, ok := store.Get(ctx, "form:39:2025:1"); !ok {
		t.Fatalf("expected unrelated entry to survive")
	}
}

func TestStore_GetOrLoad_DeduplicatesLoads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	var calls int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "loaded", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]any, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = store.GetOrLoad(ctx, "shared", loader)
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected one load, got %d", got)
	}
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("unexpected error: %v", errs[i])
		}
		if results[i] != "loaded" {
			t.Fatalf("unexpected result %v", results[i])
		}
	}

	if _, ok := store.Get(ctx, "shared"); !ok {
		t.Fatalf("expected loaded value to be cached")
	}
}

func TestStore_GetOrLoad_ErrorNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	wantErr := errors.New("upstream down")
	_, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}

	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected failed load not to be cached")
	}
}
