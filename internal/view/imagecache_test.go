package view

import (
	"context"
	"errors"
	"testing"
)

func TestImageCacheFetchesLazily(t *testing.T) {
	calls := 0
	cache := NewImageCache(func(_ context.Context, id string) (string, error) {
		calls++
		return "data:image/jpeg;base64,abc-" + id, nil
	})

	ctx := context.Background()

	url, err := cache.Get(ctx, "img1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if url != "data:image/jpeg;base64,abc-img1" {
		t.Errorf("unexpected url %q", url)
	}

	// Second reference is served from the cache.
	if _, err := cache.Get(ctx, "img1"); err != nil {
		t.Fatalf("Get cached: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 fetch, got %d", calls)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 cached entry, got %d", cache.Len())
	}
}

func TestImageCacheDoesNotCacheFailures(t *testing.T) {
	fail := true
	cache := NewImageCache(func(context.Context, string) (string, error) {
		if fail {
			return "", errors.New("fetch failed")
		}
		return "data:image/jpeg;base64,ok", nil
	})

	ctx := context.Background()

	if _, err := cache.Get(ctx, "img1"); err == nil {
		t.Fatal("expected error")
	}
	if cache.Len() != 0 {
		t.Errorf("failure must not be cached, got %d entries", cache.Len())
	}

	fail = false
	url, err := cache.Get(ctx, "img1")
	if err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
	if url == "" {
		t.Error("expected url after recovery")
	}
}
