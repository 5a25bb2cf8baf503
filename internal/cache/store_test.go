package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/pixil98/go-testutil"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, prefix string) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, prefix), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t, "main")
	ctx := context.Background()

	_, found, err := store.Get(ctx, "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found before set", found, false)

	if err := store.Set(ctx, "arthur", []byte(`{"id":"arthur"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, found, err := store.Get(ctx, "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found after set", found, true)
	testutil.AssertEqual(t, "value", string(val), `{"id":"arthur"}`)
}

func TestRedisStore_KeysAreNamespaced(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	main := NewRedisStore(client, "main")
	staging := NewRedisStore(client, "staging")
	ctx := context.Background()

	if err := main.Set(ctx, "arthur", []byte("prod")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same backing store, different prefix, no collision.
	_, found, err := staging.Get(ctx, "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "cross-namespace read", found, false)

	if !mr.Exists("main_arthur") {
		t.Error("expected key main_arthur in backing store")
	}
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, "main")
	ctx := context.Background()

	if err := store.Set(ctx, "arthur", []byte("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "arthur"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, found, err := store.Get(ctx, "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found after delete", found, false)

	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, "arthur"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRedisStore_UnavailableBackend(t *testing.T) {
	store, mr := newTestStore(t, "main")
	mr.Close()
	ctx := context.Background()

	_, _, err := store.Get(ctx, "arthur")
	if !errors.Is(err, ErrCacheUnavailable) {
		t.Errorf("expected ErrCacheUnavailable, got %v", err)
	}

	err = store.Set(ctx, "arthur", []byte("x"))
	if !errors.Is(err, ErrCacheUnavailable) {
		t.Errorf("expected ErrCacheUnavailable, got %v", err)
	}
}
