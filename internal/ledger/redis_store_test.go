package ledger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedisStoreKeyNamespace(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	store := NewRedisStore(client, "doblink:")
	if got := store.key("INV:7"); got != "doblink:INV:7" {
		t.Errorf("key() = %q, want doblink:INV:7", got)
	}
}

// TestRedisStoreRoundTrip runs against a live server when REDIS_URL is set.
func TestRedisStoreRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	prefix := fmt.Sprintf("doblink-test:%d:", time.Now().UnixNano())
	defer func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	}()

	store := NewRedisStore(client, prefix)

	if _, ok, err := store.Get(ctx, "CNT"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Commit(ctx, []Read{{Key: "CNT"}}, []Write{
		{Key: "CNT", Value: []byte("2")},
		{Key: "INV:1", Value: []byte(`{"id":1}`)},
	}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	value, ok, err := store.Get(ctx, "INV:1")
	if err != nil || !ok {
		t.Fatalf("expected INV:1, got ok=%v err=%v", ok, err)
	}
	if string(value) != `{"id":1}` {
		t.Errorf("unexpected value %q", value)
	}

	err = store.Commit(ctx, []Read{{Key: "CNT", Value: []byte("1"), Found: true}}, []Write{{Key: "CNT", Value: []byte("9")}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for a stale read, got %v", err)
	}
	value, _, _ = store.Get(ctx, "CNT")
	if string(value) != "2" {
		t.Errorf("conflicting commit must not apply, CNT=%q", value)
	}
}
