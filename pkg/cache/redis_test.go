package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL: url,
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests — skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	t.Run("Ping_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("ItemCache_RoundTrip", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		ctx := context.Background()
		ic := NewItemCache(rc)

		maxQty := 100
		want := &CachedItem{
			ID:          uuid.New(),
			Name:        "Sterile Gauze",
			Status:      "AVAILABLE",
			Quantity:    42,
			MinQuantity: 10,
			MaxQuantity: &maxQty,
			Location:    "Storage B2",
			CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
			UpdatedAt:   time.Now().UTC().Truncate(time.Millisecond),
		}
		if err := ic.Set(ctx, want); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		defer ic.Delete(ctx, want.ID) //nolint:errcheck

		got, err := ic.Get(ctx, want.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name != want.Name || got.Quantity != want.Quantity || got.MinQuantity != want.MinQuantity {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
		if got.MaxQuantity == nil || *got.MaxQuantity != maxQty {
			t.Fatalf("expected MaxQuantity %d, got %v", maxQty, got.MaxQuantity)
		}
	})

	t.Run("ItemCache_Delete", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		ctx := context.Background()
		ic := NewItemCache(rc)

		item := &CachedItem{ID: uuid.New(), Name: "Syringes", Status: "AVAILABLE"}
		if err := ic.Set(ctx, item); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := ic.Delete(ctx, item.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := ic.Get(ctx, item.ID); err == nil {
			t.Fatal("expected cache miss after Delete")
		}
	})
}
