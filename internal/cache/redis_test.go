package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), srv.Addr())
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, srv
}

func TestSetAndExists(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	ok, err := c.Exists(ctx, "session:revoked:abc")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Fatal("key should not exist before Set")
	}

	if err := c.Set(ctx, "session:revoked:abc", "1", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	ok, err = c.Exists(ctx, "session:revoked:abc")
	if err != nil || !ok {
		t.Fatalf("Exists after Set: got %v, %v, want true", ok, err)
	}
}

func TestSetExpires(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	srv.FastForward(2 * time.Minute)

	ok, err := c.Exists(ctx, "k")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Error("key should have expired")
	}
}

func TestNewRedisCacheAcceptsURL(t *testing.T) {
	srv := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), "redis://"+srv.Addr()+"/0")
	if err != nil {
		t.Fatalf("NewRedisCache(url) failed: %v", err)
	}
	c.Close()
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	if _, err := NewRedisCache(context.Background(), addr); err == nil {
		t.Fatal("expected an error for an unreachable server")
	}
}
