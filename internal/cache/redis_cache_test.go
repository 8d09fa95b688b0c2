package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCache(rdb), mr
}

func TestSetGetJSON(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.SetJSON(ctx, "resume_text:k1", "ten years of Go", time.Hour); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var got string
	hit, err := c.GetJSON(ctx, "resume_text:k1", &got)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if !hit || got != "ten years of Go" {
		t.Errorf("hit=%v got=%q", hit, got)
	}
}

func TestGetJSONMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var got string
	hit, err := c.GetJSON(context.Background(), "absent", &got)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if hit {
		t.Error("unexpected hit")
	}
}

func TestGetJSONExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.SetJSON(ctx, "k", "v", time.Minute); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(2 * time.Minute)

	var got string
	hit, _ := c.GetJSON(ctx, "k", &got)
	if hit {
		t.Error("value survived past its ttl")
	}
}

func TestGetJSONCorruptValueIsMiss(t *testing.T) {
	c, mr := newTestCache(t)

	mr.Set("bad", "{not json")
	var got map[string]string
	hit, err := c.GetJSON(context.Background(), "bad", &got)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if hit {
		t.Error("corrupt value reported as hit")
	}
	if mr.Exists("bad") {
		t.Error("corrupt value not evicted")
	}
}

func TestDel(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.SetJSON(ctx, "k", "v", time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if mr.Exists("k") {
		t.Error("key survived Del")
	}
	// deleting nothing is a no-op
	if err := c.Del(ctx); err != nil {
		t.Errorf("Del(): %v", err)
	}
}
