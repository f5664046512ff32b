package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type payload struct {
	Name  string `json:"name"`
	Power int    `json:"power"`
}

func testCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(client, zap.NewNop())
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	if err := c.SetJSON(ctx, "gen:g1:id1", payload{Name: "Forest Spirit", Power: 3}, time.Minute); err != nil {
		t.Fatalf("set error: %v", err)
	}

	var got payload
	found, err := c.GetJSON(ctx, "gen:g1:id1", &got)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if !found || got.Name != "Forest Spirit" || got.Power != 3 {
		t.Fatalf("unexpected cached value: found=%v got=%#v", found, got)
	}
}

func TestCache_MissIsNotAnError(t *testing.T) {
	c := testCache(t)
	var got payload
	found, err := c.GetJSON(context.Background(), "gen:g1:absent", &got)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if found {
		t.Fatal("expected miss for absent key")
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()
	if err := c.SetJSON(ctx, "k", payload{Name: "x"}, time.Minute); err != nil {
		t.Fatalf("set error: %v", err)
	}
	c.Invalidate(ctx, "k")
	var got payload
	found, _ := c.GetJSON(ctx, "k", &got)
	if found {
		t.Fatal("expected key to be gone after invalidation")
	}
}

func TestCache_NilClientDegrades(t *testing.T) {
	c := &Cache{log: zap.NewNop()}
	ctx := context.Background()
	if err := c.SetJSON(ctx, "k", payload{}, time.Minute); err != nil {
		t.Fatalf("nil-client set must be a no-op, got %v", err)
	}
	var got payload
	found, err := c.GetJSON(ctx, "k", &got)
	if err != nil || found {
		t.Fatalf("nil-client get must miss silently, found=%v err=%v", found, err)
	}
	c.Invalidate(ctx, "k")
}
