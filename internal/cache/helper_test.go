package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// withMiniredis swaps the package client for an in-process Redis and restores
// the previous client afterwards.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	prev := GetClient()
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(prev) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	var missing cachedThing
	found, err := GetJSON(ctx, "thing:1", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "thing:1", cachedThing{ID: 1, Name: "alpha"}, time.Minute))

	var got cachedThing
	found, err = GetJSON(ctx, "thing:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cachedThing{ID: 1, Name: "alpha"}, got)
}

func TestGetSetJSON_NilClientIsNoop(t *testing.T) {
	prev := GetClient()
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "thing:1", cachedThing{ID: 1}, time.Minute))

	var got cachedThing
	found, err := GetJSON(ctx, "thing:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			*dest = cachedThing{ID: 7, Name: "fetched"}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "thing:7", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache.
	var second cachedThing
	require.NoError(t, Aside(ctx, "thing:7", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)

	// After the TTL elapses the fetch runs again.
	mr.FastForward(2 * time.Minute)
	var third cachedThing
	require.NoError(t, Aside(ctx, "thing:7", &third, time.Minute, fetch(&third)))
	assert.Equal(t, 2, fetches)
}

func TestInvalidate(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(3), cachedThing{ID: 3}, time.Minute))
	InvalidateUser(ctx, 3)

	var got cachedThing
	found, err := GetJSON(ctx, UserKey(3), &got)
	require.NoError(t, err)
	assert.False(t, found)
}
