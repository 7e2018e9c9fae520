package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
)

type countingPairCache struct {
	MatrixPairCache
	gets, hits, sets int
}

func (c *countingPairCache) Get(k pairKey) (MatrixEdge, bool) {
	c.gets++
	v, ok := c.MatrixPairCache.Get(k)
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *countingPairCache) Set(k pairKey, v MatrixEdge, ttl time.Duration) {
	c.sets++
	c.MatrixPairCache.Set(k, v, ttl)
}

func TestHaversineMeters(t *testing.T) {
	a := MatrixPoint{Lat: 0, Lng: 0}
	assert.Equal(t, 0, HaversineMeters(a, a))
	assert.InDelta(t, 111195, HaversineMeters(a, MatrixPoint{Lat: 1, Lng: 0}), 1)

	paris := MatrixPoint{Lat: 48.8566, Lng: 2.3522}
	london := MatrixPoint{Lat: 51.5074, Lng: -0.1278}
	assert.InDelta(t, 343500, HaversineMeters(paris, london), 1500)
	assert.Equal(t, HaversineMeters(paris, london), HaversineMeters(london, paris))
}

func TestDestinationCenter(t *testing.T) {
	lat, lng := DestinationCenter("Paris, France")
	assert.GreaterOrEqual(t, lat, -50.0)
	assert.Less(t, lat, 50.0)
	assert.GreaterOrEqual(t, lng, -180.0)
	assert.Less(t, lng, 180.0)

	lat2, lng2 := DestinationCenter("  paris, france")
	assert.Equal(t, lat, lat2)
	assert.Equal(t, lng, lng2)
}

func TestBuildMap(t *testing.T) {
	cache := &countingPairCache{MatrixPairCache: NewInMemoryPairCache()}
	svc := NewMapService(NewActivityService(zap.NewNop()), cache, zap.NewNop())
	query := request_models.MapQuery{Destination: "Lisbon", Interests: []string{"food"}, Days: 1}

	view := svc.BuildMap(context.Background(), query)

	n := len(view.Markers)
	require.GreaterOrEqual(t, n, 4)
	require.Len(t, view.Distances, n)
	for _, m := range view.Markers {
		assert.InDelta(t, view.CenterLat, m.Lat, 0.1001)
		assert.InDelta(t, view.CenterLng, m.Lng, 0.1001)
		assert.Equal(t, 0, view.Distances[m.ID][m.ID])
		for _, other := range view.Markers {
			assert.Equal(t, view.Distances[m.ID][other.ID], view.Distances[other.ID][m.ID])
		}
	}
	assert.Equal(t, n*(n-1), cache.sets)
	assert.Equal(t, 0, cache.hits)

	again := svc.BuildMap(context.Background(), query)
	assert.Equal(t, view, again)
	assert.Equal(t, n*(n-1), cache.hits, "second build is served from the pair cache")
}

func TestBuildMap_EmptyDestination(t *testing.T) {
	svc := NewMapService(NewActivityService(zap.NewNop()), NewInMemoryPairCache(), zap.NewNop())
	view := svc.BuildMap(context.Background(), request_models.MapQuery{})
	assert.Empty(t, view.Markers)
	assert.Empty(t, view.Distances)
}

func TestInMemoryPairCache_Expiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := newInMemoryPairCache(10, func() time.Time { return now })

	cache.Set(pairKey{A: "a", B: "b"}, MatrixEdge{DistanceMeters: 10}, time.Minute)
	cache.Set(pairKey{A: "a", B: "c"}, MatrixEdge{DistanceMeters: 20}, time.Minute)
	cache.Set(pairKey{A: "b", B: "c"}, MatrixEdge{DistanceMeters: 30}, time.Hour)

	edge, ok := cache.Get(pairKey{A: "a", B: "b"})
	require.True(t, ok)
	assert.Equal(t, 10, edge.DistanceMeters)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Get(pairKey{A: "a", B: "b"})
	assert.False(t, ok)
	assert.Equal(t, 2, cache.Len(), "expired pair is dropped on read")

	assert.Equal(t, 1, cache.Purge())
	assert.Equal(t, 1, cache.Len())
	_, ok = cache.Get(pairKey{A: "b", B: "c"})
	assert.True(t, ok)
}

func TestInMemoryPairCache_Capacity(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := newInMemoryPairCache(3, func() time.Time { return now })

	cache.Set(pairKey{A: "old", B: "x"}, MatrixEdge{DistanceMeters: 1}, time.Second)
	cache.Set(pairKey{A: "a", B: "b"}, MatrixEdge{DistanceMeters: 2}, time.Hour)
	cache.Set(pairKey{A: "a", B: "c"}, MatrixEdge{DistanceMeters: 3}, time.Hour)

	now = now.Add(time.Minute)
	cache.Set(pairKey{A: "b", B: "c"}, MatrixEdge{DistanceMeters: 4}, time.Hour)
	assert.Equal(t, 3, cache.Len())
	_, ok := cache.Get(pairKey{A: "a", B: "b"})
	assert.True(t, ok, "expired pairs go first when full")

	for i := 0; i < 10; i++ {
		cache.Set(pairKey{A: "n", B: string(rune('d' + i))}, MatrixEdge{DistanceMeters: i}, time.Hour)
		assert.LessOrEqual(t, cache.Len(), 3)
	}
	edge, ok := cache.Get(pairKey{A: "n", B: "m"})
	require.True(t, ok)
	assert.Equal(t, 9, edge.DistanceMeters)
}

func TestBuildMap_ManyDestinationsStayBounded(t *testing.T) {
	cache := newInMemoryPairCache(5000, time.Now)
	svc := NewMapService(NewActivityService(zap.NewNop()), cache, zap.NewNop())

	for i := 0; i < 20; i++ {
		view := svc.BuildMap(context.Background(), request_models.MapQuery{
			Destination: fmt.Sprintf("City %d", i),
			Days:        12,
		})
		require.NotEmpty(t, view.Markers)
		assert.LessOrEqual(t, cache.Len(), 5000)
	}
}
