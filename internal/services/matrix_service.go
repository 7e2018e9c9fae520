package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type MatrixPoint struct {
	ID  string
	Lat float64
	Lng float64
}

type MatrixEdge struct {
	DistanceMeters int
}

type DistanceMatrix map[string]map[string]MatrixEdge

// --------- pair cache (A,B) ---------

type pairKey struct {
	A string
	B string
}

type matrixPairCacheEntry struct {
	Edge      MatrixEdge
	ExpiresAt time.Time
}

type MatrixPairCache interface {
	Get(k pairKey) (MatrixEdge, bool)
	Set(k pairKey, v MatrixEdge, ttl time.Duration)
}

// maxPairCacheEntries bounds the in-process pair cache; one 50-marker map
// fills 2450 entries.
const maxPairCacheEntries = 100000

// InMemoryPairCache drops expired pairs on read and on Purge, and never holds
// more than its capacity.
type InMemoryPairCache struct {
	mu       sync.Mutex
	store    map[pairKey]matrixPairCacheEntry
	capacity int
	now      func() time.Time
}

func NewInMemoryPairCache() *InMemoryPairCache {
	return newInMemoryPairCache(maxPairCacheEntries, time.Now)
}

func newInMemoryPairCache(capacity int, now func() time.Time) *InMemoryPairCache {
	return &InMemoryPairCache{
		store:    make(map[pairKey]matrixPairCacheEntry),
		capacity: capacity,
		now:      now,
	}
}

func (c *InMemoryPairCache) Get(k pairKey) (MatrixEdge, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.store[k]
	if !ok {
		return MatrixEdge{}, false
	}
	if c.now().After(it.ExpiresAt) {
		delete(c.store, k)
		return MatrixEdge{}, false
	}
	return it.Edge, true
}

func (c *InMemoryPairCache) Set(k pairKey, v MatrixEdge, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if _, ok := c.store[k]; !ok && len(c.store) >= c.capacity {
		c.purgeLocked(now)
		// still full: evict arbitrary pairs, they are cheap to recompute
		for old := range c.store {
			if len(c.store) < c.capacity {
				break
			}
			delete(c.store, old)
		}
	}
	c.store[k] = matrixPairCacheEntry{Edge: v, ExpiresAt: now.Add(ttl)}
}

// Purge removes expired pairs and reports how many were dropped.
func (c *InMemoryPairCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purgeLocked(c.now())
}

func (c *InMemoryPairCache) purgeLocked(now time.Time) int {
	n := 0
	for k, it := range c.store {
		if now.After(it.ExpiresAt) {
			delete(c.store, k)
			n++
		}
	}
	return n
}

func (c *InMemoryPairCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store)
}

// -------------- map / location generator ---------------

type MapServiceInterface interface {
	BuildMap(ctx context.Context, query request_models.MapQuery) response_models.MapView
	ComputeDistances(ctx context.Context, points []MatrixPoint) DistanceMatrix
}

type MapService struct {
	activities ActivityServiceInterface
	cache      MatrixPairCache
	ttl        time.Duration
	logger     *zap.Logger
}

func NewMapService(activities ActivityServiceInterface, cache MatrixPairCache, logger *zap.Logger) MapServiceInterface {
	return &MapService{
		activities: activities,
		cache:      cache,
		ttl:        24 * time.Hour,
		logger:     logger,
	}
}

const earthRadiusMeters = 6371000.0

// HaversineMeters is the great-circle distance between two points.
func HaversineMeters(a, b MatrixPoint) int {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return int(2*earthRadiusMeters*math.Asin(math.Min(1, math.Sqrt(h))) + 0.5)
}

// DestinationCenter derives stable coordinates for a destination: latitude
// in [-50, 50), longitude in [-180, 180).
func DestinationCenter(destination string) (float64, float64) {
	key := strings.ToLower(strings.TrimSpace(destination))
	lat := -50 + float64(utils.HashString(key)%10000)/100
	lng := -180 + float64(utils.HashString(key+"-lng")%36000)/100
	return lat, lng
}

func (m *MapService) BuildMap(ctx context.Context, query request_models.MapQuery) response_models.MapView {
	destination := strings.TrimSpace(query.Destination)
	view := response_models.MapView{
		Destination: destination,
		Markers:     []response_models.MapMarker{},
		Distances:   map[string]map[string]int{},
	}
	if destination == "" {
		return view
	}
	view.CenterLat, view.CenterLng = DestinationCenter(destination)

	days := query.Days
	if days <= 0 {
		days = 1
	}
	activities := m.activities.SearchActivities(ctx, request_models.ActivityQuery{
		Destination:      destination,
		Interests:        query.Interests,
		TripDurationDays: days,
	})

	seed := utils.HashString(strings.ToLower(destination))
	points := make([]MatrixPoint, 0, len(activities))
	for i, a := range activities {
		// offsets stay within roughly ±0.1° of the centre
		lat := roundTo(view.CenterLat+float64((seed+i*53)%200-100)/1000, 6)
		lng := roundTo(view.CenterLng+float64((seed+i*59)%200-100)/1000, 6)

		view.Markers = append(view.Markers, response_models.MapMarker{
			ID:       a.ID,
			Name:     a.Name,
			Category: a.Category,
			Lat:      lat,
			Lng:      lng,
		})
		points = append(points, MatrixPoint{ID: a.ID, Lat: lat, Lng: lng})
	}

	for from, row := range m.ComputeDistances(ctx, points) {
		view.Distances[from] = make(map[string]int, len(row))
		for to, edge := range row {
			view.Distances[from][to] = edge.DistanceMeters
		}
	}
	return view
}

func (m *MapService) ComputeDistances(_ context.Context, points []MatrixPoint) DistanceMatrix {
	n := len(points)
	mat := make(DistanceMatrix, n)
	for _, p := range points {
		mat[p.ID] = make(map[string]MatrixEdge, n)
	}

	hits := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				mat[points[i].ID][points[j].ID] = MatrixEdge{DistanceMeters: 0}
				continue
			}
			k := pairKey{A: pointKey(points[i]), B: pointKey(points[j])}
			if v, ok := m.cache.Get(k); ok {
				mat[points[i].ID][points[j].ID] = v
				hits++
				continue
			}
			edge := MatrixEdge{DistanceMeters: HaversineMeters(points[i], points[j])}
			mat[points[i].ID][points[j].ID] = edge
			m.cache.Set(k, edge, m.ttl)
		}
	}

	m.logger.Debug("distance matrix computed", zap.Int("points", n), zap.Int("cache_hits", hits))
	return mat
}

// pointKey ties cached distances to coordinates, not ids, so regenerated
// markers never read a stale edge.
func pointKey(p MatrixPoint) string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}
