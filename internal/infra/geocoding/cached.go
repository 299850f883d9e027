package geocoding

import (
	"context"
	"time"

	"profilemap/internal/domain/entity"
	"profilemap/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedGeocoder keeps successful lookups in an expiring LRU.
// Failures are never cached so a transient outage is retried on the next call.
type cachedGeocoder struct {
	next  service.Geocoder
	cache *expirable.LRU[string, entity.Coordinates]
	hit   func()
}

// NewCachedGeocoder wraps next with a cache of size entries living for ttl.
// onHit, if non-nil, is called for every answer served from the cache.
func NewCachedGeocoder(next service.Geocoder, size int, ttl time.Duration, onHit func()) service.Geocoder {
	if onHit == nil {
		onHit = func() {}
	}

	return &cachedGeocoder{
		next:  next,
		cache: expirable.NewLRU[string, entity.Coordinates](size, nil, ttl),
		hit:   onHit,
	}
}

func (g *cachedGeocoder) Geocode(ctx context.Context, location string) (entity.Coordinates, error) {
	if coords, ok := g.cache.Get(location); ok {
		g.hit()

		return coords, nil
	}

	coords, err := g.next.Geocode(ctx, location)
	if err != nil {
		return entity.Coordinates{}, err
	}
	g.cache.Add(location, coords)

	return coords, nil
}
