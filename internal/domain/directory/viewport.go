package directory

import (
	"profilemap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ViewportMode tells the map renderer which directive to apply.
type ViewportMode string

const (
	// ViewportFitBounds fits the map to Bounds with PaddingPx on every side.
	ViewportFitBounds ViewportMode = "fit_bounds"
	// ViewportFlyTo moves the map to Center at Zoom, animated when Animation is set.
	ViewportFlyTo ViewportMode = "fly_to"
)

// Default policy values, matching what the map view has always used.
const (
	DefaultFlyToZoom     = 14
	DefaultFallbackZoom  = 4
	DefaultPaddingPx     = 50
	DefaultFlyDuration   = 1.5
	DefaultEaseLinearity = 0.25
)

// Bounds is a lat/lng bounding box.
type Bounds struct {
	Min entity.Coordinates `json:"min"`
	Max entity.Coordinates `json:"max"`
}

// BoundsFromOrb converts an orb.Bound (lng/lat ordered) into Bounds.
func BoundsFromOrb(b orb.Bound) Bounds {
	return Bounds{
		Min: entity.CoordinatesFromPoint(b.Min),
		Max: entity.CoordinatesFromPoint(b.Max),
	}
}

// Bound returns b as an orb.Bound.
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{Min: b.Min.Point(), Max: b.Max.Point()}
}

// Animation carries fly-to easing hints for the renderer.
type Animation struct {
	DurationSeconds float64 `json:"duration_seconds"`
	EaseLinearity   float64 `json:"ease_linearity"`
}

// Viewport is the derived map directive. Exactly one of Bounds or Center is set.
type Viewport struct {
	Mode      ViewportMode        `json:"mode"`
	Bounds    *Bounds             `json:"bounds,omitempty"`
	PaddingPx int                 `json:"padding_px,omitempty"`
	Center    *entity.Coordinates `json:"center,omitempty"`
	Zoom      int                 `json:"zoom,omitempty"`
	Animation *Animation          `json:"animation,omitempty"`
}

// ViewportPolicy decides between fitting all visible profiles and flying to the selection.
// It holds configuration only; Compute is a pure function of its inputs.
type ViewportPolicy struct {
	FlyToZoom     int
	FallbackZoom  int
	PaddingPx     int
	FlyDuration   float64
	EaseLinearity float64
}

// DefaultViewportPolicy returns the policy used when nothing is configured.
func DefaultViewportPolicy() ViewportPolicy {
	return ViewportPolicy{
		FlyToZoom:     DefaultFlyToZoom,
		FallbackZoom:  DefaultFallbackZoom,
		PaddingPx:     DefaultPaddingPx,
		FlyDuration:   DefaultFlyDuration,
		EaseLinearity: DefaultEaseLinearity,
	}
}

// Compute derives the viewport.
//
// A selected profile always wins, whether or not it is visible. Otherwise the
// map fits the bounds of every visible profile, and with nothing visible it
// falls back to the world center at a wide zoom, without animation.
func (p ViewportPolicy) Compute(visible []*entity.Profile, selected *entity.Profile) Viewport {
	if selected != nil {
		center := selected.Coordinates

		return Viewport{
			Mode:   ViewportFlyTo,
			Center: &center,
			Zoom:   p.FlyToZoom,
			Animation: &Animation{
				DurationSeconds: p.FlyDuration,
				EaseLinearity:   p.EaseLinearity,
			},
		}
	}

	points := make(orb.MultiPoint, 0, len(visible))
	for _, profile := range visible {
		if profile == nil {
			continue
		}
		points = append(points, profile.Coordinates.Point())
	}

	if len(points) > 0 {
		bounds := BoundsFromOrb(points.Bound())

		return Viewport{
			Mode:      ViewportFitBounds,
			Bounds:    &bounds,
			PaddingPx: p.PaddingPx,
		}
	}

	return Viewport{
		Mode:   ViewportFlyTo,
		Center: &entity.Coordinates{Lat: 0, Lng: 0},
		Zoom:   p.FallbackZoom,
	}
}
