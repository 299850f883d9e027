// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Coordinates is a geocoded latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the pair lies inside the WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Point returns the coordinates as an orb.Point, which is ordered [lng, lat].
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// CoordinatesFromPoint is the inverse of Coordinates.Point.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Lat: p.Lat(), Lng: p.Lon()}
}

// Profile is a directory entry for one person.
// Coordinates always hold the resolution of Location as of the last save.
type Profile struct {
	ID          string      `json:"id"`                // Opaque id minted by the store, never reused.
	Name        string      `json:"name"`              // Display name, non-empty.
	Picture     string      `json:"picture,omitempty"` // Optional photo URL.
	Location    string      `json:"location"`          // Free-text location, also the geocoding input.
	Intro       string      `json:"intro"`             // Free-text introduction.
	Coordinates Coordinates `json:"coordinates"`       // Resolved from Location.
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Clone returns a copy that shares nothing with p.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cloned := *p

	return &cloned
}
