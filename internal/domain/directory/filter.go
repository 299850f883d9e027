// Package directory derives what a client sees from the profile collection:
// the visible subset under the active filters, the selected profile and the
// map viewport. Everything here is synchronous and free of I/O.
package directory

import (
	"strings"

	"profilemap/internal/domain/entity"
)

// Filters holds the three independent predicates. An empty field matches everything.
type Filters struct {
	Search   string `json:"search"`      // name OR location OR intro
	Location string `json:"location"`    // location only
	Name     string `json:"name_filter"` // name only
}

// IsZero reports whether no predicate is active.
func (f Filters) IsZero() bool {
	return f.Search == "" && f.Location == "" && f.Name == ""
}

// Matches reports whether p passes all three predicates.
func (f Filters) Matches(p *entity.Profile) bool {
	if p == nil {
		return false
	}

	return f.matchesSearch(p) && matchField(p.Location, f.Location) && matchField(p.Name, f.Name)
}

func (f Filters) matchesSearch(p *entity.Profile) bool {
	if f.Search == "" {
		return true
	}

	return containsFold(p.Name, f.Search) ||
		containsFold(p.Location, f.Search) ||
		containsFold(p.Intro, f.Search)
}

// Apply returns the profiles passing every predicate, in the order given.
func (f Filters) Apply(profiles []*entity.Profile) []*entity.Profile {
	visible := make([]*entity.Profile, 0, len(profiles))
	for _, p := range profiles {
		if f.Matches(p) {
			visible = append(visible, p)
		}
	}

	return visible
}

func matchField(field, filter string) bool {
	if filter == "" {
		return true
	}

	return containsFold(field, filter)
}

// containsFold is plain lowercase containment: no collation, no word boundaries.
// An empty field never contains a non-empty filter.
func containsFold(field, filter string) bool {
	if field == "" {
		return false
	}

	return strings.Contains(strings.ToLower(field), strings.ToLower(filter))
}

// Locations lists the distinct location strings in first-seen order.
// It feeds the location filter control.
func Locations(profiles []*entity.Profile) []string {
	seen := make(map[string]struct{}, len(profiles))
	locations := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p == nil || p.Location == "" {
			continue
		}
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		locations = append(locations, p.Location)
	}

	return locations
}
