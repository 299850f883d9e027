package directory

import (
	"profilemap/internal/domain/entity"
)

// Snapshot is an immutable view of the profile store at one revision.
// Profiles are in insertion order and must not be mutated by readers.
type Snapshot struct {
	Revision uint64
	Profiles []*entity.Profile
}

// Find returns the profile with the given id, or nil.
func (s Snapshot) Find(id string) *entity.Profile {
	if id == "" {
		return nil
	}
	for _, p := range s.Profiles {
		if p != nil && p.ID == id {
			return p
		}
	}

	return nil
}

// Marker is one map pin for a visible profile.
type Marker struct {
	ProfileID   string             `json:"profile_id"`
	Name        string             `json:"name"`
	Location    string             `json:"location"`
	Intro       string             `json:"intro"`
	Coordinates entity.Coordinates `json:"coordinates"`
	Selected    bool               `json:"selected"`
}

// View is everything the presentation layer renders for one engine state.
type View struct {
	Revision   uint64            `json:"revision"`
	Filters    Filters           `json:"filters"`
	Profiles   []*entity.Profile `json:"profiles"`
	SelectedID string            `json:"selected_id,omitempty"`
	Selected   *entity.Profile   `json:"selected"`
	Markers    []Marker          `json:"markers"`
	Viewport   Viewport          `json:"viewport"`
}

// Engine holds filter and selection state for one client.
//
// Derived values are never cached: every call recomputes them from the
// snapshot passed in. Selection is independent of the filters; a selected
// profile that is filtered out stays selected. Only disappearance from the
// store clears it. Engine is not safe for concurrent use.
type Engine struct {
	filters    Filters
	selectedID string
	policy     ViewportPolicy
}

// NewEngine creates an engine with empty filters and no selection.
func NewEngine(policy ViewportPolicy) *Engine {
	return &Engine{policy: policy}
}

// Filters returns the current filter values.
func (e *Engine) Filters() Filters {
	return e.filters
}

// SetFilters replaces all three predicates at once.
func (e *Engine) SetFilters(f Filters) {
	e.filters = f
}

// SetSearch replaces the search predicate only.
func (e *Engine) SetSearch(text string) {
	e.filters.Search = text
}

// SetLocationFilter replaces the location predicate only.
func (e *Engine) SetLocationFilter(text string) {
	e.filters.Location = text
}

// SetNameFilter replaces the name predicate only.
func (e *Engine) SetNameFilter(text string) {
	e.filters.Name = text
}

// Select points the selection at id. An empty id clears it.
// The id is not checked against the store or the filters here.
func (e *Engine) Select(id string) {
	e.selectedID = id
}

// SelectedID returns the raw selection pointer.
func (e *Engine) SelectedID() (string, bool) {
	return e.selectedID, e.selectedID != ""
}

// Reconcile clears the selection if it no longer resolves in snap.
// It reports whether the selection was cleared.
func (e *Engine) Reconcile(snap Snapshot) bool {
	if e.selectedID == "" || snap.Find(e.selectedID) != nil {
		return false
	}
	e.selectedID = ""

	return true
}

// VisibleProfiles returns the profiles of snap passing every filter, in store order.
func (e *Engine) VisibleProfiles(snap Snapshot) []*entity.Profile {
	return e.filters.Apply(snap.Profiles)
}

// SelectedProfile returns the current store entry for the selection, or nil.
func (e *Engine) SelectedProfile(snap Snapshot) *entity.Profile {
	e.Reconcile(snap)

	return snap.Find(e.selectedID)
}

// Viewport returns the map directive for snap.
func (e *Engine) Viewport(snap Snapshot) Viewport {
	return e.policy.Compute(e.VisibleProfiles(snap), e.SelectedProfile(snap))
}

// Derive computes the full view for snap.
func (e *Engine) Derive(snap Snapshot) View {
	selected := e.SelectedProfile(snap)
	visible := e.VisibleProfiles(snap)

	markers := make([]Marker, 0, len(visible))
	for _, p := range visible {
		markers = append(markers, Marker{
			ProfileID:   p.ID,
			Name:        p.Name,
			Location:    p.Location,
			Intro:       p.Intro,
			Coordinates: p.Coordinates,
			Selected:    selected != nil && selected.ID == p.ID,
		})
	}

	return View{
		Revision:   snap.Revision,
		Filters:    e.filters,
		Profiles:   visible,
		SelectedID: e.selectedID,
		Selected:   selected,
		Markers:    markers,
		Viewport:   e.policy.Compute(visible, selected),
	}
}
