package directory

import (
	"testing"

	"profilemap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func sampleProfiles() []*entity.Profile {
	return []*entity.Profile{
		{ID: "1", Name: "Alisha", Location: "Kerela, India", Intro: "Product designer", Coordinates: entity.Coordinates{Lat: 10.850516, Lng: 76.27108}},
		{ID: "2", Name: "Michael Chen", Location: "San Francisco", Intro: "Full stack developer", Coordinates: entity.Coordinates{Lat: 37.7749, Lng: -122.4194}},
		{ID: "3", Name: "Olivia Rodriguez", Location: "Chicago, USA", Intro: "Marketing specialist", Coordinates: entity.Coordinates{Lat: 41.8781, Lng: -87.6298}},
		{ID: "4", Name: "David Kim", Location: "Seattle, USA", Intro: "", Coordinates: entity.Coordinates{Lat: 47.6062, Lng: -122.3321}},
	}
}

func ids(profiles []*entity.Profile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}

	return out
}

func TestFilters_Apply(t *testing.T) {
	profiles := sampleProfiles()

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{name: "empty filters match all", filters: Filters{}, want: []string{"1", "2", "3", "4"}},
		{name: "search on name is case-insensitive", filters: Filters{Search: "alisha"}, want: []string{"1"}},
		{name: "search on location", filters: Filters{Search: "usa"}, want: []string{"3", "4"}},
		{name: "search on intro", filters: Filters{Search: "DEVELOPER"}, want: []string{"2"}},
		{name: "location filter ignores name and intro", filters: Filters{Location: "designer"}, want: []string{}},
		{name: "location filter substring", filters: Filters{Location: "seattle"}, want: []string{"4"}},
		{name: "name filter ignores location", filters: Filters{Name: "chicago"}, want: []string{}},
		{name: "name filter substring", filters: Filters{Name: "KIM"}, want: []string{"4"}},
		{name: "predicates are ANDed", filters: Filters{Search: "usa", Name: "olivia"}, want: []string{"3"}},
		{name: "all three must hold", filters: Filters{Search: "usa", Location: "chicago", Name: "david"}, want: []string{}},
		{name: "missing intro never matches non-empty search on intro only", filters: Filters{Search: "engineer"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filters.Apply(profiles)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// Every triple built from a small alphabet must select exactly the profiles for
// which each single predicate holds on its own.
func TestFilters_ApplyEqualsConjunctionOfPredicates(t *testing.T) {
	profiles := sampleProfiles()
	terms := []string{"", "a", "USA", "chen", "kerela", "x", " "}

	for _, search := range terms {
		for _, location := range terms {
			for _, name := range terms {
				f := Filters{Search: search, Location: location, Name: name}

				var want []string
				for _, p := range profiles {
					if (Filters{Search: search}).Matches(p) &&
						(Filters{Location: location}).Matches(p) &&
						(Filters{Name: name}).Matches(p) {
						want = append(want, p.ID)
					}
				}

				got := ids(f.Apply(profiles))
				if len(want) == 0 {
					assert.Empty(t, got, "filters %+v", f)
				} else {
					assert.Equal(t, want, got, "filters %+v", f)
				}
			}
		}
	}
}

func TestFilters_MatchesNil(t *testing.T) {
	assert.False(t, Filters{}.Matches(nil))
}

func TestFilters_IsZero(t *testing.T) {
	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{Name: "a"}.IsZero())
}

func TestLocations_DistinctInFirstSeenOrder(t *testing.T) {
	profiles := append(sampleProfiles(),
		&entity.Profile{ID: "5", Name: "Ravi", Location: "Kerela, India"},
		&entity.Profile{ID: "6", Name: "Nobody"},
	)

	assert.Equal(t,
		[]string{"Kerela, India", "San Francisco", "Chicago, USA", "Seattle, USA"},
		Locations(profiles),
	)
}
