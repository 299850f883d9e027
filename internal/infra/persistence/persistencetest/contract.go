// Package persistencetest holds the behavior every ProfileRepository backend must share.
package persistencetest

import (
	"context"
	"testing"
	"time"

	"profilemap/internal/domain/entity"
	"profilemap/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Profile builds a fully populated profile with UTC timestamps so that every
// backend round-trips it exactly.
func Profile(id, name, location string, lat, lng float64) *entity.Profile {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	return &entity.Profile{
		ID:          id,
		Name:        name,
		Picture:     "https://images.example.com/" + id + ".jpg",
		Location:    location,
		Intro:       "Intro of " + name,
		Coordinates: entity.Coordinates{Lat: lat, Lng: lng},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// RunProfileRepositoryContract exercises newRepo against the ProfileRepository contract.
// newRepo must return an empty repository on every call.
func RunProfileRepositoryContract(t *testing.T, newRepo func(t *testing.T) repository.ProfileRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty list", func(t *testing.T) {
		repo := newRepo(t)

		profiles, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("create preserves insertion order and fields", func(t *testing.T) {
		repo := newRepo(t)
		a := Profile("b-first", "Alisha", "Kerela, India", 10.850516, 76.27108)
		b := Profile("a-second", "Michael Chen", "San Francisco", 37.7749, -122.4194)
		b.Picture = ""

		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		profiles, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, a, profiles[0])
		assert.Equal(t, b, profiles[1])
	})

	t.Run("update keeps position", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, Profile("1", "One", "Here", 1, 1)))
		require.NoError(t, repo.Create(ctx, Profile("2", "Two", "There", 2, 2)))
		require.NoError(t, repo.Create(ctx, Profile("3", "Three", "Elsewhere", 3, 3)))

		edited := Profile("2", "Two Edited", "Chicago, USA", 41.8781, -87.6298)
		edited.UpdatedAt = edited.UpdatedAt.Add(time.Hour)
		require.NoError(t, repo.Update(ctx, edited))

		profiles, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 3)
		assert.Equal(t, []string{"1", "2", "3"}, []string{profiles[0].ID, profiles[1].ID, profiles[2].ID})
		assert.Equal(t, edited, profiles[1])
	})

	t.Run("update unknown id", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.Update(ctx, Profile("missing", "x", "y", 0, 0))
		require.ErrorIs(t, err, repository.ErrProfileNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, Profile("1", "One", "Here", 1, 1)))
		require.NoError(t, repo.Create(ctx, Profile("2", "Two", "There", 2, 2)))

		require.NoError(t, repo.Delete(ctx, "1"))
		require.ErrorIs(t, repo.Delete(ctx, "1"), repository.ErrProfileNotFound)

		profiles, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "2", profiles[0].ID)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, Profile("1", "One", "Here", 1, 1)))

		require.Error(t, repo.Create(ctx, Profile("1", "Again", "Here", 1, 1)))
	})

	t.Run("returned profiles are not aliased", func(t *testing.T) {
		repo := newRepo(t)
		p := Profile("1", "One", "Here", 1, 1)
		require.NoError(t, repo.Create(ctx, p))
		p.Name = "mutated after create"

		profiles, err := repo.List(ctx)
		require.NoError(t, err)
		profiles[0].Name = "mutated after list"

		again, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "One", again[0].Name)
	})
	t.Run("initialized marker", func(t *testing.T) {
		repo := newRepo(t)

		initialized, err := repo.Initialized(ctx)
		require.NoError(t, err)
		assert.False(t, initialized)

		require.NoError(t, repo.MarkInitialized(ctx))
		require.NoError(t, repo.MarkInitialized(ctx))

		initialized, err = repo.Initialized(ctx)
		require.NoError(t, err)
		assert.True(t, initialized)

		profiles, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("marker survives deleting every profile", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.MarkInitialized(ctx))
		require.NoError(t, repo.Create(ctx, Profile("1", "One", "Here", 1, 1)))
		require.NoError(t, repo.Delete(ctx, "1"))

		initialized, err := repo.Initialized(ctx)
		require.NoError(t, err)
		assert.True(t, initialized)
	})
}
