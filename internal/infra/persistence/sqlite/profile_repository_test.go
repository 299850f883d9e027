package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"profilemap/internal/domain/repository"
	"profilemap/internal/infra/persistence/persistencetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *ProfileRepository {
	t.Helper()

	repo, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestProfileRepository_Contract(t *testing.T) {
	persistencetest.RunProfileRepositoryContract(t, func(t *testing.T) repository.ProfileRepository {
		return openTemp(t)
	})
}

func TestProfileRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profiles.db")

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	want := persistencetest.Profile("1", "Alisha", "Kerela, India", 10.850516, 76.27108)
	require.NoError(t, repo.Create(ctx, want))
	require.NoError(t, repo.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	profiles, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, want, profiles[0])
	assert.Equal(t, path, reopened.Path())
}

func TestProfileRepository_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := openTemp(t)

	require.NoError(t, repo.Create(ctx, persistencetest.Profile("1", "One", "Here", 1, 1)))
	require.NoError(t, repo.Create(ctx, persistencetest.Profile("2", "Two", "There", 2, 2)))
	require.NoError(t, repo.Delete(ctx, "2"))
	require.NoError(t, repo.Create(ctx, persistencetest.Profile("3", "Three", "Elsewhere", 3, 3)))
	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Create(ctx, persistencetest.Profile("4", "Four", "Far", 4, 4)))

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "3", profiles[0].ID)
	assert.Equal(t, "4", profiles[1].ID)
}

func TestProfileRepository_InitializedSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profiles.db")

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.MarkInitialized(ctx))
	require.NoError(t, repo.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	initialized, err := reopened.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)
}
