package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"profilemap/config"
	"profilemap/internal/domain/directory"
	"profilemap/internal/domain/entity"
	domainerrors "profilemap/internal/domain/errors"
	mockUsecase "profilemap/internal/mocks/usecase"
	"profilemap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeStub serves a replaceable snapshot through a ProfileUsecase mock.
type storeStub struct {
	mu   sync.Mutex
	snap directory.Snapshot
}

func (s *storeStub) set(profiles ...*entity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = directory.Snapshot{Revision: s.snap.Revision + 1, Profiles: profiles}
}

func (s *storeStub) get() directory.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snap
}

func createTestDirectoryService(t *testing.T, views config.ViewsConfig, observer usecase.SessionObserver) (usecase.DirectoryUsecase, *storeStub) {
	store := &storeStub{}
	store.set(sampleStore()...)

	profiles := mockUsecase.NewMockProfileUsecase(t)
	profiles.EXPECT().Snapshot().RunAndReturn(store.get).Maybe()

	cfg := &config.Config{Views: views}
	srv := NewDirectoryService(DirectoryServiceParams{
		Profiles: profiles,
		Config:   cfg,
		Observer: observer,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, store
}

func defaultViews() config.ViewsConfig {
	return config.ViewsConfig{MaxSessions: 10, IdleTTL: time.Minute}
}

func viewIDs(view *usecase.ViewState) []string {
	out := make([]string, 0, len(view.Profiles))
	for _, p := range view.Profiles {
		out = append(out, p.ID)
	}

	return out
}

func TestDirectoryService_Derive(t *testing.T) {
	srv, _ := createTestDirectoryService(t, defaultViews(), nil)

	view := srv.Derive(usecase.DirectoryQuery{
		Filters:    directory.Filters{Search: "usa"},
		SelectedID: "1",
	})

	assert.Equal(t, uint64(1), view.Revision)
	require.Len(t, view.Profiles, 1)
	assert.Equal(t, "3", view.Profiles[0].ID)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "1", view.Selected.ID)
	assert.Equal(t, directory.ViewportFlyTo, view.Viewport.Mode)
}

func TestDirectoryService_DeriveUnknownSelection(t *testing.T) {
	srv, _ := createTestDirectoryService(t, defaultViews(), nil)

	view := srv.Derive(usecase.DirectoryQuery{SelectedID: "missing"})

	assert.Nil(t, view.Selected)
	assert.Empty(t, view.SelectedID)
	assert.Equal(t, directory.ViewportFitBounds, view.Viewport.Mode)
}

func TestDirectoryService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	srv, _ := createTestDirectoryService(t, defaultViews(), nil)

	opened, err := srv.OpenView(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, opened.ViewID)
	assert.Equal(t, []string{"1", "2", "3"}, viewIDs(opened))

	view, err := srv.SetSearch(ctx, opened.ViewID, "er")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, viewIDs(view))

	view, err = srv.SetLocationFilter(ctx, opened.ViewID, "india")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, viewIDs(view))

	view, err = srv.SetNameFilter(ctx, opened.ViewID, "michael")
	require.NoError(t, err)
	assert.Empty(t, view.Profiles)
	assert.Equal(t, directory.Filters{Search: "er", Location: "india", Name: "michael"}, view.Filters)

	view, err = srv.Select(ctx, opened.ViewID, "2")
	require.NoError(t, err)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "2", view.Selected.ID)
	assert.Equal(t, directory.ViewportFlyTo, view.Viewport.Mode)

	view, err = srv.GetView(ctx, opened.ViewID)
	require.NoError(t, err)
	assert.Equal(t, "2", view.SelectedID)

	require.NoError(t, srv.CloseView(ctx, opened.ViewID))
	require.NoError(t, srv.CloseView(ctx, opened.ViewID))

	_, err = srv.GetView(ctx, opened.ViewID)
	require.ErrorIs(t, err, domainerrors.ErrViewNotFound)
}

func TestDirectoryService_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	srv, _ := createTestDirectoryService(t, defaultViews(), nil)

	a, err := srv.OpenView(ctx)
	require.NoError(t, err)
	b, err := srv.OpenView(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.ViewID, b.ViewID)

	_, err = srv.SetNameFilter(ctx, a.ViewID, "olivia")
	require.NoError(t, err)

	view, err := srv.GetView(ctx, b.ViewID)
	require.NoError(t, err)
	assert.Len(t, view.Profiles, 3)
	assert.True(t, view.Filters.IsZero())
}

func TestDirectoryService_SelectionClearedWhenProfileRemoved(t *testing.T) {
	ctx := context.Background()
	srv, store := createTestDirectoryService(t, defaultViews(), nil)

	opened, err := srv.OpenView(ctx)
	require.NoError(t, err)
	_, err = srv.Select(ctx, opened.ViewID, "3")
	require.NoError(t, err)

	profiles := sampleStore()
	store.set(profiles[0], profiles[1])

	view, err := srv.GetView(ctx, opened.ViewID)
	require.NoError(t, err)
	assert.Nil(t, view.Selected)
	assert.Empty(t, view.SelectedID)
	assert.Equal(t, uint64(2), view.Revision)

	// The id coming back does not restore the old selection.
	store.set(profiles...)
	view, err = srv.GetView(ctx, opened.ViewID)
	require.NoError(t, err)
	assert.Nil(t, view.Selected)
}

func TestDirectoryService_SelectedProfileTracksEdits(t *testing.T) {
	ctx := context.Background()
	srv, store := createTestDirectoryService(t, defaultViews(), nil)

	opened, err := srv.OpenView(ctx)
	require.NoError(t, err)
	_, err = srv.Select(ctx, opened.ViewID, "2")
	require.NoError(t, err)

	profiles := sampleStore()
	moved := profiles[1].Clone()
	moved.Location = "Seattle, USA"
	moved.Coordinates = entity.Coordinates{Lat: 47.6062, Lng: -122.3321}
	store.set(profiles[0], moved, profiles[2])

	view, err := srv.GetView(ctx, opened.ViewID)
	require.NoError(t, err)
	require.NotNil(t, view.Viewport.Center)
	assert.Equal(t, moved.Coordinates, *view.Viewport.Center)
}

func TestDirectoryService_UnknownView(t *testing.T) {
	ctx := context.Background()
	srv, _ := createTestDirectoryService(t, defaultViews(), nil)

	_, err := srv.GetView(ctx, "nope")
	require.ErrorIs(t, err, domainerrors.ErrViewNotFound)
	_, err = srv.SetSearch(ctx, "nope", "x")
	require.ErrorIs(t, err, domainerrors.ErrViewNotFound)
	_, err = srv.Select(ctx, "nope", "1")
	require.ErrorIs(t, err, domainerrors.ErrViewNotFound)
}

func TestDirectoryService_IdleSessionsExpire(t *testing.T) {
	ctx := context.Background()
	srv, _ := createTestDirectoryService(t, config.ViewsConfig{MaxSessions: 10, IdleTTL: 50 * time.Millisecond}, nil)

	opened, err := srv.OpenView(ctx)
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)

	_, err = srv.GetView(ctx, opened.ViewID)
	require.ErrorIs(t, err, domainerrors.ErrViewNotFound)
}

func TestDirectoryService_OldestSessionEvictedAtCapacity(t *testing.T) {
	ctx := context.Background()
	observer := mockUsecase.NewMockSessionObserver(t)
	observer.EXPECT().SetViewSessions(mock.AnythingOfType("int")).Maybe()
	srv, _ := createTestDirectoryService(t, config.ViewsConfig{MaxSessions: 2, IdleTTL: time.Minute}, observer)

	first, err := srv.OpenView(ctx)
	require.NoError(t, err)
	second, err := srv.OpenView(ctx)
	require.NoError(t, err)
	third, err := srv.OpenView(ctx)
	require.NoError(t, err)

	_, err = srv.GetView(ctx, first.ViewID)
	require.ErrorIs(t, err, domainerrors.ErrViewNotFound)
	_, err = srv.GetView(ctx, second.ViewID)
	require.NoError(t, err)
	_, err = srv.GetView(ctx, third.ViewID)
	require.NoError(t, err)

	observer.AssertCalled(t, "SetViewSessions", 2)
}

func TestDirectoryService_ReportsOpenSessions(t *testing.T) {
	ctx := context.Background()
	observer := mockUsecase.NewMockSessionObserver(t)
	observer.EXPECT().SetViewSessions(1).Once()
	observer.EXPECT().SetViewSessions(2).Once()
	observer.EXPECT().SetViewSessions(1).Once()
	srv, _ := createTestDirectoryService(t, defaultViews(), observer)

	a, err := srv.OpenView(ctx)
	require.NoError(t, err)
	_, err = srv.OpenView(ctx)
	require.NoError(t, err)
	require.NoError(t, srv.CloseView(ctx, a.ViewID))
}

func TestViewportPolicyFromConfig(t *testing.T) {
	assert.Equal(t, directory.DefaultViewportPolicy(), ViewportPolicyFromConfig(nil))

	policy := ViewportPolicyFromConfig(&config.Config{Viewport: config.ViewportConfig{FlyToZoom: 9, PaddingPx: 12}})
	assert.Equal(t, 9, policy.FlyToZoom)
	assert.Equal(t, 12, policy.PaddingPx)
	assert.Equal(t, directory.DefaultViewportPolicy().FallbackZoom, policy.FallbackZoom)
}

func TestDirectoryService_ClosedSessionIsNotRevivedByLateTouch(t *testing.T) {
	ctx := context.Background()
	observer := mockUsecase.NewMockSessionObserver(t)
	observer.EXPECT().SetViewSessions(1).Once()
	observer.EXPECT().SetViewSessions(0).Once()
	profiles := mockUsecase.NewMockProfileUsecase(t)
	profiles.EXPECT().Snapshot().Return(directory.Snapshot{}).Maybe()
	srv := NewDirectoryService(DirectoryServiceParams{
		Profiles: profiles,
		Config:   &config.Config{Views: defaultViews()},
		Observer: observer,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*directoryService)

	opened, err := srv.OpenView(ctx)
	require.NoError(t, err)

	// A reader looked the session up, then the session was closed before it was re-added.
	session, ok := srv.sessions.Peek(opened.ViewID)
	require.True(t, ok)
	require.NoError(t, srv.CloseView(ctx, opened.ViewID))

	assert.False(t, srv.keepAlive(opened.ViewID, session))
	assert.False(t, srv.sessions.Contains(opened.ViewID))
	assert.Equal(t, int64(0), srv.open.Load())

	_, err = srv.GetView(ctx, opened.ViewID)
	require.ErrorIs(t, err, domainerrors.ErrViewNotFound)
}

func TestDirectoryService_TouchKeepsSessionCounted(t *testing.T) {
	ctx := context.Background()
	srv, _ := createTestDirectoryService(t, defaultViews(), nil)
	ds := srv.(*directoryService)

	opened, err := srv.OpenView(ctx)
	require.NoError(t, err)
	for range 3 {
		_, err = srv.SetSearch(ctx, opened.ViewID, "a")
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), ds.open.Load())
	require.NoError(t, srv.CloseView(ctx, opened.ViewID))
	assert.Equal(t, int64(0), ds.open.Load())
}
