package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"profilemap/internal/domain/constants"
	"profilemap/internal/domain/entity"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/domain/repository"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"
	"profilemap/internal/infra/persistence/memory"
	mockRepo "profilemap/internal/mocks/repository"
	mockService "profilemap/internal/mocks/service"
	mockUsecase "profilemap/internal/mocks/usecase"
	"profilemap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   *profileService
	repo      *mockRepo.MockProfileRepository
	geocoder  *mockService.MockGeocoder
	publisher *mockService.MockEventPublisher
}

func createTestProfileService(t *testing.T, seeds ...*entity.Profile) profileServiceFixtures {
	repo := mockRepo.NewMockProfileRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	publisher := mockService.NewMockEventPublisher(t)

	srv := newProfileService(ProfileServiceParams{
		Repo:      repo,
		Geocoder:  geocoder,
		Publisher: publisher,
		Seeds:     seeds,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	srv.now = func() time.Time { return fixedNow }
	next := 0
	srv.newID = func() string {
		next++

		return fmt.Sprintf("id-%d", next)
	}

	return profileServiceFixtures{
		service:   srv,
		repo:      repo,
		geocoder:  geocoder,
		publisher: publisher,
	}
}

func sampleStore() []*entity.Profile {
	return []*entity.Profile{
		{ID: "1", Name: "Alisha", Location: "Kerela, India", Intro: "Product designer", Coordinates: entity.Coordinates{Lat: 10.850516, Lng: 76.27108}},
		{ID: "2", Name: "Michael Chen", Location: "San Francisco", Intro: "Full stack developer", Coordinates: entity.Coordinates{Lat: 37.7749, Lng: -122.4194}},
		{ID: "3", Name: "Olivia Rodriguez", Location: "Chicago, USA", Intro: "Marketing specialist", Coordinates: entity.Coordinates{Lat: 41.8781, Lng: -87.6298}},
	}
}

// loaded returns fixtures whose store already holds sampleStore.
func loaded(t *testing.T) profileServiceFixtures {
	fx := createTestProfileService(t)
	fx.repo.EXPECT().List(mock.Anything).Return(sampleStore(), nil).Once()
	fx.repo.EXPECT().Initialized(mock.Anything).Return(true, nil).Once()
	require.NoError(t, fx.service.Load(context.Background()))
	fx.publisher.EXPECT().PublishProfileEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return fx
}

func ptr[T any](v T) *T {
	return &v
}

func TestProfileService_Load(t *testing.T) {
	t.Run("seeds a new repository", func(t *testing.T) {
		seeds := sampleStore()
		fx := createTestProfileService(t, seeds...)
		fx.repo.EXPECT().List(mock.Anything).Return(nil, nil).Once()
		fx.repo.EXPECT().Initialized(mock.Anything).Return(false, nil).Once()
		for _, s := range seeds {
			fx.repo.EXPECT().Create(mock.Anything, s).Return(nil).Once()
		}
		fx.repo.EXPECT().MarkInitialized(mock.Anything).Return(nil).Once()

		require.NoError(t, fx.service.Load(context.Background()))
		assert.Len(t, fx.service.All(), 3)
		assert.Equal(t, uint64(1), fx.service.Snapshot().Revision)
	})

	t.Run("initialized empty repository stays empty", func(t *testing.T) {
		fx := createTestProfileService(t, sampleStore()...)
		fx.repo.EXPECT().List(mock.Anything).Return(nil, nil).Once()
		fx.repo.EXPECT().Initialized(mock.Anything).Return(true, nil).Once()

		require.NoError(t, fx.service.Load(context.Background()))
		assert.Empty(t, fx.service.All())
		fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unmarked repository with data is marked, not seeded", func(t *testing.T) {
		fx := createTestProfileService(t, sampleStore()...)
		fx.repo.EXPECT().List(mock.Anything).Return(sampleStore()[:1], nil).Once()
		fx.repo.EXPECT().Initialized(mock.Anything).Return(false, nil).Once()
		fx.repo.EXPECT().MarkInitialized(mock.Anything).Return(nil).Once()

		require.NoError(t, fx.service.Load(context.Background()))
		assert.Len(t, fx.service.All(), 1)
		fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.repo.EXPECT().List(mock.Anything).Return(nil, errors.New("disk on fire")).Once()

		require.Error(t, fx.service.Load(context.Background()))
	})

	t.Run("marker failure", func(t *testing.T) {
		fx := createTestProfileService(t, sampleStore()...)
		fx.repo.EXPECT().List(mock.Anything).Return(nil, nil).Once()
		fx.repo.EXPECT().Initialized(mock.Anything).Return(false, errors.New("disk on fire")).Once()

		require.Error(t, fx.service.Load(context.Background()))
		assert.Empty(t, fx.service.All())
	})
}

func TestProfileService_LoadAfterRemovingEverythingDoesNotReseed(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProfileRepository()
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishProfileEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	params := ProfileServiceParams{
		Repo:      repo,
		Geocoder:  mockService.NewMockGeocoder(t),
		Publisher: publisher,
		Seeds:     sampleStore(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	first := newProfileService(params)
	require.NoError(t, first.Load(ctx))
	require.Len(t, first.All(), 3)
	for _, p := range first.All() {
		require.NoError(t, first.Remove(ctx, p.ID))
	}

	restarted := newProfileService(params)
	require.NoError(t, restarted.Load(ctx))

	assert.Empty(t, restarted.All())
	assert.Nil(t, restarted.Snapshot().Find("1"), "a removed id must not come back")
}

func TestProfileService_Add_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	coords := entity.Coordinates{Lat: 10.850516, Lng: 76.27108}

	fx.geocoder.EXPECT().Geocode(ctx, "Kerela, India").Return(coords, nil).Once()
	fx.repo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.Name == "Alisha" && p.Location == "Kerela, India" && p.Coordinates == coords
	})).Return(nil).Once()
	fx.publisher.EXPECT().PublishProfileEvent(ctx, mock.MatchedBy(func(e *service.ProfileEvent) bool {
		return e.Type == constants.ProfileEventCreated && e.Revision == 1 && e.Profile != nil
	})).Return(nil).Once()

	profile, err := fx.service.Add(ctx, &usecase.AddProfileInput{
		Name:     "  Alisha ",
		Location: "Kerela, India",
		Intro:    "Product designer",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "Alisha", profile.Name)
	assert.Equal(t, coords, profile.Coordinates)
	assert.Equal(t, fixedNow, profile.CreatedAt)

	all := fx.service.All()
	require.Len(t, all, 1)
	assert.Equal(t, profile, all[0])
}

func TestProfileService_Add_AppendsWithFreshIDs(t *testing.T) {
	fx := loaded(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().Geocode(ctx, mock.Anything).Return(entity.Coordinates{Lat: 1, Lng: 1}, nil).Times(2)
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(2)

	a, err := fx.service.Add(ctx, &usecase.AddProfileInput{Name: "A", Location: "Here"})
	require.NoError(t, err)
	b, err := fx.service.Add(ctx, &usecase.AddProfileInput{Name: "B", Location: "There"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	all := fx.service.All()
	require.Len(t, all, 5)
	assert.Equal(t, a.ID, all[3].ID)
	assert.Equal(t, b.ID, all[4].ID)
}

func TestProfileService_Add_Failures(t *testing.T) {
	tests := []struct {
		name      string
		input     *usecase.AddProfileInput
		geocodeFn func(fx profileServiceFixtures)
		wantErr   error
	}{
		{
			name:    "blank name never reaches the gateway",
			input:   &usecase.AddProfileInput{Name: "   ", Location: "Seattle, USA"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "blank location never reaches the gateway",
			input:   &usecase.AddProfileInput{Name: "David", Location: ""},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "nil input",
			input:   nil,
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "location not found",
			input: &usecase.AddProfileInput{Name: "X", Location: "Atlantis"},
			geocodeFn: func(fx profileServiceFixtures) {
				fx.geocoder.EXPECT().Geocode(mock.Anything, "Atlantis").
					Return(entity.Coordinates{}, errors.Wrap(service.ErrLocationNotFound, "Atlantis")).Once()
			},
			wantErr: domainerrors.ErrLocationNotFound,
		},
		{
			name:  "gateway unavailable",
			input: &usecase.AddProfileInput{Name: "X", Location: "Paris"},
			geocodeFn: func(fx profileServiceFixtures) {
				fx.geocoder.EXPECT().Geocode(mock.Anything, "Paris").
					Return(entity.Coordinates{}, errors.Wrap(service.ErrGatewayUnavailable, "timeout")).Once()
			},
			wantErr: domainerrors.ErrGatewayUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			if tt.geocodeFn != nil {
				tt.geocodeFn(fx)
			}

			profile, err := fx.service.Add(context.Background(), tt.input)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, profile)
			assert.Empty(t, fx.service.All())
			assert.Equal(t, uint64(0), fx.service.Snapshot().Revision)
		})
	}
}

func TestProfileService_Add_RepositoryFailureInsertsNothing(t *testing.T) {
	fx := createTestProfileService(t)
	fx.geocoder.EXPECT().Geocode(mock.Anything, "Here").Return(entity.Coordinates{}, nil).Once()
	fx.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create profile")).Once()

	_, err := fx.service.Add(context.Background(), &usecase.AddProfileInput{Name: "A", Location: "Here"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Empty(t, fx.service.All())
}

func TestProfileService_Add_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestProfileService(t)
	fx.geocoder.EXPECT().Geocode(mock.Anything, "Here").Return(entity.Coordinates{}, nil).Once()
	fx.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishProfileEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := fx.service.Add(context.Background(), &usecase.AddProfileInput{Name: "A", Location: "Here"})

	require.NoError(t, err)
	assert.Len(t, fx.service.All(), 1)
}

func TestProfileService_Update_NameOnlyMakesNoGatewayCall(t *testing.T) {
	fx := loaded(t)
	ctx := context.Background()
	fx.repo.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()

	updated, err := fx.service.Update(ctx, "2", &usecase.UpdateProfileInput{Name: ptr("Michael C.")})

	require.NoError(t, err)
	assert.Equal(t, "Michael C.", updated.Name)
	assert.Equal(t, entity.Coordinates{Lat: 37.7749, Lng: -122.4194}, updated.Coordinates)
	fx.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestProfileService_Update_UnchangedLocationMakesNoGatewayCall(t *testing.T) {
	fx := loaded(t)
	ctx := context.Background()
	fx.repo.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()

	updated, err := fx.service.Update(ctx, "3", &usecase.UpdateProfileInput{
		Location: ptr("Chicago, USA"),
		Intro:    ptr("Brand strategist"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Brand strategist", updated.Intro)
	assert.Equal(t, entity.Coordinates{Lat: 41.8781, Lng: -87.6298}, updated.Coordinates)
	fx.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestProfileService_Update_ChangedLocationGeocodesOnce(t *testing.T) {
	fx := loaded(t)
	ctx := context.Background()
	newCoords := entity.Coordinates{Lat: 47.6062, Lng: -122.3321}

	fx.geocoder.EXPECT().Geocode(ctx, "Seattle, USA").Return(newCoords, nil).Once()
	fx.repo.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.ID == "2" && p.Location == "Seattle, USA" && p.Coordinates == newCoords
	})).Return(nil).Once()

	before := fx.service.Snapshot()
	updated, err := fx.service.Update(ctx, "2", &usecase.UpdateProfileInput{Location: ptr("Seattle, USA")})

	require.NoError(t, err)
	assert.Equal(t, newCoords, updated.Coordinates)
	assert.Equal(t, fixedNow, updated.UpdatedAt)

	after := fx.service.Snapshot()
	assert.Equal(t, before.Revision+1, after.Revision)
	assert.Equal(t, "San Francisco", before.Find("2").Location, "earlier snapshots must not change")
	assert.Equal(t, "Seattle, USA", after.Find("2").Location)
	assert.Equal(t, []string{"1", "2", "3"}, []string{after.Profiles[0].ID, after.Profiles[1].ID, after.Profiles[2].ID})
}

func TestProfileService_Update_Failures(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		input   *usecase.UpdateProfileInput
		setup   func(fx profileServiceFixtures)
		wantErr error
	}{
		{
			name:    "unknown id",
			id:      "nope",
			input:   &usecase.UpdateProfileInput{Name: ptr("x")},
			wantErr: domainerrors.ErrProfileNotFound,
		},
		{
			name:    "blank name",
			id:      "1",
			input:   &usecase.UpdateProfileInput{Name: ptr(" ")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "blank location is rejected before the gateway",
			id:      "1",
			input:   &usecase.UpdateProfileInput{Name: ptr("Renamed"), Location: ptr("")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "new location not found",
			id:    "1",
			input: &usecase.UpdateProfileInput{Name: ptr("Renamed"), Location: ptr("Atlantis")},
			setup: func(fx profileServiceFixtures) {
				fx.geocoder.EXPECT().Geocode(mock.Anything, "Atlantis").
					Return(entity.Coordinates{}, errors.Wrap(service.ErrLocationNotFound, "Atlantis")).Once()
			},
			wantErr: domainerrors.ErrLocationNotFound,
		},
		{
			name:  "gateway unavailable",
			id:    "1",
			input: &usecase.UpdateProfileInput{Location: ptr("Kochi, India")},
			setup: func(fx profileServiceFixtures) {
				fx.geocoder.EXPECT().Geocode(mock.Anything, "Kochi, India").
					Return(entity.Coordinates{}, errors.Wrap(service.ErrGatewayUnavailable, "refused")).Once()
			},
			wantErr: domainerrors.ErrGatewayUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := loaded(t)
			if tt.setup != nil {
				tt.setup(fx)
			}
			before := fx.service.Snapshot()

			_, err := fx.service.Update(context.Background(), tt.id, tt.input)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, fx.service.Snapshot(), "no partial mutation")
			fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestProfileService_Remove(t *testing.T) {
	fx := loaded(t)
	ctx := context.Background()
	fx.repo.EXPECT().Delete(ctx, "2").Return(nil).Once()

	require.NoError(t, fx.service.Remove(ctx, "2"))
	require.NoError(t, fx.service.Remove(ctx, "2"), "second remove is a no-op")
	require.NoError(t, fx.service.Remove(ctx, "never-existed"))

	ids := []string{}
	for _, p := range fx.service.All() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "3"}, ids)

	_, err := fx.service.Get("2")
	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_Remove_AlreadyGoneFromRepository(t *testing.T) {
	fx := loaded(t)
	fx.repo.EXPECT().Delete(mock.Anything, "1").Return(repository.ErrProfileNotFound).Once()

	require.NoError(t, fx.service.Remove(context.Background(), "1"))
	assert.Len(t, fx.service.All(), 2)
}

func TestProfileService_Remove_RepositoryFailureKeepsProfile(t *testing.T) {
	fx := loaded(t)
	fx.repo.EXPECT().Delete(mock.Anything, "1").Return(errors.New("locked")).Once()

	require.Error(t, fx.service.Remove(context.Background(), "1"))
	assert.Len(t, fx.service.All(), 3)
}

func TestProfileService_SecondUpdateOfInFlightProfileIsBusy(t *testing.T) {
	fx := loaded(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.geocoder.EXPECT().Geocode(mock.Anything, "Seattle, USA").
		RunAndReturn(func(context.Context, string) (entity.Coordinates, error) {
			close(entered)
			<-release

			return entity.Coordinates{Lat: 47.6062, Lng: -122.3321}, nil
		}).Once()
	fx.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = fx.service.Update(ctx, "2", &usecase.UpdateProfileInput{Location: ptr("Seattle, USA")})
	}()
	<-entered

	_, err := fx.service.Update(ctx, "2", &usecase.UpdateProfileInput{Name: ptr("Other")})
	require.ErrorIs(t, err, domainerrors.ErrProfileBusy)

	// Readers see the pre-update value until the first update commits.
	assert.Equal(t, "San Francisco", fx.service.Snapshot().Find("2").Location)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.Equal(t, "Seattle, USA", fx.service.Snapshot().Find("2").Location)
}

func TestProfileService_RemoveDuringInFlightUpdate(t *testing.T) {
	fx := loaded(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.geocoder.EXPECT().Geocode(mock.Anything, "Seattle, USA").
		RunAndReturn(func(context.Context, string) (entity.Coordinates, error) {
			close(entered)
			<-release

			return entity.Coordinates{Lat: 47.6062, Lng: -122.3321}, nil
		}).Once()
	fx.repo.EXPECT().Delete(mock.Anything, "2").Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var updateErr error
	go func() {
		defer wg.Done()
		_, updateErr = fx.service.Update(ctx, "2", &usecase.UpdateProfileInput{Location: ptr("Seattle, USA")})
	}()
	<-entered

	require.NoError(t, fx.service.Remove(ctx, "2"))
	assert.Nil(t, fx.service.Snapshot().Find("2"))

	close(release)
	wg.Wait()

	require.ErrorIs(t, updateErr, domainerrors.ErrProfileNotFound)
	assert.Nil(t, fx.service.Snapshot().Find("2"), "the removed profile must not be written back")
	assert.Len(t, fx.service.All(), 2)
	fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_Locations(t *testing.T) {
	fx := loaded(t)

	assert.Equal(t, []string{"Kerela, India", "San Francisco", "Chicago, USA"}, fx.service.Locations())
}

func TestProfileService_ObserverCountsMutations(t *testing.T) {
	observer := mockUsecase.NewMockMutationObserver(t)
	fx := createTestProfileService(t)
	fx.service.observer = observer

	fx.geocoder.EXPECT().Geocode(mock.Anything, "Atlantis").
		Return(entity.Coordinates{}, errors.Wrap(service.ErrLocationNotFound, "Atlantis")).Once()
	observer.EXPECT().ObserveMutation(opAdd, resultError).Once()
	observer.EXPECT().ObserveMutation(opRemove, resultNoop).Once()

	_, err := fx.service.Add(context.Background(), &usecase.AddProfileInput{Name: "X", Location: "Atlantis"})
	require.Error(t, err)
	require.NoError(t, fx.service.Remove(context.Background(), "missing"))
}
