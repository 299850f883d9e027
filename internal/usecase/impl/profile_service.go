// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	deliverycontext "profilemap/internal/delivery/context"
	"profilemap/internal/domain/constants"
	"profilemap/internal/domain/directory"
	"profilemap/internal/domain/entity"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/domain/repository"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"
	"profilemap/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Mutation operation and result labels reported to the MutationObserver.
const (
	opAdd    = "add"
	opUpdate = "update"
	opRemove = "remove"

	resultOK    = "ok"
	resultNoop  = "noop"
	resultError = "error"
)

// ProfileServiceParams holds dependencies for the profile store, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Repo      repository.ProfileRepository
	Geocoder  service.Geocoder
	Publisher service.EventPublisher
	Observer  usecase.MutationObserver `optional:"true"`
	Seeds     []*entity.Profile        `name:"seed_profiles" optional:"true"`
	Logger    *slog.Logger
}

// profileService implements the ProfileUsecase interface.
//
// The collection is copy-on-write: a mutation builds a new slice and never
// touches a stored *entity.Profile, so a Snapshot stays valid after it is taken.
type profileService struct {
	repo      repository.ProfileRepository
	geocoder  service.Geocoder
	publisher service.EventPublisher
	observer  usecase.MutationObserver
	seeds     []*entity.Profile
	logger    *slog.Logger

	now   func() time.Time
	newID func() string

	mu       sync.RWMutex
	profiles []*entity.Profile
	revision uint64
	inFlight map[string]struct{}
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return newProfileService(params)
}

func newProfileService(params ProfileServiceParams) *profileService {
	return &profileService{
		repo:      params.Repo,
		geocoder:  params.Geocoder,
		publisher: params.Publisher,
		observer:  params.Observer,
		seeds:     params.Seeds,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		inFlight:  make(map[string]struct{}),
	}
}

func (srv *profileService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load replaces the in-memory collection with the repository contents. Seeds are
// written only the first time a repository is initialized, so a store emptied by
// removals stays empty across restarts.
func (srv *profileService) Load(ctx context.Context) error {
	profiles, err := srv.repo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load profiles")
	}

	initialized, err := srv.repo.Initialized(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read store marker")
	}
	if !initialized {
		if len(profiles) == 0 && len(srv.seeds) > 0 {
			for _, seed := range srv.seeds {
				if err := srv.repo.Create(ctx, seed); err != nil {
					return errors.Wrapf(err, "failed to seed profile %s", seed.ID)
				}
				profiles = append(profiles, seed.Clone())
			}
			srv.logger.Info("Seeded new profile store", slog.Int("count", len(srv.seeds)))
		}
		if err := srv.repo.MarkInitialized(ctx); err != nil {
			return errors.Wrap(err, "failed to mark profile store initialized")
		}
	}

	srv.mu.Lock()
	srv.profiles = profiles
	srv.revision++
	srv.mu.Unlock()

	srv.logger.Info("Profile store loaded", slog.Int("count", len(profiles)))

	return nil
}

// All returns copies of every profile in insertion order.
func (srv *profileService) All() []*entity.Profile {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]*entity.Profile, 0, len(srv.profiles))
	for _, p := range srv.profiles {
		out = append(out, p.Clone())
	}

	return out
}

// Get returns a copy of one profile.
func (srv *profileService) Get(id string) (*entity.Profile, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	i := srv.indexOf(id)
	if i < 0 {
		return nil, domainerrors.ErrProfileNotFound
	}

	return srv.profiles[i].Clone(), nil
}

// Locations lists the distinct locations currently stored.
func (srv *profileService) Locations() []string {
	return directory.Locations(srv.Snapshot().Profiles)
}

// Snapshot exposes the current slice without copying. Callers must not mutate it.
func (srv *profileService) Snapshot() directory.Snapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return directory.Snapshot{Revision: srv.revision, Profiles: srv.profiles}
}

// Add geocodes the candidate and appends it. Nothing is stored when geocoding fails.
func (srv *profileService) Add(ctx context.Context, input *usecase.AddProfileInput) (*entity.Profile, error) {
	logger := srv.getLogger(ctx)

	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	name := strings.TrimSpace(input.Name)
	location := strings.TrimSpace(input.Location)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if location == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location must not be empty")
	}

	coords, err := srv.geocode(ctx, location)
	if err != nil {
		srv.observe(opAdd, resultError)

		return nil, err
	}

	now := srv.now()
	profile := &entity.Profile{
		ID:          srv.newID(),
		Name:        name,
		Picture:     strings.TrimSpace(input.Picture),
		Location:    location,
		Intro:       input.Intro,
		Coordinates: coords,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	srv.mu.Lock()
	if err := srv.repo.Create(ctx, profile); err != nil {
		srv.mu.Unlock()
		srv.observe(opAdd, resultError)

		return nil, errors.Wrap(err, "failed to save new profile")
	}
	next := make([]*entity.Profile, len(srv.profiles), len(srv.profiles)+1)
	copy(next, srv.profiles)
	srv.profiles = append(next, profile)
	srv.revision++
	revision := srv.revision
	srv.mu.Unlock()

	srv.observe(opAdd, resultOK)
	logger.Info("Profile added",
		slog.String("profile_id", profile.ID),
		slog.String("location", profile.Location),
	)
	srv.publish(ctx, constants.ProfileEventCreated, profile.ID, profile, revision)

	return profile.Clone(), nil
}

// Update applies a partial patch. The gateway is consulted only when the
// location text differs from the stored one; any failure leaves the profile untouched.
func (srv *profileService) Update(ctx context.Context, id string, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	logger := srv.getLogger(ctx)

	patch, err := normalizePatch(input)
	if err != nil {
		return nil, err
	}

	current, err := srv.acquire(id)
	if err != nil {
		return nil, err
	}
	defer srv.release(id)

	updated := current.Clone()
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Picture != nil {
		updated.Picture = *patch.Picture
	}
	if patch.Intro != nil {
		updated.Intro = *patch.Intro
	}
	if patch.Location != nil && *patch.Location != current.Location {
		coords, err := srv.geocode(ctx, *patch.Location)
		if err != nil {
			srv.observe(opUpdate, resultError)

			return nil, err
		}
		updated.Location = *patch.Location
		updated.Coordinates = coords
	}
	updated.UpdatedAt = srv.now()

	srv.mu.Lock()
	// A Remove may have landed while the gateway was consulted.
	i := srv.indexOf(id)
	if i < 0 {
		srv.mu.Unlock()
		srv.observe(opUpdate, resultError)

		return nil, domainerrors.ErrProfileNotFound
	}
	if err := srv.repo.Update(ctx, updated); err != nil {
		srv.mu.Unlock()
		srv.observe(opUpdate, resultError)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "profile "+id+" is missing from the repository")
		}

		return nil, errors.Wrap(err, "failed to save profile")
	}
	next := slices.Clone(srv.profiles)
	next[i] = updated
	srv.profiles = next
	srv.revision++
	revision := srv.revision
	srv.mu.Unlock()

	srv.observe(opUpdate, resultOK)
	logger.Info("Profile updated",
		slog.String("profile_id", id),
		slog.Bool("relocated", updated.Location != current.Location),
	)
	srv.publish(ctx, constants.ProfileEventUpdated, id, updated, revision)

	return updated.Clone(), nil
}

// Remove deletes id immediately, even while an update of it is in flight; that
// update then fails with ErrProfileNotFound. An unknown id is not an error.
func (srv *profileService) Remove(ctx context.Context, id string) error {
	logger := srv.getLogger(ctx)

	srv.mu.Lock()
	i := srv.indexOf(id)
	if i < 0 {
		srv.mu.Unlock()
		srv.observe(opRemove, resultNoop)

		return nil
	}
	if err := srv.repo.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		srv.mu.Unlock()
		srv.observe(opRemove, resultError)

		return errors.Wrap(err, "failed to delete profile")
	}
	next := make([]*entity.Profile, 0, len(srv.profiles)-1)
	next = append(next, srv.profiles[:i]...)
	srv.profiles = append(next, srv.profiles[i+1:]...)
	srv.revision++
	revision := srv.revision
	srv.mu.Unlock()

	srv.observe(opRemove, resultOK)
	logger.Info("Profile removed", slog.String("profile_id", id))
	srv.publish(ctx, constants.ProfileEventDeleted, id, nil, revision)

	return nil
}

// acquire marks id as having an update in flight and returns its current value.
// A second update of the same id is refused with ErrProfileBusy.
func (srv *profileService) acquire(id string) (*entity.Profile, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	i := srv.indexOf(id)
	if i < 0 {
		return nil, domainerrors.ErrProfileNotFound
	}
	if _, busy := srv.inFlight[id]; busy {
		return nil, domainerrors.ErrProfileBusy
	}
	srv.inFlight[id] = struct{}{}

	return srv.profiles[i], nil
}

func (srv *profileService) release(id string) {
	srv.mu.Lock()
	delete(srv.inFlight, id)
	srv.mu.Unlock()
}

// indexOf must be called with mu held.
func (srv *profileService) indexOf(id string) int {
	if id == "" {
		return -1
	}

	return slices.IndexFunc(srv.profiles, func(p *entity.Profile) bool { return p.ID == id })
}

// normalizePatch trims name and location and rejects blank values.
func normalizePatch(input *usecase.UpdateProfileInput) (*usecase.UpdateProfileInput, error) {
	if input == nil {
		return &usecase.UpdateProfileInput{}, nil
	}
	patch := *input

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		patch.Name = &name
	}
	if patch.Location != nil {
		location := strings.TrimSpace(*patch.Location)
		if location == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("location must not be empty")
		}
		patch.Location = &location
	}
	if patch.Picture != nil {
		picture := strings.TrimSpace(*patch.Picture)
		patch.Picture = &picture
	}

	return &patch, nil
}

// geocode translates gateway failures into domain errors.
func (srv *profileService) geocode(ctx context.Context, location string) (entity.Coordinates, error) {
	coords, err := srv.geocoder.Geocode(ctx, location)
	switch {
	case err == nil:
		return coords, nil
	case errors.Is(err, service.ErrLocationNotFound):
		return entity.Coordinates{}, domainerrors.ErrLocationNotFound.WithDetails(location)
	default:
		srv.getLogger(ctx).Warn("Geocoding failed",
			slog.String("location", location),
			slog.Any("error", err),
		)

		return entity.Coordinates{}, errors.Wrap(domainerrors.ErrGatewayUnavailable, err.Error())
	}
}

func (srv *profileService) observe(op, result string) {
	if srv.observer != nil {
		srv.observer.ObserveMutation(op, result)
	}
}

// publish sends a change event. The mutation is already committed, so failures are only logged.
func (srv *profileService) publish(ctx context.Context, eventType, id string, profile *entity.Profile, revision uint64) {
	if srv.publisher == nil {
		return
	}

	event := &service.ProfileEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ProfileID:  id,
		Profile:    profile.Clone(),
		Revision:   revision,
		OccurredAt: srv.now(),
	}
	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.getLogger(ctx).Error("Failed to publish profile event",
			slog.String("type", eventType),
			slog.String("profile_id", id),
			slog.Any("error", err),
		)
	}
}
