// Package memory keeps profiles in process memory. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"profilemap/internal/domain/entity"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/domain/repository"
	"profilemap/internal/errors"
)

type profileRepository struct {
	mu          sync.RWMutex
	profiles    []*entity.Profile
	initialized bool
}

// NewProfileRepository creates an empty in-memory repository.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) List(_ context.Context) ([]*entity.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.Clone())
	}

	return out, nil
}

func (r *profileRepository) Create(_ context.Context, profile *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(profile.ID) >= 0 {
		return domainerrors.NewDatabaseExecuteError(errors.Errorf("duplicate profile id %s", profile.ID), "failed to create profile")
	}
	r.profiles = append(r.profiles, profile.Clone())

	return nil
}

func (r *profileRepository) Update(_ context.Context, profile *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(profile.ID)
	if i < 0 {
		return repository.ErrProfileNotFound
	}
	r.profiles[i] = profile.Clone()

	return nil
}

func (r *profileRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrProfileNotFound
	}
	r.profiles = slices.Delete(r.profiles, i, i+1)

	return nil
}

func (r *profileRepository) Initialized(_ context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.initialized, nil
}

func (r *profileRepository) MarkInitialized(_ context.Context) error {
	r.mu.Lock()
	r.initialized = true
	r.mu.Unlock()

	return nil
}

func (r *profileRepository) indexOf(id string) int {
	return slices.IndexFunc(r.profiles, func(p *entity.Profile) bool { return p.ID == id })
}
