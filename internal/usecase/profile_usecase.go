// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"profilemap/internal/domain/directory"
	"profilemap/internal/domain/entity"
)

// ProfileUsecase is the profile store: the single mutable, ordered collection of profiles.
type ProfileUsecase interface {
	// Load fills the store from the repository, seeding it when the repository is empty.
	Load(ctx context.Context) error

	// All returns every profile in insertion order.
	All() []*entity.Profile
	// Get returns one profile or ErrProfileNotFound.
	Get(id string) (*entity.Profile, error)
	// Locations returns the distinct location strings in first-seen order.
	Locations() []string
	// Snapshot returns the current collection and revision for derivation. Read only.
	Snapshot() directory.Snapshot

	// Add validates and geocodes input, then appends a profile with a fresh id.
	Add(ctx context.Context, input *AddProfileInput) (*entity.Profile, error)
	// Update applies the non-nil fields of input, re-geocoding only when the location text changes.
	Update(ctx context.Context, id string, input *UpdateProfileInput) (*entity.Profile, error)
	// Remove deletes a profile. Removing an unknown id is a no-op.
	Remove(ctx context.Context, id string) error
}

// MutationObserver receives the outcome of every store mutation.
type MutationObserver interface {
	ObserveMutation(op, result string)
}

// --- Input DTOs ---

// AddProfileInput defines the data required to create a profile.
type AddProfileInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Picture  string `json:"picture" validate:"omitempty,url,max=2048"`
	Location string `json:"location" validate:"required,max=512"`
	Intro    string `json:"intro" validate:"max=4000"`
}

// UpdateProfileInput is a partial update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Picture  *string `json:"picture,omitempty" validate:"omitempty,url,max=2048"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=512"`
	Intro    *string `json:"intro,omitempty" validate:"omitempty,max=4000"`
}

// IsEmpty reports whether the patch changes nothing.
func (in *UpdateProfileInput) IsEmpty() bool {
	return in == nil || (in.Name == nil && in.Picture == nil && in.Location == nil && in.Intro == nil)
}
