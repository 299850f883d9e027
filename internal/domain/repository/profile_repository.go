// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"profilemap/internal/domain/entity"
	"profilemap/internal/errors"
)

// ErrProfileNotFound is returned when a profile is not present in the backing store.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository is the persistence port of the profile store.
// Implementations must preserve insertion order and round-trip every profile field.
type ProfileRepository interface {
	// List returns every stored profile in insertion order.
	List(ctx context.Context) ([]*entity.Profile, error)

	// Create appends a new profile after all existing ones.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update replaces the stored fields of an existing profile without changing its position.
	// Returns ErrProfileNotFound if the id is unknown.
	Update(ctx context.Context, profile *entity.Profile) error

	// Delete removes a profile by id.
	// Returns ErrProfileNotFound if the id is unknown.
	Delete(ctx context.Context, id string) error

	// Initialized reports whether MarkInitialized was ever called on this store.
	// An initialized store that is empty stays empty; it is never seeded again.
	Initialized(ctx context.Context) (bool, error)

	// MarkInitialized records that the store has been set up. Calling it again is a no-op.
	MarkInitialized(ctx context.Context) error
}
