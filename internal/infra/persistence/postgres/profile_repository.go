// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"profilemap/internal/domain/entity"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/domain/repository"
	"profilemap/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const metaInitialized = "initialized"

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// List retrieves all profiles in insertion order.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Order("seq ASC").
		Find(&profileModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, m := range profileModels {
		profiles = append(profiles, model.ToProfileDomain(m))
	}

	return profiles, nil
}

// Create appends a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := model.FromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "duplicate profile id "+profile.ID)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	return nil
}

// Update overwrites every mutable column of an existing profile, keeping its seq.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"name":       profile.Name,
			"picture":    profile.Picture,
			"location":   profile.Location,
			"intro":      profile.Intro,
			"lat":        profile.Coordinates.Lat,
			"lng":        profile.Coordinates.Lng,
			"updated_at": profile.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Delete removes a profile row permanently.
func (repo *profileRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Initialized reports whether the initialized marker row exists.
func (repo *profileRepository) Initialized(ctx context.Context) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StoreMetaModel{}).
		Where("key = ?", metaInitialized).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to read store marker")
	}

	return count > 0, nil
}

// MarkInitialized inserts the initialized marker row, ignoring an existing one.
func (repo *profileRepository) MarkInitialized(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.StoreMetaModel{Key: metaInitialized}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write store marker")
	}

	return nil
}
