package model

import (
	"time"

	"profilemap/internal/domain/entity"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// Seq is a surrogate key that preserves insertion order; ID is the public identifier.
type ProfileModel struct {
	Seq       int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	ID        string    `gorm:"column:id;type:varchar(64);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Picture   string    `gorm:"type:text;not null;default:''"`
	Location  string    `gorm:"type:text;not null"`
	Intro     string    `gorm:"type:text;not null;default:''"`
	Lat       float64   `gorm:"not null"`
	Lng       float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToProfileDomain converts a ProfileModel to a domain Profile entity.
func ToProfileDomain(data *ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		Name:        data.Name,
		Picture:     data.Picture,
		Location:    data.Location,
		Intro:       data.Intro,
		Coordinates: entity.Coordinates{Lat: data.Lat, Lng: data.Lng},
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// FromProfileDomain converts a domain Profile entity to a ProfileModel. Seq is left for the database.
func FromProfileDomain(data *entity.Profile) *ProfileModel {
	if data == nil {
		return nil
	}

	return &ProfileModel{
		ID:        data.ID,
		Name:      data.Name,
		Picture:   data.Picture,
		Location:  data.Location,
		Intro:     data.Intro,
		Lat:       data.Coordinates.Lat,
		Lng:       data.Coordinates.Lng,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// StoreMetaModel holds one key/value marker about the profile store itself.
type StoreMetaModel struct {
	Key       string    `gorm:"column:key;type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (StoreMetaModel) TableName() string {
	return "profile_store_meta"
}
