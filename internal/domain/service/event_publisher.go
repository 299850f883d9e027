package service

import (
	"context"
	"time"

	"profilemap/internal/domain/entity"
)

// ProfileEvent describes a committed change to the profile store
type ProfileEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       string          `json:"type"`                 // profile.created, profile.updated, profile.deleted
	ProfileID  string          `json:"profile_id"`
	Profile    *entity.Profile `json:"profile,omitempty"` // Absent for deletions
	Revision   uint64          `json:"revision"`          // Store revision after the change
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a profile change event
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
