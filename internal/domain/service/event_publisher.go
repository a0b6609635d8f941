package service

import (
	"context"
	"time"
)

// IdentityRegisteredEvent is published when a social login creates a new user.
type IdentityRegisteredEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	SocialType   string    `json:"social_type"`
	Principal    string    `json:"principal"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishIdentityRegistered announces a newly registered identity.
	PublishIdentityRegistered(ctx context.Context, event *IdentityRegisteredEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
