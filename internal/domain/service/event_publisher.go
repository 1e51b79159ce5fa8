package service

import (
	"context"
	"time"
)

// ModerationEvent is the audit record of a completed moderator action
type ModerationEvent struct {
	EventID         string    `json:"event_id"`
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	Kind            string    `json:"kind"`
	ModeratorID     string    `json:"moderator_id"`
	ChannelCID      string    `json:"channel_cid,omitempty"`
	TargetMessageID string    `json:"target_message_id,omitempty"`
	TargetUserID    string    `json:"target_user_id,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes an audit event for a moderator action
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
