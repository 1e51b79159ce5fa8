package usecase

import (
	"context"

	"chatdesk/internal/domain/entity"
)

// MessageView is a channel message as presented to the desk user
type MessageView struct {
	entity.Message
	Moderatable bool `json:"moderatable"`
}

// ModerationUsecase defines moderator actions on the open channel
type ModerationUsecase interface {
	// CanModerate reports whether moderator controls apply to msg
	CanModerate(msg entity.Message) bool

	// Messages lists the open channel's recent messages with their moderator visibility
	Messages(ctx context.Context) ([]MessageView, error)

	// Flag reports a message to the chat service
	Flag(ctx context.Context, messageID string) error

	// OpenBanPrompt selects target for a ban and opens the reason prompt
	OpenBanPrompt(ctx context.Context, target entity.ChatUser) (*entity.BanPrompt, error)

	// UpdateBanReason edits the reason draft of the open prompt
	UpdateBanReason(ctx context.Context, reason string) (*entity.BanPrompt, error)

	// ConfirmBan sends the ban with reason. On failure the prompt stays open with reason kept.
	ConfirmBan(ctx context.Context, reason string) error

	// CancelBan closes the prompt without side effects
	CancelBan(ctx context.Context)
}
