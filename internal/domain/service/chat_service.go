package service

import (
	"context"

	"chatdesk/internal/domain/entity"
)

// ChatService abstracts the hosted chat service. One instance holds at most
// one connected session.
type ChatService interface {
	// ConnectUser opens the session for user. Calling it while connected is a
	// no-op that returns the existing session.
	ConnectUser(ctx context.Context, user entity.ChatUser, token string) (*entity.ChatSession, error)

	// DisconnectUser closes the session. It is safe to call when disconnected.
	DisconnectUser(ctx context.Context) error

	// IsConnected reports whether a session is open.
	IsConnected() bool

	// WatchChannel creates the channel if needed and starts watching it.
	WatchChannel(ctx context.Context, spec entity.ChannelSpec) (*entity.Channel, error)

	// Messages returns the recent messages of a watched channel, oldest first.
	Messages(cid string) []entity.Message

	// FlagMessage reports a message for review.
	FlagMessage(ctx context.Context, messageID, reason string) error

	// BanUser bans action.TargetUserID. A nil action.Expires is permanent.
	BanUser(ctx context.Context, action entity.ModerationAction) error
}
