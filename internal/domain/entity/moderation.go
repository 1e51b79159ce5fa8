package entity

import "time"

// ModerationKind identifies a moderator action.
type ModerationKind string

const (
	ModerationFlag ModerationKind = "flag"
	ModerationBan  ModerationKind = "ban"
)

// ModerationAction is a flag or ban request sent to the chat service.
// Nothing about it is stored locally; the service owns the outcome.
type ModerationAction struct {
	Kind            ModerationKind
	TargetMessageID string
	TargetUserID    string
	Reason          string
	BannedBy        string

	// Expires is nil for a permanent ban.
	Expires *time.Time
}

// BanPrompt is the open ban-reason dialog.
type BanPrompt struct {
	Target ChatUser `json:"target"`
	Reason string   `json:"reason"`
	Error  string   `json:"error,omitempty"`
}
