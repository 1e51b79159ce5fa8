package impl

import (
	"io"
	"log/slog"
	"testing"

	"chatdesk/config"
	"chatdesk/internal/domain/entity"
	mockSvc "chatdesk/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(role string) *config.Config {
	cfg := &config.Config{
		Identity:      &config.IdentityConfig{Role: role},
		Firebase:      &config.FirebaseConfig{RoleClaim: "role"},
		TokenEndpoint: &config.TokenEndpointConfig{URL: "http://localhost:3000/stream-token"},
		Chat: &config.ChatConfig{
			APIKey:          "4umujg35b2ks",
			BaseURL:         "https://chat.stream-io-api.com",
			ChannelType:     "messaging",
			ChannelID:       "gaming-group",
			ProfanityFilter: "profanity_en_2020_v1",
			MessageBuffer:   50,
		},
		Bootstrap:  &config.BootstrapConfig{},
		Moderation: &config.ModerationConfig{RatePerMinute: 30, Burst: 5},
	}
	cfg.Identity.Profiles.Admin = config.ProfileConfig{ID: "moderator-user", Name: "Moderator"}
	cfg.Identity.Profiles.User = config.ProfileConfig{ID: "gaming-user", Name: "Gamer"}

	return cfg
}

// newQuietMetrics accepts any metrics call.
func newQuietMetrics(t *testing.T) *mockSvc.MockMetricsRecorder {
	t.Helper()

	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().RecordBootstrapStep(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().RecordPhase(mock.Anything).Maybe()
	metrics.EXPECT().RecordConnected(mock.Anything).Maybe()
	metrics.EXPECT().RecordModerationAction(mock.Anything, mock.Anything).Maybe()

	return metrics
}

func authenticatedSession(uid string) *entity.AuthSession {
	return &entity.AuthSession{
		UserID:          uid,
		IDToken:         "id-token-" + uid,
		IsAuthenticated: true,
		Anonymous:       true,
	}
}

func gamingChannel() *entity.Channel {
	return &entity.Channel{
		Type:    "messaging",
		ID:      "gaming-group",
		CID:     "messaging:gaming-group",
		Watched: true,
	}
}
