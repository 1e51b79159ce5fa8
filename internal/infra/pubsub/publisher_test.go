package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chatdesk/config"
	"chatdesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.ModerationEvent {
	return &service.ModerationEvent{
		EventID:      "evt-1",
		RequestID:    "req-1",
		Kind:         "ban",
		ModeratorID:  "moderator-user",
		ChannelCID:   "messaging:gaming-group",
		TargetUserID: "U1",
		Reason:       "spam",
		OccurredAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishModerationEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	require.NoError(t, publisher.PublishModerationEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "ban", received.Message.Attributes["kind"])
	assert.Equal(t, "messaging:gaming-group", received.Message.Attributes["channel_cid"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.ModerationEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "U1", event.TargetUserID)
	assert.Equal(t, "spam", event.Reason)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	err := publisher.PublishModerationEvent(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	publisher, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	require.NoError(t, publisher.PublishModerationEvent(ctx, sampleEvent()))

	publisher, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8090/push"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderLocal}, logger)
	require.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, logger)
	require.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
	require.Error(t, err)
}
