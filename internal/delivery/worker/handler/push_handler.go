package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"chatdesk/config"
	deliverycontext "chatdesk/internal/delivery/context"
	"chatdesk/internal/domain/entity"
	"chatdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// pushVerifier checks the OIDC token on a push request.
type pushVerifier func(req *http.Request) error

// PushHandler receives moderation audit events pushed by Pub/Sub and writes
// them to the audit log.
type PushHandler struct {
	verify  pushVerifier
	logger  *slog.Logger
	metrics service.MetricsRecorder
	seen    *recentIDs
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config.AuditWorker

	var verify pushVerifier
	if cfg.VerifyPushAuth {
		verify = func(req *http.Request) error {
			return verifyPubSubToken(req, cfg.Audience)
		}
	}

	return &PushHandler{
		verify:  verify,
		logger:  params.Logger,
		metrics: params.Metrics,
		seen:    newRecentIDs(cfg.DedupWindow),
	}
}

// HandlePush handles incoming Pub/Sub push messages. Malformed payloads are
// acknowledged with 400 so Pub/Sub does not redeliver them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Audit] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Audit] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Audit] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ModerationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Audit] Failed to parse moderation event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if err := validateEvent(&event); err != nil {
		h.logger.Error("[Audit] Rejected moderation event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	if !h.seen.add(event.EventID) {
		h.metrics.RecordAuditEvent(event.Kind, true)
		reqLogger.Info("[Audit] Dropped redelivered event", slog.String("event_id", event.EventID))

		return c.NoContent(http.StatusOK)
	}
	h.metrics.RecordAuditEvent(event.Kind, false)

	reqLogger.Info("[Audit] Moderation action",
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
		slog.String("moderator_id", event.ModeratorID),
		slog.String("channel_cid", event.ChannelCID),
		slog.String("target_message_id", event.TargetMessageID),
		slog.String("target_user_id", event.TargetUserID),
		slog.String("reason", event.Reason),
		slog.Time("occurred_at", event.OccurredAt),
	)

	return c.NoContent(http.StatusOK)
}

func validateEvent(event *service.ModerationEvent) error {
	if event.EventID == "" {
		return errors.New("event_id is required")
	}
	if event.ModeratorID == "" {
		return errors.New("moderator_id is required")
	}

	switch entity.ModerationKind(event.Kind) {
	case entity.ModerationFlag:
		if event.TargetMessageID == "" {
			return errors.New("flag event without target_message_id")
		}
	case entity.ModerationBan:
		if event.TargetUserID == "" {
			return errors.New("ban event without target_user_id")
		}
	default:
		return errors.Errorf("unknown kind %q", event.Kind)
	}

	return nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ModerationEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// recentIDs remembers the last size event IDs. Pub/Sub delivers at least once.
type recentIDs struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	order []string
	next  int
}

func newRecentIDs(size int) *recentIDs {
	size = max(size, 1)

	return &recentIDs{
		ids:   make(map[string]struct{}, size),
		order: make([]string, size),
	}
}

// add records id and reports whether it was new.
func (r *recentIDs) add(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; ok {
		return false
	}

	if evicted := r.order[r.next]; evicted != "" {
		delete(r.ids, evicted)
	}
	r.order[r.next] = id
	r.next = (r.next + 1) % len(r.order)
	r.ids[id] = struct{}{}

	return true
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
