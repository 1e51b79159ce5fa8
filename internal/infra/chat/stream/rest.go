package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	deliverycontext "chatdesk/internal/delivery/context"
	"chatdesk/internal/domain/entity"

	"github.com/pkg/errors"
)

const maxResponseBodySize = 4 << 20

// APIError is the error body returned by the chat service.
type APIError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"StatusCode"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return http.StatusText(e.StatusCode)
}

type channelQueryRequest struct {
	State    bool           `json:"state"`
	Watch    bool           `json:"watch"`
	Presence bool           `json:"presence"`
	Data     map[string]any `json:"data,omitempty"`
}

type channelQueryResponse struct {
	Channel struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		CID  string `json:"cid"`
		Name string `json:"name"`
	} `json:"channel"`
	Messages []messagePayload `json:"messages"`
}

type flagRequest struct {
	TargetMessageID string `json:"target_message_id"`
	Reason          string `json:"reason,omitempty"`
}

type banRequest struct {
	TargetUserID string `json:"target_user_id"`
	BannedByID   string `json:"banned_by_id,omitempty"`
	Reason       string `json:"reason,omitempty"`

	// Timeout is in minutes; omitted for a permanent ban.
	Timeout *int `json:"timeout,omitempty"`
}

// WatchChannel queries the channel with state and watch enabled and seeds the
// message buffer with the returned history.
func (c *Client) WatchChannel(ctx context.Context, spec entity.ChannelSpec) (*entity.Channel, error) {
	req := channelQueryRequest{State: true, Watch: true}
	if spec.ProfanityFilter != "" {
		req.Data = map[string]any{"profanity_filter": spec.ProfanityFilter}
	}

	var resp channelQueryResponse
	path := "/channels/" + url.PathEscape(spec.Type) + "/" + url.PathEscape(spec.ID) + "/query"
	if err := c.do(ctx, http.MethodPost, path, true, req, &resp); err != nil {
		return nil, err
	}

	channel := &entity.Channel{
		Type:    spec.Type,
		ID:      spec.ID,
		CID:     spec.Type + ":" + spec.ID,
		Name:    resp.Channel.Name,
		Watched: true,
	}
	if resp.Channel.CID != "" {
		channel.CID = resp.Channel.CID
	}

	history := make([]entity.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		history = append(history, m.toEntity())
	}
	c.buffer.reset(channel.CID, history)

	c.logger.Info("Watching chat channel",
		slog.String("cid", channel.CID),
		slog.Int("history", len(history)),
	)

	return channel, nil
}

// FlagMessage flags messageID for review.
func (c *Client) FlagMessage(ctx context.Context, messageID, reason string) error {
	return c.do(ctx, http.MethodPost, "/moderation/flag", false, flagRequest{
		TargetMessageID: messageID,
		Reason:          reason,
	}, nil)
}

// BanUser bans action.TargetUserID. A nil Expires makes the ban permanent.
func (c *Client) BanUser(ctx context.Context, action entity.ModerationAction) error {
	req := banRequest{
		TargetUserID: action.TargetUserID,
		BannedByID:   action.BannedBy,
		Reason:       action.Reason,
	}
	if action.Expires != nil {
		minutes := int(math.Ceil(time.Until(*action.Expires).Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		req.Timeout = &minutes
	}

	return c.do(ctx, http.MethodPost, "/moderation/ban", false, req, nil)
}

// do sends an authenticated JSON request. withConnection adds the
// connection_id query parameter, which watch requests need.
func (c *Client) do(ctx context.Context, method, path string, withConnection bool, body, out any) error {
	token, connectionID, err := c.credentials()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WithStack(err)
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if withConnection {
		q.Set("connection_id", connectionID)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+q.Encode(), bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	req.Header.Set("stream-auth-type", "jwt")
	req.Header.Set("X-Client-Request-Id", deliverycontext.RequestIDOrNew(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "chat service %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return errors.Wrap(err, "read chat service response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// A body that is not an API error still yields the status text.
		apiErr := &APIError{}
		_ = json.Unmarshal(raw, apiErr)
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode
		}
		c.logger.Warn("Chat service request failed",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("code", apiErr.Code),
		)

		return apiErr
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.Unmarshal(raw, out), "decode chat service response")
}
