// Package stream is the chat-service client: a websocket session for live
// events plus REST calls for channel watch and moderation.
package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"chatdesk/config"
	"chatdesk/internal/domain/entity"
	"chatdesk/internal/domain/service"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultHealthCheckInterval = 25 * time.Second
	defaultRequestTimeout      = 15 * time.Second
	readLimit                  = 1 << 20
)

// ErrNotConnected is returned by calls that need a live session.
var ErrNotConnected = errors.New("chat session is not connected")

// Client implements service.ChatService.
type Client struct {
	apiKey              string
	baseURL             string
	wsURL               string
	healthCheckInterval time.Duration
	httpClient          *http.Client
	logger              *slog.Logger
	buffer              *messageBuffer

	mu           sync.Mutex
	conn         *websocket.Conn
	token        string
	connectionID string
	userID       string
	stop         context.CancelFunc
	done         chan struct{}
}

// ClientParams holds dependencies for the chat client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewChatService creates the chat client from configuration.
func NewChatService(params ClientParams) (service.ChatService, error) {
	return NewClient(params.Config.Chat, params.Logger)
}

// NewClient creates a chat client for cfg.BaseURL. The websocket URL is
// derived from it by switching the scheme to ws or wss.
func NewClient(cfg *config.ChatConfig, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse chat base url")
	}

	ws := *base
	switch base.Scheme {
	case "https":
		ws.Scheme = "wss"
	case "http":
		ws.Scheme = "ws"
	default:
		return nil, errors.Errorf("unsupported chat base url scheme %q", base.Scheme)
	}

	interval := cfg.HealthCheckInterval
	if interval <= 0 {
		interval = defaultHealthCheckInterval
	}

	return &Client{
		apiKey:              cfg.APIKey,
		baseURL:             base.String(),
		wsURL:               ws.String(),
		healthCheckInterval: interval,
		httpClient:          &http.Client{Timeout: defaultRequestTimeout},
		logger:              logger,
		buffer:              newMessageBuffer(cfg.MessageBuffer),
	}, nil
}

// ConnectUser opens the websocket session for user. It is a no-op returning
// the current session when already connected.
func (c *Client) ConnectUser(ctx context.Context, user entity.ChatUser, token string) (*entity.ChatSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.sessionLocked(), nil
	}

	connectURL, err := c.connectURL(user, token)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.Dial(ctx, connectURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "websocket dial")
	}
	conn.SetReadLimit(readLimit)

	var first wsEvent
	if err := wsjson.Read(ctx, conn, &first); err != nil {
		_ = conn.CloseNow()

		return nil, errors.Wrap(err, "read connect response")
	}
	if first.Error != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "")

		return nil, first.Error
	}
	if first.Type != eventHealthCheck || first.ConnectionID == "" {
		_ = conn.CloseNow()

		return nil, errors.Errorf("unexpected connect response event %q", first.Type)
	}

	loopCtx, stop := context.WithCancel(context.Background())
	c.conn = conn
	c.token = token
	c.userID = user.ID
	c.connectionID = first.ConnectionID
	c.stop = stop
	c.done = make(chan struct{})

	go c.readLoop(loopCtx, conn, c.done)
	go c.healthLoop(loopCtx, conn, first.ConnectionID)

	c.logger.Info("Chat websocket connected",
		slog.String("user_id", user.ID),
		slog.String("connection_id", first.ConnectionID),
	)

	return c.sessionLocked(), nil
}

// DisconnectUser closes the websocket session and drops buffered messages.
func (c *Client) DisconnectUser(ctx context.Context) error {
	c.mu.Lock()
	conn, stop, done := c.conn, c.stop, c.done
	c.resetLocked()
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	if err := conn.Close(websocket.StatusNormalClosure, "disconnect"); err != nil {
		c.logger.Debug("Chat websocket close", slog.Any("error", err))
	}
	stop()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	c.buffer.clear()
	c.logger.Info("Chat websocket disconnected")

	return nil
}

// IsConnected reports whether a websocket session is open.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn != nil
}

// Messages returns the buffered messages of cid, oldest first.
func (c *Client) Messages(cid string) []entity.Message {
	return c.buffer.list(cid)
}

func (c *Client) connectURL(user entity.ChatUser, token string) (string, error) {
	payload, err := json.Marshal(connectPayload{
		UserID:                       user.ID,
		UserDetails:                  userPayload{ID: user.ID, Name: user.Name, Image: user.Image},
		ServerDeterminesConnectionID: true,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	q := url.Values{}
	q.Set("json", string(payload))
	q.Set("api_key", c.apiKey)
	q.Set("authorization", token)
	q.Set("stream-auth-type", "jwt")

	return c.wsURL + "/connect?" + q.Encode(), nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		var ev wsEvent
		if err := wsjson.Read(ctx, conn, &ev); err != nil {
			if ctx.Err() == nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				c.logger.Warn("Chat websocket read failed", slog.Any("error", err))
			}
			c.dropConn(conn)

			return
		}
		c.handleEvent(ev)
	}
}

func (c *Client) handleEvent(ev wsEvent) {
	switch ev.Type {
	case eventMessageNew:
		if ev.Message != nil && ev.CID != "" {
			c.buffer.add(ev.CID, ev.Message.toEntity())
		}
	case eventMessageUpdated:
		if ev.Message != nil && ev.CID != "" {
			c.buffer.update(ev.CID, ev.Message.toEntity())
		}
	case eventMessageDeleted:
		if ev.Message != nil && ev.CID != "" {
			c.buffer.remove(ev.CID, ev.Message.ID)
		}
	case eventHealthCheck:
	default:
		c.logger.Debug("Ignoring chat event", slog.String("type", ev.Type))
	}
}

func (c *Client) healthLoop(ctx context.Context, conn *websocket.Conn, connectionID string) {
	ticker := time.NewTicker(c.healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := wsjson.Write(ctx, conn, healthCheck{Type: eventHealthCheck, ClientID: connectionID}); err != nil {
				if ctx.Err() == nil {
					c.logger.Warn("Chat health check failed", slog.Any("error", err))
				}

				return
			}
		}
	}
}

// dropConn forgets conn after the read loop ended on its own.
func (c *Client) dropConn(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != conn {
		return
	}
	c.stop()
	c.resetLocked()
	c.logger.Warn("Chat websocket closed by server")
}

func (c *Client) resetLocked() {
	c.conn = nil
	c.token = ""
	c.connectionID = ""
	c.userID = ""
	c.stop = nil
	c.done = nil
}

func (c *Client) sessionLocked() *entity.ChatSession {
	return &entity.ChatSession{
		UserID:       c.userID,
		ConnectionID: c.connectionID,
		Connected:    c.conn != nil,
	}
}

// credentials returns the token and connection id of the live session.
func (c *Client) credentials() (token, connectionID string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return "", "", ErrNotConnected
	}

	return c.token, c.connectionID, nil
}

// Module provides the chat client FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChatService),
)
