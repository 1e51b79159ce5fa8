package stream

import (
	"sync"
	"time"

	"chatdesk/internal/domain/entity"
)

// Websocket event types handled by the client.
const (
	eventHealthCheck    = "health.check"
	eventMessageNew     = "message.new"
	eventMessageUpdated = "message.updated"
	eventMessageDeleted = "message.deleted"
)

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

func (u userPayload) toEntity() entity.ChatUser {
	return entity.ChatUser{ID: u.ID, Name: u.Name, Image: u.Image}
}

type messagePayload struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	User      userPayload `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

func (m messagePayload) toEntity() entity.Message {
	return entity.Message{
		ID:        m.ID,
		Text:      m.Text,
		User:      m.User.toEntity(),
		CreatedAt: m.CreatedAt,
	}
}

// wsEvent is an inbound websocket event. Only the fields the desk uses are decoded.
type wsEvent struct {
	Type         string          `json:"type"`
	ConnectionID string          `json:"connection_id,omitempty"`
	CID          string          `json:"cid,omitempty"`
	Message      *messagePayload `json:"message,omitempty"`
	Me           *userPayload    `json:"me,omitempty"`
	Error        *APIError       `json:"error,omitempty"`
}

// healthCheck is the outbound keep-alive event.
type healthCheck struct {
	Type     string `json:"type"`
	ClientID string `json:"client_id"`
}

// connectPayload is the json query parameter of the connect request.
type connectPayload struct {
	UserID                       string      `json:"user_id"`
	UserDetails                  userPayload `json:"user_details"`
	ServerDeterminesConnectionID bool        `json:"server_determines_connection_id"`
}

// messageBuffer keeps the most recent messages of each watched channel.
type messageBuffer struct {
	limit int

	mu       sync.RWMutex
	channels map[string][]entity.Message
}

func newMessageBuffer(limit int) *messageBuffer {
	return &messageBuffer{
		limit:    limit,
		channels: make(map[string][]entity.Message),
	}
}

func (b *messageBuffer) reset(cid string, msgs []entity.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(msgs) > b.limit {
		msgs = msgs[len(msgs)-b.limit:]
	}
	b.channels[cid] = append([]entity.Message(nil), msgs...)
}

func (b *messageBuffer) add(cid string, msg entity.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msgs := append(b.channels[cid], msg)
	if len(msgs) > b.limit {
		msgs = msgs[len(msgs)-b.limit:]
	}
	b.channels[cid] = msgs
}

func (b *messageBuffer) update(cid string, msg entity.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, existing := range b.channels[cid] {
		if existing.ID == msg.ID {
			b.channels[cid][i] = msg

			return
		}
	}
}

func (b *messageBuffer) remove(cid, messageID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msgs := b.channels[cid]
	for i, existing := range msgs {
		if existing.ID == messageID {
			b.channels[cid] = append(msgs[:i:i], msgs[i+1:]...)

			return
		}
	}
}

func (b *messageBuffer) list(cid string) []entity.Message {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]entity.Message(nil), b.channels[cid]...)
}

func (b *messageBuffer) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.channels = make(map[string][]entity.Message)
}
