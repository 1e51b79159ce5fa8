package entity

import "time"

// ChatUser is a user record on the chat service.
type ChatUser struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

// ChatSession is the connection between an identity and the chat service.
type ChatSession struct {
	UserID       string
	ConnectionID string
	Connected    bool
}

// ChannelSpec describes the channel to open during bootstrap.
type ChannelSpec struct {
	Type            string
	ID              string
	ProfanityFilter string
}

// Channel is a chat-service managed conversation.
type Channel struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	CID     string `json:"cid"`
	Name    string `json:"name,omitempty"`
	Watched bool   `json:"watched"`
}

// Message is a chat message observed on a watched channel.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	User      ChatUser  `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
