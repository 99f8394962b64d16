package model

import "time"

// WSInbound is the envelope for client-to-server websocket events. The
// UserID field is accepted for wire compatibility but never trusted; the
// relay uses the identity bound to the connection at handshake.
type WSInbound struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	Message string `json:"message,omitempty"`
}

// WSNewMessage is the broadcast sent to every open connection after a chat
// message is persisted.
type WSNewMessage struct {
	Type      string    `json:"type"` // always "new_message"
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	User      *User     `json:"user"`
}

type WSPong struct {
	Type string `json:"type"` // always "pong"
}
