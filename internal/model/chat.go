package model

import "time"

// ChatMessage is a stored chat message row. Rows are immutable once written.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatMessageWithUser is a message joined with the sender's public profile,
// as returned by the history endpoint.
type ChatMessageWithUser struct {
	ChatMessage
	User *User `json:"user"`
}
