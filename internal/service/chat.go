package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DarkTheory001/DevNest/internal/model"
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message exceeds maximum length")
)

const maxMessageLen = 4000

// ChatMessageStore persists chat messages and serves the history read.
type ChatMessageStore interface {
	InsertMessage(ctx context.Context, userID, message string) (*model.ChatMessage, error)
	GetRecent(ctx context.Context, limit int) ([]model.ChatMessageWithUser, error)
}

// ChatUserStore resolves a sender's profile for broadcast enrichment.
type ChatUserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// Broadcaster fans an event out to every live connection.
type Broadcaster interface {
	Broadcast(v interface{})
}

// ChatService is the realtime relay: it validates an inbound message,
// persists it, enriches it with the sender's profile and broadcasts the
// result. The persisted row is always written before any broadcast is
// attempted; the store stays the source of truth for clients that were
// offline.
type ChatService struct {
	chatRepo ChatMessageStore
	userRepo ChatUserStore
	hub      Broadcaster
}

func NewChatService(chatRepo ChatMessageStore, userRepo ChatUserStore, hub Broadcaster) *ChatService {
	return &ChatService{chatRepo: chatRepo, userRepo: userRepo, hub: hub}
}

// PostMessage persists a message from userID and broadcasts the enriched
// event. The sender identity comes from the connection, not the payload.
func (s *ChatService) PostMessage(ctx context.Context, userID, text string) (*model.WSNewMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if len(text) > maxMessageLen {
		return nil, ErrMessageTooLong
	}

	msg, err := s.chatRepo.InsertMessage(ctx, userID, text)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	event := &model.WSNewMessage{
		Type:      "new_message",
		ID:        msg.ID,
		UserID:    msg.UserID,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
		User:      user,
	}
	s.hub.Broadcast(event)
	return event, nil
}

// History returns the newest `limit` messages, newest first. Callers
// reverse for display.
func (s *ChatService) History(ctx context.Context, limit int) ([]model.ChatMessageWithUser, error) {
	return s.chatRepo.GetRecent(ctx, limit)
}
