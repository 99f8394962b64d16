package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChatStore persists messages in memory and records call order.
type fakeChatStore struct {
	messages  []model.ChatMessage
	insertErr error
	calls     *[]string
}

func (f *fakeChatStore) InsertMessage(_ context.Context, userID, message string) (*model.ChatMessage, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	m := model.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	f.messages = append(f.messages, m)
	if f.calls != nil {
		*f.calls = append(*f.calls, "persist")
	}
	return &m, nil
}

func (f *fakeChatStore) GetRecent(_ context.Context, limit int) ([]model.ChatMessageWithUser, error) {
	var out []model.ChatMessageWithUser
	for i := len(f.messages) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, model.ChatMessageWithUser{ChatMessage: f.messages[i]})
	}
	return out, nil
}

type fakeUserStore struct {
	users map[string]*model.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return u, nil
}

type recordingBroadcaster struct {
	events []interface{}
	calls  *[]string
}

func (r *recordingBroadcaster) Broadcast(v interface{}) {
	r.events = append(r.events, v)
	if r.calls != nil {
		*r.calls = append(*r.calls, "broadcast")
	}
}

func newChatFixture() (*ChatService, *fakeChatStore, *recordingBroadcaster, *[]string) {
	calls := &[]string{}
	store := &fakeChatStore{calls: calls}
	users := &fakeUserStore{users: map[string]*model.User{
		"u1": {ID: "u1", Email: "ada@example.com"},
	}}
	bc := &recordingBroadcaster{calls: calls}
	return NewChatService(store, users, bc), store, bc, calls
}

func TestChatServicePersistsBeforeBroadcast(t *testing.T) {
	svc, store, bc, calls := newChatFixture()

	event, err := svc.PostMessage(context.Background(), "u1", "hi")
	require.NoError(t, err)

	require.Equal(t, []string{"persist", "broadcast"}, *calls)
	require.Len(t, store.messages, 1)
	require.Len(t, bc.events, 1)

	got, ok := bc.events[0].(*model.WSNewMessage)
	require.True(t, ok)
	assert.Equal(t, "new_message", got.Type)
	assert.Equal(t, store.messages[0].ID, got.ID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "hi", got.Message)
	require.NotNil(t, got.User)
	assert.Equal(t, "ada@example.com", got.User.Email)
	assert.Same(t, event, got)
}

func TestChatServiceRejectsInvalidMessages(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "empty", text: "", wantErr: ErrEmptyMessage},
		{name: "whitespace only", text: "   \t\n", wantErr: ErrEmptyMessage},
		{name: "too long", text: string(make([]byte, maxMessageLen+1)), wantErr: ErrMessageTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, bc, _ := newChatFixture()

			_, err := svc.PostMessage(context.Background(), "u1", tt.text)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.messages, "no row for invalid message")
			assert.Empty(t, bc.events, "no broadcast for invalid message")
		})
	}
}

func TestChatServiceStoreFailureSuppressesBroadcast(t *testing.T) {
	calls := &[]string{}
	store := &fakeChatStore{insertErr: errors.New("connection refused"), calls: calls}
	users := &fakeUserStore{users: map[string]*model.User{}}
	bc := &recordingBroadcaster{calls: calls}
	svc := NewChatService(store, users, bc)

	_, err := svc.PostMessage(context.Background(), "u1", "hi")
	require.Error(t, err)
	assert.Empty(t, bc.events)
}

func TestChatServiceUnknownSenderSuppressesBroadcast(t *testing.T) {
	svc, store, bc, _ := newChatFixture()

	_, err := svc.PostMessage(context.Background(), "ghost", "hi")
	require.Error(t, err)
	// The row is persisted (it is the durable truth) but no broadcast is
	// attempted without a resolvable sender profile.
	assert.Len(t, store.messages, 1)
	assert.Empty(t, bc.events)
}

func TestChatServiceTrimsMessageText(t *testing.T) {
	svc, store, _, _ := newChatFixture()

	_, err := svc.PostMessage(context.Background(), "u1", "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", store.messages[0].Message)
}

func TestChatServiceHistoryNewestFirst(t *testing.T) {
	svc, _, _, _ := newChatFixture()

	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.PostMessage(context.Background(), "u1", text)
		require.NoError(t, err)
	}

	msgs, err := svc.History(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "three", msgs[0].Message)
	assert.Equal(t, "two", msgs[1].Message)
}
