package repository

import (
	"context"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

// InsertMessage stores a chat message and returns the row with the
// server-assigned id and timestamp.
func (r *ChatRepository) InsertMessage(ctx context.Context, userID, message string) (*model.ChatMessage, error) {
	m := &model.ChatMessage{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chat_messages (user_id, message)
		VALUES ($1, $2)
		RETURNING id, user_id, message, created_at
	`, userID, message).Scan(&m.ID, &m.UserID, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetRecent returns the newest `limit` messages joined with the sender's
// profile, newest first. Callers reverse for chronological display.
func (r *ChatRepository) GetRecent(ctx context.Context, limit int) ([]model.ChatMessageWithUser, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.user_id, m.message, m.created_at,
		       u.id, u.email, u.first_name, u.last_name, u.profile_image_url,
		       u.coin_balance, u.is_admin, u.created_at, u.updated_at
		FROM chat_messages m
		INNER JOIN users u ON m.user_id = u.id
		ORDER BY m.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.ChatMessageWithUser
	for rows.Next() {
		var m model.ChatMessageWithUser
		u := &model.User{}
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Message, &m.CreatedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL,
			&u.CoinBalance, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		m.User = u
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// DeleteOlderThan removes messages older than the given number of days.
// Returns the number of deleted rows.
func (r *ChatRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM chat_messages WHERE created_at < NOW() - make_interval(days => $1)
	`, days)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
