package repository

import (
	"context"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, user_id, admin_id, type, amount, reason, created_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	t := &model.Transaction{}
	err := row.Scan(&t.ID, &t.UserID, &t.AdminID, &t.Type, &t.Amount, &t.Reason, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, adminID string, req *model.CreateTransactionRequest) (*model.Transaction, error) {
	return scanTransaction(r.pool.QueryRow(ctx, `
		INSERT INTO transactions (user_id, admin_id, type, amount, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+transactionColumns+`
	`, req.UserID, adminID, req.Type, req.Amount, req.Reason))
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	return txs, rows.Err()
}
