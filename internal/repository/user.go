package repository

import (
	"context"
	"fmt"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password_hash, first_name, last_name, profile_image_url, coin_balance, is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.ProfileImageURL, &u.CoinBalance, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash, firstName, lastName string) (*model.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT DO NOTHING
		RETURNING `+userColumns+`
	`, email, passwordHash, firstName, lastName)
	u, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("duplicate key")
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// IncrementBalance applies a coin delta as a single atomic UPDATE so
// concurrent grants to the same user never lose an increment.
func (r *UserRepository) IncrementBalance(ctx context.Context, id string, delta int) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users
		SET coin_balance = coin_balance + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, delta))
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetStats(ctx context.Context) (*model.UserStats, error) {
	s := &model.UserStats{}
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM transactions)
	`).Scan(&s.TotalUsers, &s.TotalProjects, &s.TotalTransactions)
	if err != nil {
		return nil, err
	}
	return s, nil
}
