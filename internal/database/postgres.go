package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxConns   = 20
	connRetryAttempts = 10
	connRetryDelay    = 2 * time.Second
)

// NewPool opens a pgx pool sized for a single API server. The API container
// often starts before Postgres accepts connections, so the dial is retried.
func NewPool(ctx context.Context, databaseURL string, maxConns int) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	if maxConns <= 0 {
		maxConns = defaultMaxConns
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MinConns = 2
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	var lastErr error
	for attempt := 1; attempt <= connRetryAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Printf("[DB] Connected (attempt %d, max_conns=%d)", attempt, maxConns)
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err
		log.Printf("[DB] Connect attempt %d/%d failed: %v", attempt, connRetryAttempts, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connRetryDelay):
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", connRetryAttempts, lastErr)
}
