package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarkTheory001/DevNest/internal/model"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrZeroAmount             = errors.New("amount must be non-zero")
)

type TransactionStore interface {
	Create(ctx context.Context, adminID string, req *model.CreateTransactionRequest) (*model.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]model.Transaction, error)
}

type BalanceStore interface {
	IncrementBalance(ctx context.Context, id string, delta int) (*model.User, error)
}

// CoinService records ledger entries and applies them to user balances.
// The balance mutation is a single atomic increment at the store boundary,
// so concurrent grants to the same user cannot lose updates.
type CoinService struct {
	txRepo   TransactionStore
	userRepo BalanceStore
}

func NewCoinService(txRepo TransactionStore, userRepo BalanceStore) *CoinService {
	return &CoinService{txRepo: txRepo, userRepo: userRepo}
}

// Grant creates a transaction issued by adminID and applies its amount to
// the target user's balance.
func (s *CoinService) Grant(ctx context.Context, adminID string, req *model.CreateTransactionRequest) (*model.Transaction, error) {
	if !model.ValidTransactionType(req.Type) {
		return nil, ErrInvalidTransactionType
	}
	if req.Amount == 0 {
		return nil, ErrZeroAmount
	}

	tx, err := s.txRepo.Create(ctx, adminID, req)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if _, err := s.userRepo.IncrementBalance(ctx, tx.UserID, tx.Amount); err != nil {
		return nil, fmt.Errorf("apply balance: %w", err)
	}

	return tx, nil
}

func (s *CoinService) ListForUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	return s.txRepo.ListByUser(ctx, userID)
}
