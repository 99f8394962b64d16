package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxStore struct {
	mu        sync.Mutex
	created   []model.Transaction
	createErr error
}

func (f *fakeTxStore) Create(_ context.Context, adminID string, req *model.CreateTransactionRequest) (*model.Transaction, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tx := model.Transaction{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		AdminID:   &adminID,
		Type:      req.Type,
		Amount:    req.Amount,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
	}
	f.created = append(f.created, tx)
	return &tx, nil
}

func (f *fakeTxStore) ListByUser(_ context.Context, userID string) ([]model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Transaction
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID == userID {
			out = append(out, f.created[i])
		}
	}
	return out, nil
}

// fakeBalanceStore applies deltas under a lock, mirroring the atomic
// UPDATE the real repository issues.
type fakeBalanceStore struct {
	mu       sync.Mutex
	balances map[string]int
}

func (f *fakeBalanceStore) IncrementBalance(_ context.Context, id string, delta int) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.balances[id]; !ok {
		return nil, errors.New("no rows in result set")
	}
	f.balances[id] += delta
	return &model.User{ID: id, CoinBalance: f.balances[id]}, nil
}

func TestCoinServiceGrant(t *testing.T) {
	txs := &fakeTxStore{}
	balances := &fakeBalanceStore{balances: map[string]int{"u1": 100}}
	svc := NewCoinService(txs, balances)

	reason := "weekly bonus"
	tx, err := svc.Grant(context.Background(), "admin-1", &model.CreateTransactionRequest{
		UserID: "u1",
		Type:   model.TransactionTypeAdminGrant,
		Amount: 25,
		Reason: &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", tx.UserID)
	assert.Equal(t, 25, tx.Amount)
	require.NotNil(t, tx.AdminID)
	assert.Equal(t, "admin-1", *tx.AdminID)
	assert.Equal(t, 125, balances.balances["u1"])
}

func TestCoinServiceGrantValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     model.CreateTransactionRequest
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     model.CreateTransactionRequest{UserID: "u1", Type: "jackpot", Amount: 10},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name:    "zero amount",
			req:     model.CreateTransactionRequest{UserID: "u1", Type: model.TransactionTypeBonus, Amount: 0},
			wantErr: ErrZeroAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := &fakeTxStore{}
			balances := &fakeBalanceStore{balances: map[string]int{"u1": 100}}
			svc := NewCoinService(txs, balances)

			_, err := svc.Grant(context.Background(), "admin-1", &tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, txs.created)
			assert.Equal(t, 100, balances.balances["u1"])
		})
	}
}

// Concurrent grants to the same user must never lose an increment: the
// balance mutation is a single atomic operation at the store boundary, not
// a read-modify-write in the application tier.
func TestCoinServiceConcurrentGrants(t *testing.T) {
	const grants = 20

	txs := &fakeTxStore{}
	balances := &fakeBalanceStore{balances: map[string]int{"u1": 100}}
	svc := NewCoinService(txs, balances)

	var wg sync.WaitGroup
	for i := 0; i < grants; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Grant(context.Background(), "admin-1", &model.CreateTransactionRequest{
				UserID: "u1",
				Type:   model.TransactionTypeAdminGrant,
				Amount: 10,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100+grants*10, balances.balances["u1"])
	assert.Len(t, txs.created, grants)
}

func TestCoinServiceNegativeGrantDebits(t *testing.T) {
	txs := &fakeTxStore{}
	balances := &fakeBalanceStore{balances: map[string]int{"u1": 100}}
	svc := NewCoinService(txs, balances)

	_, err := svc.Grant(context.Background(), "admin-1", &model.CreateTransactionRequest{
		UserID: "u1",
		Type:   model.TransactionTypeResourceUsage,
		Amount: -30,
	})
	require.NoError(t, err)
	assert.Equal(t, 70, balances.balances["u1"])
}

func TestCoinServiceListForUser(t *testing.T) {
	txs := &fakeTxStore{}
	balances := &fakeBalanceStore{balances: map[string]int{"u1": 100, "u2": 100}}
	svc := NewCoinService(txs, balances)

	for _, userID := range []string{"u1", "u2", "u1"} {
		_, err := svc.Grant(context.Background(), "admin-1", &model.CreateTransactionRequest{
			UserID: userID,
			Type:   model.TransactionTypeBonus,
			Amount: 5,
		})
		require.NoError(t, err)
	}

	got, err := svc.ListForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
