package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-tracker/internal/auth"
	"budget-tracker/internal/domain"
	"budget-tracker/internal/repository"
	"budget-tracker/internal/repository/sqlite"
)

type fixture struct {
	users  UserService
	ledger LedgerService
	goals  GoalService
	tokens *auth.TokenManager
	ctx    context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	txRepo := sqlite.NewTransactionRepository(db)
	goalRepo := sqlite.NewGoalRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	require.NoError(t, txRepo.Init(ctx))
	require.NoError(t, goalRepo.Init(ctx))

	tokens := auth.NewTokenManager("test-secret", 24*time.Hour)

	return &fixture{
		users:  NewUserService(userRepo, tokens),
		ledger: NewLedgerService(txRepo),
		goals:  NewGoalService(goalRepo),
		tokens: tokens,
		ctx:    ctx,
	}
}

func (f *fixture) register(t *testing.T, username, password string) int64 {
	t.Helper()
	user, err := f.users.Register(f.ctx, username, password)
	require.NoError(t, err)
	return user.ID
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Register(f.ctx, "", "pass")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.users.Register(f.ctx, "alice", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "pass1234")

	_, err := f.users.Register(f.ctx, "alice", "other-pass")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterDoesNotStorePlaintext(t *testing.T) {
	f := newFixture(t)
	user, err := f.users.Register(f.ctx, "alice", "pass1234")
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash, "hash never leaves the service")
}

func TestLoginIssuesToken(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "alice", "pass1234")

	token, user, err := f.users.Login(f.ctx, "alice", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	verified, err := f.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, verified)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "pass1234")

	_, _, errWrongPass := f.users.Login(f.ctx, "alice", "nope")
	_, _, errNoUser := f.users.Login(f.ctx, "mallory", "nope")

	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestLedgerAddValidation(t *testing.T) {
	f := newFixture(t)
	userID := f.register(t, "alice", "pass1234")

	cases := []struct {
		name        string
		kind        domain.TransactionKind
		description string
		category    string
	}{
		{"bad kind", "transfer", "desc", "cat"},
		{"empty description", domain.TransactionIncome, "", "cat"},
		{"long description", domain.TransactionIncome, strings.Repeat("d", 101), "cat"},
		{"empty category", domain.TransactionIncome, "desc", ""},
		{"long category", domain.TransactionIncome, "desc", strings.Repeat("c", 51)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.ledger.Add(f.ctx, userID, tc.kind, tc.description, 10, tc.category)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBalance(t *testing.T) {
	f := newFixture(t)
	userID := f.register(t, "alice", "pass1234")

	empty, err := f.ledger.Balance(f.ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.Balance{}, empty)

	_, err = f.ledger.Add(f.ctx, userID, domain.TransactionIncome, "Salary", 1000, "Job")
	require.NoError(t, err)
	_, err = f.ledger.Add(f.ctx, userID, domain.TransactionExpense, "Rent", 400, "Housing")
	require.NoError(t, err)

	balance, err := f.ledger.Balance(f.ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 1000, balance.Income, 1e-9)
	assert.InDelta(t, 400, balance.Expense, 1e-9)
	assert.InDelta(t, 600, balance.Net, 1e-9)
}

func TestGoalAddValidation(t *testing.T) {
	f := newFixture(t)
	userID := f.register(t, "alice", "pass1234")

	_, err := f.goals.Add(f.ctx, userID, "", 500)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.goals.Add(f.ctx, userID, strings.Repeat("n", 101), 500)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// zero target is accepted; progress just reads as 0
	goal, err := f.goals.Add(f.ctx, userID, "Someday", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, goal.Progress())
}

func TestDeleteNotOwned(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice", "pass1234")
	bob := f.register(t, "bob", "pass1234")

	tx, err := f.ledger.Add(f.ctx, alice, domain.TransactionIncome, "Salary", 1000, "Job")
	require.NoError(t, err)

	assert.ErrorIs(t, f.ledger.Delete(f.ctx, bob, tx.ID), repository.ErrNotFound)
	assert.NoError(t, f.ledger.Delete(f.ctx, alice, tx.ID))
}
