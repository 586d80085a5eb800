package repository

import (
	"context"

	"budget-tracker/internal/domain"
)

// TransactionRepository exposes persistence operations for a user's ledger.
// Every query is scoped to the owning user; a transaction belonging to a
// different user behaves as if it does not exist.
type TransactionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, tx *domain.Transaction) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
	Delete(ctx context.Context, userID, id int64) error
	SumByKind(ctx context.Context, userID int64, kind domain.TransactionKind) (float64, error)
}
