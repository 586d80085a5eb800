package repository

import (
	"context"

	"budget-tracker/internal/domain"
)

// GoalRepository exposes persistence operations for savings goals, with the
// same per-user scoping rules as the ledger.
type GoalRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, goal *domain.Goal) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error)
	Delete(ctx context.Context, userID, id int64) error
}
