package repository

import (
	"context"

	"budget-tracker/internal/domain"
)

// UserRepository defines persistence operations for User entities.
// Delete cascades to the user's transactions and goals; it exists for the
// offline admin tool and is not reachable from the HTTP surface.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}
