package service

import (
	"context"
	"fmt"
	"strings"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/repository"
)

const (
	maxDescriptionLen = 100
	maxCategoryLen    = 50
)

// LedgerService coordinates transaction operations and balance aggregation
// for a single authenticated user.
type LedgerService interface {
	Add(ctx context.Context, userID int64, kind domain.TransactionKind, description string, amount float64, category string) (*domain.Transaction, error)
	List(ctx context.Context, userID int64) ([]domain.Transaction, error)
	Delete(ctx context.Context, userID, id int64) error
	Balance(ctx context.Context, userID int64) (domain.Balance, error)
}

type ledgerService struct {
	transactions repository.TransactionRepository
}

func NewLedgerService(transactions repository.TransactionRepository) LedgerService {
	return &ledgerService{transactions: transactions}
}

func (s *ledgerService) Add(ctx context.Context, userID int64, kind domain.TransactionKind, description string, amount float64, category string) (*domain.Transaction, error) {
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, maxDescriptionLen)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if len(category) > maxCategoryLen {
		return nil, fmt.Errorf("%w: category exceeds %d characters", ErrInvalidInput, maxCategoryLen)
	}

	tx := &domain.Transaction{
		UserID:      userID,
		Kind:        kind,
		Description: description,
		Amount:      amount,
		Category:    category,
	}

	if _, err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *ledgerService) List(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

func (s *ledgerService) Delete(ctx context.Context, userID, id int64) error {
	return s.transactions.Delete(ctx, userID, id)
}

// Balance recomputes the user's totals from the ledger on every call.
func (s *ledgerService) Balance(ctx context.Context, userID int64) (domain.Balance, error) {
	income, err := s.transactions.SumByKind(ctx, userID, domain.TransactionIncome)
	if err != nil {
		return domain.Balance{}, err
	}
	expense, err := s.transactions.SumByKind(ctx, userID, domain.TransactionExpense)
	if err != nil {
		return domain.Balance{}, err
	}
	return domain.Balance{
		Income:  income,
		Expense: expense,
		Net:     income - expense,
	}, nil
}
