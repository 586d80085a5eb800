package service

import (
	"context"
	"fmt"
	"strings"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/repository"
)

const maxGoalNameLen = 100

// GoalService coordinates savings goal operations for an authenticated user.
// There is deliberately no operation to change a goal's current amount.
type GoalService interface {
	Add(ctx context.Context, userID int64, name string, targetAmount float64) (*domain.Goal, error)
	List(ctx context.Context, userID int64) ([]domain.Goal, error)
	Delete(ctx context.Context, userID, id int64) error
}

type goalService struct {
	goals repository.GoalRepository
}

func NewGoalService(goals repository.GoalRepository) GoalService {
	return &goalService{goals: goals}
}

func (s *goalService) Add(ctx context.Context, userID int64, name string, targetAmount float64) (*domain.Goal, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > maxGoalNameLen {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, maxGoalNameLen)
	}

	goal := &domain.Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: 0,
	}

	if _, err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) List(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return s.goals.ListByUser(ctx, userID)
}

func (s *goalService) Delete(ctx context.Context, userID, id int64) error {
	return s.goals.Delete(ctx, userID, id)
}
