package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/repository"
)

const createGoalsTable = `
CREATE TABLE IF NOT EXISTS goals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	target_amount REAL NOT NULL,
	current_amount REAL NOT NULL DEFAULT 0,
	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);
`

type GoalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) repository.GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createGoalsTable); err != nil {
		return fmt.Errorf("create goals table: %w", err)
	}
	return nil
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO goals (user_id, name, target_amount, current_amount)
VALUES (?, ?, ?, ?)`,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
	)
	if err != nil {
		return 0, fmt.Errorf("insert goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("goal last insert id: %w", err)
	}
	goal.ID = id
	return id, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, name, target_amount, current_amount
FROM goals
WHERE user_id = ?
ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var goal domain.Goal
		if err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Name,
			&goal.TargetAmount,
			&goal.CurrentAmount,
		); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

// Delete has the same ownership+existence semantics as transaction delete.
func (r *GoalRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM goals WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete goal rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
