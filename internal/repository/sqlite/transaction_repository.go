package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"budget-tracker/internal/domain"
	"budget-tracker/internal/repository"
)

const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	kind TEXT NOT NULL,
	description TEXT NOT NULL,
	amount REAL NOT NULL,
	category TEXT NOT NULL,
	date DATETIME NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);
`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTransactionsTable); err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, date)`,
	); err != nil {
		return fmt.Errorf("create transactions index: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (int64, error) {
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO transactions (user_id, kind, description, amount, category, date)
VALUES (?, ?, ?, ?, ?, ?)`,
		tx.UserID,
		string(tx.Kind),
		tx.Description,
		tx.Amount,
		tx.Category,
		tx.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction last insert id: %w", err)
	}
	tx.ID = id
	return id, nil
}

// ListByUser returns the user's transactions ordered most recent first.
// The id tiebreaker keeps same-timestamp inserts in reverse insertion order.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, kind, description, amount, category, date
FROM transactions
WHERE user_id = ?
ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var kind string
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&kind,
			&tx.Description,
			&tx.Amount,
			&tx.Category,
			&tx.Date,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Kind = domain.TransactionKind(kind)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// Delete removes the transaction only when it belongs to userID. Existence
// and ownership are checked in the same statement so a foreign transaction is
// indistinguishable from a missing one.
func (r *TransactionRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) SumByKind(ctx context.Context, userID int64, kind domain.TransactionKind) (float64, error) {
	var sum float64
	err := r.db.QueryRowContext(ctx, `
SELECT COALESCE(SUM(amount), 0)
FROM transactions
WHERE user_id = ? AND kind = ?`,
		userID, string(kind),
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}
	return sum, nil
}
