package domain

import "time"

type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

// Valid reports whether the kind is one of the two supported values.
func (k TransactionKind) Valid() bool {
	return k == TransactionIncome || k == TransactionExpense
}

// Transaction is a single income or expense entry in a user's ledger.
type Transaction struct {
	ID          int64
	UserID      int64
	Kind        TransactionKind
	Description string
	Amount      float64
	Category    string
	Date        time.Time
}

// Balance aggregates a user's ledger into income, expense and net totals.
type Balance struct {
	Income  float64
	Expense float64
	Net     float64
}
