package domain

import "time"

// User is an account that owns transactions and savings goals. Deleting a
// user removes everything it owns.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
