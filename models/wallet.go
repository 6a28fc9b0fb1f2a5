package models

import (
	"time"
)

// Wallet represents a user's funds: spendable balance plus protected bank.
// Both pockets are invariantly non-negative; total wealth is Balance + Bank.
type Wallet struct {
	UserID         int64     `db:"user_id"`
	Balance        int64     `db:"balance"`
	Bank           int64     `db:"bank"`
	DailyWagered   int64     `db:"daily_wagered"`
	LastDailyReset time.Time `db:"last_daily_reset"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Total returns the user's combined wealth across both pockets.
func (w *Wallet) Total() int64 {
	return w.Balance + w.Bank
}
