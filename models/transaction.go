package models

import (
	"time"
)

// TransactionType tags the economic event behind a ledger entry
type TransactionType string

const (
	TransactionTypeBet         TransactionType = "bet"
	TransactionTypeWin         TransactionType = "win"
	TransactionTypePush        TransactionType = "push"
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdraw    TransactionType = "withdraw"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypeWork        TransactionType = "work"
	TransactionTypeCollect     TransactionType = "collect"
	TransactionTypeDaily       TransactionType = "daily"
	TransactionTypeWeekly      TransactionType = "weekly"
	TransactionTypeAdmin       TransactionType = "admin"
	TransactionTypeInitial     TransactionType = "initial"
)

// Transaction is an immutable, append-only record of a balance-affecting
// event. Amount is signed: positive credits the spendable balance, negative
// debits it. Replaying all of a user's amounts from zero reproduces their
// current balance; the wallet row is a cached projection of this log.
type Transaction struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Amount      int64           `db:"amount"`
	Type        TransactionType `db:"tx_type"`
	Description string          `db:"description"`
	RecipientID *int64          `db:"recipient_id"`
	Game        *string         `db:"game"`
	CreatedAt   time.Time       `db:"created_at"`
}
