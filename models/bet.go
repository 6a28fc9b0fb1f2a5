package models

import "time"

// Outcome classifies how a game round resolved for the player
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomePush Outcome = "push"
	OutcomeFold Outcome = "fold"
)

// Bet represents one resolved game round in the database. Payout is the
// total amount credited back to the player including any returned stake,
// so losing and folded rounds always carry Payout 0.
type Bet struct {
	ID        int64          `db:"id"`
	UserID    int64          `db:"user_id"`
	Game      string         `db:"game"`
	Amount    int64          `db:"amount"`
	BetType   *string        `db:"bet_type"`
	Outcome   Outcome        `db:"outcome"`
	Payout    int64          `db:"payout"`
	GameData  map[string]any `db:"game_data"`
	CreatedAt time.Time      `db:"created_at"`
}

// TransferResult represents the outcome of a transfer (returned to the user)
type TransferResult struct {
	Amount      int64
	RecipientID int64
	NewBalance  int64
}
