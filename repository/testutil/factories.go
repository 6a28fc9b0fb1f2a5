package testutil

import (
	"time"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// CreateTestTransaction creates a test ledger entry with default values
func CreateTestTransaction(userID int64, amount int64, txType models.TransactionType) *models.Transaction {
	return &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: "test transaction",
		CreatedAt:   time.Now(),
	}
}

// CreateTestBet creates a settled test bet with default values
func CreateTestBet(userID int64, game string, amount int64, outcome models.Outcome, payout int64) *models.Bet {
	return &models.Bet{
		UserID:  userID,
		Game:    game,
		Amount:  amount,
		Outcome: outcome,
		Payout:  payout,
		GameData: map[string]any{
			"test": true,
		},
		CreatedAt: time.Now(),
	}
}

// CreateTestBetWithType creates a settled test bet carrying a bet type
func CreateTestBetWithType(userID int64, game, betType string, amount int64, outcome models.Outcome, payout int64) *models.Bet {
	bet := CreateTestBet(userID, game, amount, outcome, payout)
	bet.BetType = &betType
	return bet
}
