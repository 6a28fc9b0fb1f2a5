package games

import (
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// Coinflip sides
const (
	CoinHeads = "heads"
	CoinTails = "tails"
)

// PlayCoinflip flips a fair coin, paying 2x on a match
func PlayCoinflip(rng Rand, bet int64, choice string) (*Result, error) {
	if choice != CoinHeads && choice != CoinTails {
		return nil, fmt.Errorf("choice must be heads or tails, got %q", choice)
	}

	flip := CoinHeads
	if rng.Intn(2) == 1 {
		flip = CoinTails
	}

	outcome := models.OutcomeLose
	var payout int64
	if flip == choice {
		outcome = models.OutcomeWin
		payout = bet * 2
	}

	return &Result{
		Outcome: outcome,
		Payout:  payout,
		Detail: map[string]any{
			"flip": flip,
		},
	}, nil
}
