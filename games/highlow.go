package games

import (
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// High-low guesses
const (
	HighLowHigh = "high"
	HighLowLow  = "low"
)

// PlayHighLow reveals one card, then draws a second and settles the
// guess against it: a correct high or low call pays 2x, equal counting
// values push.
func PlayHighLow(deck *cards.Deck, bet int64, guess string) (*Result, error) {
	if guess != HighLowHigh && guess != HighLowLow {
		return nil, fmt.Errorf("guess must be high or low, got %q", guess)
	}

	first := deck.Deal(1)[0]
	second := deck.Deal(1)[0]

	var outcome models.Outcome
	var payout int64
	higher := second.Value() > first.Value()
	switch {
	case second.Value() == first.Value():
		outcome = models.OutcomePush
		payout = bet
	case guess == HighLowHigh && higher, guess == HighLowLow && !higher:
		outcome = models.OutcomeWin
		payout = bet * 2
	default:
		outcome = models.OutcomeLose
	}

	return &Result{
		Outcome: outcome,
		Payout:  payout,
		Detail: map[string]any{
			"first_card":  first.String(),
			"second_card": second.String(),
			"guess":       guess,
		},
	}, nil
}
