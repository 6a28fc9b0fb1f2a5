package games

import (
	"fmt"
	"strconv"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// Dice predictions; any total from 2 to 12 is also accepted as an
// exact-number prediction
const (
	DiceOver  = "over"
	DiceUnder = "under"
	DiceSeven = "seven"
)

// PlayDice rolls two dice and settles the prediction: over pays 2x on
// totals of 8 and above, under 2x on 6 and below, seven 4x on exactly
// 7, and a matched exact total pays 10x.
func PlayDice(rng Rand, bet int64, prediction string) (*Result, error) {
	exact := 0
	switch prediction {
	case DiceOver, DiceUnder, DiceSeven:
	default:
		n, err := strconv.Atoi(prediction)
		if err != nil || n < 2 || n > 12 {
			return nil, fmt.Errorf("invalid dice prediction: %s", prediction)
		}
		exact = n
	}

	die1 := rng.Intn(6) + 1
	die2 := rng.Intn(6) + 1
	total := die1 + die2

	var multiplier int64
	switch {
	case prediction == DiceOver && total >= 8:
		multiplier = 2
	case prediction == DiceUnder && total <= 6:
		multiplier = 2
	case prediction == DiceSeven && total == 7:
		multiplier = 4
	case exact != 0 && exact == total:
		multiplier = 10
	}

	outcome := models.OutcomeLose
	if multiplier > 0 {
		outcome = models.OutcomeWin
	}

	return &Result{
		Outcome: outcome,
		Payout:  bet * multiplier,
		Detail: map[string]any{
			"dice":  []int{die1, die2},
			"total": total,
		},
	}, nil
}
