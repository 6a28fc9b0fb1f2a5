package games

import (
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// Roulette bet types
const (
	RouletteSingle = "single"
	RouletteDozen  = "dozen"
	RouletteRed    = "red"
	RouletteBlack  = "black"
	RouletteOdd    = "odd"
	RouletteEven   = "even"
	RouletteLow    = "low"
	RouletteHigh   = "high"
)

// redNumbers follows the standard European wheel layout
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// PlayRoulette spins a European wheel (0-36) and settles the bet.
// number selects the target for single bets (0-36) and the dozen for
// dozen bets (1-3); the other bet types ignore it. Zero is green and
// loses every color, parity and range bet.
func PlayRoulette(rng Rand, bet int64, betType string, number int) (*Result, error) {
	switch betType {
	case RouletteSingle:
		if number < 0 || number > 36 {
			return nil, fmt.Errorf("single bet number must be between 0 and 36, got %d", number)
		}
	case RouletteDozen:
		if number < 1 || number > 3 {
			return nil, fmt.Errorf("dozen must be 1, 2 or 3, got %d", number)
		}
	case RouletteRed, RouletteBlack, RouletteOdd, RouletteEven, RouletteLow, RouletteHigh:
	default:
		return nil, fmt.Errorf("unknown roulette bet type: %s", betType)
	}

	spun := rng.Intn(37)
	isRed := redNumbers[spun]
	isBlack := spun != 0 && !isRed

	var multiplier int64
	switch betType {
	case RouletteSingle:
		if spun == number {
			multiplier = 36
		}
	case RouletteDozen:
		if spun >= (number-1)*12+1 && spun <= number*12 {
			multiplier = 3
		}
	case RouletteRed:
		if isRed {
			multiplier = 2
		}
	case RouletteBlack:
		if isBlack {
			multiplier = 2
		}
	case RouletteOdd:
		if spun != 0 && spun%2 == 1 {
			multiplier = 2
		}
	case RouletteEven:
		if spun != 0 && spun%2 == 0 {
			multiplier = 2
		}
	case RouletteLow:
		if spun >= 1 && spun <= 18 {
			multiplier = 2
		}
	case RouletteHigh:
		if spun >= 19 {
			multiplier = 2
		}
	}

	color := "green"
	if isRed {
		color = "red"
	} else if isBlack {
		color = "black"
	}

	outcome := models.OutcomeLose
	if multiplier > 0 {
		outcome = models.OutcomeWin
	}

	return &Result{
		Outcome: outcome,
		Payout:  bet * multiplier,
		Detail: map[string]any{
			"number": spun,
			"color":  color,
		},
	}, nil
}
