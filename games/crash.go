package games

import (
	"fmt"
	"math"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// Crash target multiplier bounds
const (
	CrashMaxTarget = 100.0
)

// PlayCrash draws a crash point as the cube root of uniform(1,100),
// which biases the round toward low multipliers, and wins when the
// pre-committed target is at or below it. A win pays floor(bet x
// target).
func PlayCrash(rng Rand, bet int64, target float64) (*Result, error) {
	if target <= 1 || target > CrashMaxTarget {
		return nil, fmt.Errorf("target multiplier must be greater than 1 and at most %v, got %.2f", CrashMaxTarget, target)
	}

	crashPoint := math.Round(math.Cbrt(1+rng.Float64()*99)*100) / 100

	outcome := models.OutcomeLose
	var payout int64
	if target <= crashPoint {
		outcome = models.OutcomeWin
		payout = int64(float64(bet) * target)
	}

	return &Result{
		Outcome: outcome,
		Payout:  payout,
		Detail: map[string]any{
			"crash_point": crashPoint,
			"target":      target,
		},
	}, nil
}
