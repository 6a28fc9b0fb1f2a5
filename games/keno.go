package games

import (
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

const (
	kenoPicks     = 5
	kenoDrawCount = 20
	kenoPoolSize  = 80
)

// PlayKeno draws 20 numbers from 1-80 without replacement and pays by
// how many of the player's five picks hit: 5 pays 50x, 4 pays 10x,
// 3 pays 3x, 2 returns the stake, fewer loses.
func PlayKeno(rng Rand, bet int64, picks []int) (*Result, error) {
	if len(picks) != kenoPicks {
		return nil, fmt.Errorf("keno needs exactly %d picks, got %d", kenoPicks, len(picks))
	}
	picked := make(map[int]bool, kenoPicks)
	for _, p := range picks {
		if p < 1 || p > kenoPoolSize {
			return nil, fmt.Errorf("keno picks must be between 1 and %d, got %d", kenoPoolSize, p)
		}
		if picked[p] {
			return nil, fmt.Errorf("duplicate keno pick: %d", p)
		}
		picked[p] = true
	}

	pool := make([]int, kenoPoolSize)
	for i := range pool {
		pool[i] = i + 1
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	drawn := pool[:kenoDrawCount]

	matches := 0
	for _, n := range drawn {
		if picked[n] {
			matches++
		}
	}

	var multiplier int64
	switch matches {
	case 5:
		multiplier = 50
	case 4:
		multiplier = 10
	case 3:
		multiplier = 3
	case 2:
		multiplier = 1
	}

	outcome := models.OutcomeLose
	if multiplier > 0 {
		outcome = models.OutcomeWin
	}

	return &Result{
		Outcome: outcome,
		Payout:  bet * multiplier,
		Detail: map[string]any{
			"picks":   picks,
			"drawn":   append([]int{}, drawn...),
			"matches": matches,
		},
	}, nil
}
