package games

import "github.com/TheCodeVerseHub/Eigen-Bot/models"

// PlayRussianRoulette spins a six-chamber cylinder holding one round.
// Landing on it forfeits the stake; surviving pays 5x.
func PlayRussianRoulette(rng Rand, bet int64) *Result {
	survived := rng.Intn(6) != 0

	outcome := models.OutcomeLose
	var payout int64
	if survived {
		outcome = models.OutcomeWin
		payout = bet * 5
	}

	return &Result{
		Outcome: outcome,
		Payout:  payout,
		Detail: map[string]any{
			"survived": survived,
		},
	}
}
