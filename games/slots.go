package games

import "github.com/TheCodeVerseHub/Eigen-Bot/models"

// slotSymbols runs from most to least common; slotWeights and
// slotMultipliers are index-aligned with it.
var (
	slotSymbols     = []string{"🍒", "🍋", "🍊", "🍇", "🔔", "⭐", "💎", "7️⃣"}
	slotWeights     = []int{30, 25, 20, 15, 10, 8, 5, 2}
	slotMultipliers = []int64{3, 5, 8, 10, 15, 20, 50, 30}
)

// PlaySlots spins three independently weighted reels. Three of a kind
// pays the symbol's full multiplier; a pair involving the middle reel
// pays a third of the middle symbol's multiplier; a pair on the two
// outer reels alone pays nothing.
func PlaySlots(rng Rand, bet int64) *Result {
	reels := make([]string, 3)
	idx := make([]int, 3)
	for i := range reels {
		idx[i] = WeightedIndex(rng, slotWeights)
		reels[i] = slotSymbols[idx[i]]
	}

	var multiplier int64
	switch {
	case idx[0] == idx[1] && idx[1] == idx[2]:
		multiplier = slotMultipliers[idx[0]]
	case idx[0] == idx[1] || idx[1] == idx[2]:
		multiplier = slotMultipliers[idx[1]] / 3
	}

	outcome := models.OutcomeLose
	if multiplier > 0 {
		outcome = models.OutcomeWin
	}

	return &Result{
		Outcome: outcome,
		Payout:  bet * multiplier,
		Detail: map[string]any{
			"reels": reels,
		},
	}
}
