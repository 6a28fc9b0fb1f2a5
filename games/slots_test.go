package games

import (
	"testing"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"

	"github.com/stretchr/testify/assert"
)

// Weight bands for the scripted rolls: 0-29 cherry, 30-54 lemon,
// 55-74 orange, 90-99 bell, 100-107 star, 108-112 diamond, 113-114 seven

func TestPlaySlots_ThreeOfAKind(t *testing.T) {
	rng := &scriptedRand{ints: []int{0, 0, 0}}

	result := PlaySlots(rng, 100)

	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(300), result.Payout)
	assert.Equal(t, []string{"🍒", "🍒", "🍒"}, result.Detail["reels"])
}

func TestPlaySlots_TripleSeven(t *testing.T) {
	rng := &scriptedRand{ints: []int{113, 113, 113}}

	result := PlaySlots(rng, 100)

	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(3000), result.Payout)
}

func TestPlaySlots_TripleDiamond(t *testing.T) {
	rng := &scriptedRand{ints: []int{110, 110, 110}}

	result := PlaySlots(rng, 100)

	assert.Equal(t, int64(5000), result.Payout)
	assert.Equal(t, []string{"💎", "💎", "💎"}, result.Detail["reels"])
}

func TestPlaySlots_PairPaysThirdOfMiddleSymbol(t *testing.T) {
	// Stars on the left and middle reels: 20 / 3 = 6
	rng := &scriptedRand{ints: []int{100, 100, 0}}
	result := PlaySlots(rng, 100)
	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(600), result.Payout)

	// Cherries on the middle and right reels: 3 / 3 = 1, stake back
	rng = &scriptedRand{ints: []int{30, 0, 0}}
	result = PlaySlots(rng, 100)
	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(100), result.Payout)
}

func TestPlaySlots_OuterPairPaysNothing(t *testing.T) {
	rng := &scriptedRand{ints: []int{0, 30, 0}}

	result := PlaySlots(rng, 100)

	assert.Equal(t, models.OutcomeLose, result.Outcome)
	assert.Equal(t, int64(0), result.Payout)
	assert.Equal(t, []string{"🍒", "🍋", "🍒"}, result.Detail["reels"])
}

func TestPlaySlots_NoMatch(t *testing.T) {
	rng := &scriptedRand{ints: []int{0, 30, 55}}

	result := PlaySlots(rng, 100)

	assert.Equal(t, models.OutcomeLose, result.Outcome)
	assert.Equal(t, int64(0), result.Payout)
	assert.Equal(t, []string{"🍒", "🍋", "🍊"}, result.Detail["reels"])
}
