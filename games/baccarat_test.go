package games

import (
	"testing"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayBaccarat_InvalidSide(t *testing.T) {
	deck := stacked(
		c(cards.Two, cards.Spades), c(cards.Three, cards.Diamonds),
		c(cards.Four, cards.Clubs), c(cards.Five, cards.Hearts),
	)

	_, err := PlayBaccarat(deck, 100, "dealer")
	assert.Error(t, err)
}

func TestPlayBaccarat_NaturalSkipsThirdCards(t *testing.T) {
	// Player opens with a natural 8 (ace counts 10, so 10+8 mod 10);
	// the banker's 5 would otherwise draw
	deck := stacked(
		c(cards.Ace, cards.Spades), c(cards.Eight, cards.Diamonds),
		c(cards.Two, cards.Clubs), c(cards.Three, cards.Diamonds),
		c(cards.King, cards.Hearts),
	)

	result, err := PlayBaccarat(deck, 100, BaccaratPlayer)
	require.NoError(t, err)

	assert.Equal(t, 8, result.Detail["player_points"])
	assert.Equal(t, 5, result.Detail["banker_points"])
	assert.Len(t, result.Detail["player_hand"], 2)
	assert.Len(t, result.Detail["banker_hand"], 2)
	assert.Equal(t, BaccaratPlayer, result.Detail["winner"])
	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(200), result.Payout)
}

func TestPlayBaccarat_ThirdCardOnFiveOrLess(t *testing.T) {
	// Player holds 5 and draws; banker holds 7 and stands
	deck := stacked(
		c(cards.Two, cards.Spades), c(cards.Three, cards.Diamonds),
		c(cards.Four, cards.Clubs), c(cards.Three, cards.Hearts),
		c(cards.King, cards.Spades),
	)

	result, err := PlayBaccarat(deck, 100, BaccaratBanker)
	require.NoError(t, err)

	assert.Len(t, result.Detail["player_hand"], 3)
	assert.Len(t, result.Detail["banker_hand"], 2)
	assert.Equal(t, 5, result.Detail["player_points"])
	assert.Equal(t, 7, result.Detail["banker_points"])

	// Banker win pays 1.95x floored
	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(195), result.Payout)
}

func TestPlayBaccarat_BothSidesDraw(t *testing.T) {
	deck := stacked(
		c(cards.Two, cards.Spades), c(cards.Two, cards.Diamonds),
		c(cards.Ace, cards.Clubs), c(cards.Two, cards.Hearts),
		c(cards.Five, cards.Spades), c(cards.Nine, cards.Diamonds),
	)

	result, err := PlayBaccarat(deck, 100, BaccaratPlayer)
	require.NoError(t, err)

	assert.Len(t, result.Detail["player_hand"], 3)
	assert.Len(t, result.Detail["banker_hand"], 3)
	assert.Equal(t, 9, result.Detail["player_points"])
	assert.Equal(t, 1, result.Detail["banker_points"])
	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(200), result.Payout)
}

func TestPlayBaccarat_TiePaysNineTimes(t *testing.T) {
	deck := stacked(
		c(cards.Ace, cards.Spades), c(cards.Eight, cards.Diamonds),
		c(cards.Ten, cards.Clubs), c(cards.Eight, cards.Hearts),
	)

	result, err := PlayBaccarat(deck, 100, BaccaratTie)
	require.NoError(t, err)

	assert.Equal(t, BaccaratTie, result.Detail["winner"])
	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(900), result.Payout)
}

func TestPlayBaccarat_SideBetLosesWhenOtherSideWins(t *testing.T) {
	deck := stacked(
		c(cards.Ace, cards.Spades), c(cards.Eight, cards.Diamonds),
		c(cards.Two, cards.Clubs), c(cards.Three, cards.Diamonds),
		c(cards.King, cards.Hearts),
	)

	result, err := PlayBaccarat(deck, 100, BaccaratTie)
	require.NoError(t, err)

	assert.Equal(t, BaccaratPlayer, result.Detail["winner"])
	assert.Equal(t, models.OutcomeLose, result.Outcome)
	assert.Equal(t, int64(0), result.Payout)
}
