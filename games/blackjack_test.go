package games

import (
	"testing"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stacked builds a deck that deals the given cards in order
func stacked(cardList ...cards.Card) *cards.Deck {
	return &cards.Deck{Cards: cardList}
}

func c(rank cards.Rank, suit cards.Suit) cards.Card {
	return cards.Card{Rank: rank, Suit: suit}
}

func TestHandValue(t *testing.T) {
	assert.Equal(t, 19, HandValue([]cards.Card{c(cards.Ten, cards.Spades), c(cards.Nine, cards.Diamonds)}))
	assert.Equal(t, 16, HandValue([]cards.Card{c(cards.Ace, cards.Spades), c(cards.Five, cards.Diamonds)}))
	assert.Equal(t, 21, HandValue([]cards.Card{c(cards.Ace, cards.Spades), c(cards.King, cards.Diamonds)}))

	// Aces drop to 1 one at a time once the total passes 21
	assert.Equal(t, 16, HandValue([]cards.Card{c(cards.Ace, cards.Spades), c(cards.King, cards.Diamonds), c(cards.Five, cards.Clubs)}))
	assert.Equal(t, 12, HandValue([]cards.Card{c(cards.Ace, cards.Spades), c(cards.Ace, cards.Diamonds)}))
	assert.Equal(t, 13, HandValue([]cards.Card{c(cards.Ace, cards.Spades), c(cards.Ace, cards.Diamonds), c(cards.Ace, cards.Clubs), c(cards.King, cards.Hearts)}))
}

func TestBlackjackRound_NaturalSettlesImmediately(t *testing.T) {
	deck := stacked(
		c(cards.Ace, cards.Spades), c(cards.King, cards.Spades),
		c(cards.Ten, cards.Diamonds), c(cards.Seven, cards.Hearts),
	)

	round := NewBlackjackRound(deck, 100)

	assert.Equal(t, BlackjackSettled, round.State())
	assert.True(t, round.Settled())

	result := round.Result()
	require.NotNil(t, result)
	assert.Equal(t, models.OutcomeWin, result.Outcome)
	assert.Equal(t, int64(250), result.Payout)
}

func TestBlackjackRound_NaturalPayoutFloors(t *testing.T) {
	deck := stacked(
		c(cards.Ace, cards.Spades), c(cards.King, cards.Spades),
		c(cards.Ten, cards.Diamonds), c(cards.Seven, cards.Hearts),
	)

	round := NewBlackjackRound(deck, 101)

	require.True(t, round.Settled())
	assert.Equal(t, int64(252), round.Result().Payout)
}

func TestBlackjackRound_BothNaturalsPush(t *testing.T) {
	deck := stacked(
		c(cards.Ace, cards.Spades), c(cards.King, cards.Spades),
		c(cards.Ace, cards.Diamonds), c(cards.King, cards.Diamonds),
	)

	round := NewBlackjackRound(deck, 100)

	require.True(t, round.Settled())
	assert.Equal(t, models.OutcomePush, round.Result().Outcome)
	assert.Equal(t, int64(100), round.Result().Payout)
}

func TestBlackjackRound_NaturalBeatsDealerTwentyOne(t *testing.T) {
	deck := stacked(
		c(cards.Ace, cards.Spades), c(cards.King, cards.Spades),
		c(cards.Ten, cards.Diamonds), c(cards.Six, cards.Hearts),
		c(cards.Five, cards.Diamonds),
	)

	round := NewBlackjackRound(deck, 100)

	require.True(t, round.Settled())
	assert.Equal(t, 21, HandValue(round.DealerHand))
	assert.Len(t, round.DealerHand, 3)
	assert.Equal(t, models.OutcomeWin, round.Result().Outcome)
	assert.Equal(t, int64(250), round.Result().Payout)
}

func TestBlackjackRound_HitBustLosesWithoutDealerPlay(t *testing.T) {
	deck := stacked(
		c(cards.Ten, cards.Spades), c(cards.Nine, cards.Diamonds),
		c(cards.Five, cards.Clubs), c(cards.Nine, cards.Clubs),
		c(cards.King, cards.Hearts),
	)

	round := NewBlackjackRound(deck, 100)
	require.Equal(t, BlackjackPlayerTurn, round.State())

	require.NoError(t, round.Hit())

	assert.True(t, round.Settled())
	assert.Equal(t, models.OutcomeLose, round.Result().Outcome)
	assert.Equal(t, int64(0), round.Result().Payout)
	assert.Len(t, round.DealerHand, 2)
}

func TestBlackjackRound_HitThenStand(t *testing.T) {
	deck := stacked(
		c(cards.Five, cards.Spades), c(cards.Nine, cards.Diamonds),
		c(cards.Ten, cards.Hearts), c(cards.Eight, cards.Clubs),
		c(cards.Six, cards.Hearts),
	)

	round := NewBlackjackRound(deck, 100)

	require.NoError(t, round.Hit())
	assert.Equal(t, BlackjackPlayerTurn, round.State())
	assert.Equal(t, 20, HandValue(round.PlayerHand))

	require.NoError(t, round.Stand())

	assert.True(t, round.Settled())
	assert.Equal(t, models.OutcomeWin, round.Result().Outcome)
	assert.Equal(t, int64(200), round.Result().Payout)
}

func TestBlackjackRound_DealerDrawsToSeventeen(t *testing.T) {
	deck := stacked(
		c(cards.Ten, cards.Spades), c(cards.Ten, cards.Diamonds),
		c(cards.Ten, cards.Hearts), c(cards.Six, cards.Clubs),
		c(cards.Two, cards.Spades),
	)

	round := NewBlackjackRound(deck, 100)
	require.NoError(t, round.Stand())

	assert.Equal(t, 18, HandValue(round.DealerHand))
	assert.Len(t, round.DealerHand, 3)
	assert.Equal(t, models.OutcomeWin, round.Result().Outcome)
	assert.Equal(t, int64(200), round.Result().Payout)
}

func TestBlackjackRound_DealerBustPaysDouble(t *testing.T) {
	deck := stacked(
		c(cards.Ten, cards.Spades), c(cards.Eight, cards.Diamonds),
		c(cards.Ten, cards.Hearts), c(cards.Six, cards.Clubs),
		c(cards.King, cards.Diamonds),
	)

	round := NewBlackjackRound(deck, 100)
	require.NoError(t, round.Stand())

	assert.Greater(t, HandValue(round.DealerHand), 21)
	assert.Equal(t, models.OutcomeWin, round.Result().Outcome)
	assert.Equal(t, int64(200), round.Result().Payout)
}

func TestBlackjackRound_EqualValuesPush(t *testing.T) {
	deck := stacked(
		c(cards.Ten, cards.Spades), c(cards.Ten, cards.Diamonds),
		c(cards.Ten, cards.Hearts), c(cards.Queen, cards.Clubs),
	)

	round := NewBlackjackRound(deck, 100)
	require.NoError(t, round.Stand())

	assert.Equal(t, models.OutcomePush, round.Result().Outcome)
	assert.Equal(t, int64(100), round.Result().Payout)
}

func TestBlackjackRound_DealerStandsOnSoftSeventeen(t *testing.T) {
	deck := stacked(
		c(cards.Ten, cards.Spades), c(cards.Nine, cards.Diamonds),
		c(cards.Ace, cards.Hearts), c(cards.Six, cards.Clubs),
		c(cards.Five, cards.Clubs),
	)

	round := NewBlackjackRound(deck, 100)
	require.NoError(t, round.Stand())

	assert.Len(t, round.DealerHand, 2)
	assert.Equal(t, 17, HandValue(round.DealerHand))
	assert.Equal(t, models.OutcomeWin, round.Result().Outcome)
}

func TestBlackjackRound_DoubleDown(t *testing.T) {
	deck := stacked(
		c(cards.Five, cards.Spades), c(cards.Six, cards.Diamonds),
		c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Clubs),
		c(cards.King, cards.Spades),
	)

	round := NewBlackjackRound(deck, 100)
	require.NoError(t, round.DoubleDown())

	assert.True(t, round.Doubled)
	assert.Equal(t, int64(200), round.Bet)
	assert.Len(t, round.PlayerHand, 3)
	assert.Equal(t, 21, HandValue(round.PlayerHand))

	// A doubled 21 on three cards pays 2x, not the natural rate
	assert.Equal(t, models.OutcomeWin, round.Result().Outcome)
	assert.Equal(t, int64(400), round.Result().Payout)
}

func TestBlackjackRound_DoubleDownBust(t *testing.T) {
	deck := stacked(
		c(cards.Ten, cards.Spades), c(cards.Six, cards.Diamonds),
		c(cards.Ten, cards.Hearts), c(cards.Nine, cards.Clubs),
		c(cards.King, cards.Spades),
	)

	round := NewBlackjackRound(deck, 100)
	require.NoError(t, round.DoubleDown())

	assert.True(t, round.Settled())
	assert.Equal(t, models.OutcomeLose, round.Result().Outcome)
	assert.Equal(t, int64(0), round.Result().Payout)
	assert.Len(t, round.DealerHand, 2)
}

func TestBlackjackRound_DoubleDownAfterHitRejected(t *testing.T) {
	deck := stacked(
		c(cards.Five, cards.Spades), c(cards.Two, cards.Diamonds),
		c(cards.Ten, cards.Hearts), c(cards.Nine, cards.Clubs),
		c(cards.Two, cards.Clubs), c(cards.Ten, cards.Diamonds),
	)

	round := NewBlackjackRound(deck, 100)
	require.NoError(t, round.Hit())

	err := round.DoubleDown()
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, BlackjackPlayerTurn, round.State())
	assert.Equal(t, int64(100), round.Bet)
}

func TestBlackjackRound_ActionsAfterSettlementRejected(t *testing.T) {
	deck := stacked(
		c(cards.Ace, cards.Spades), c(cards.King, cards.Spades),
		c(cards.Ten, cards.Diamonds), c(cards.Seven, cards.Hearts),
	)

	round := NewBlackjackRound(deck, 100)
	require.True(t, round.Settled())

	assert.ErrorIs(t, round.Hit(), ErrInvalidAction)
	assert.ErrorIs(t, round.Stand(), ErrInvalidAction)
	assert.ErrorIs(t, round.DoubleDown(), ErrInvalidAction)
}

func TestBlackjackRound_ResultDetail(t *testing.T) {
	deck := stacked(
		c(cards.Ten, cards.Spades), c(cards.Ten, cards.Diamonds),
		c(cards.Ten, cards.Hearts), c(cards.Queen, cards.Clubs),
	)

	round := NewBlackjackRound(deck, 100)
	require.NoError(t, round.Stand())

	detail := round.Result().Detail
	assert.Equal(t, []string{"10♠", "10♦"}, detail["player_hand"])
	assert.Equal(t, []string{"10♥", "Q♣"}, detail["dealer_hand"])
	assert.Equal(t, 20, detail["player_value"])
	assert.Equal(t, 20, detail["dealer_value"])
	assert.Equal(t, false, detail["doubled"])
}
