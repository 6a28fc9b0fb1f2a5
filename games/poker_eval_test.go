package games

import (
	"math/rand"
	"testing"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateFive_Categories(t *testing.T) {
	tests := []struct {
		name       string
		hand       []cards.Card
		category   HandCategory
		wantValues [5]int
	}{
		{
			name: "high card",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.King, cards.Diamonds), c(cards.Nine, cards.Clubs),
				c(cards.Five, cards.Hearts), c(cards.Two, cards.Spades),
			},
			category:   HighCard,
			wantValues: [5]int{14, 13, 9, 5, 2},
		},
		{
			name: "one pair",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.Ace, cards.Diamonds), c(cards.Nine, cards.Clubs),
				c(cards.Five, cards.Hearts), c(cards.Two, cards.Spades),
			},
			category:   OnePair,
			wantValues: [5]int{14, 14, 9, 5, 2},
		},
		{
			name: "two pair",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.Ace, cards.Diamonds), c(cards.Nine, cards.Clubs),
				c(cards.Nine, cards.Hearts), c(cards.Two, cards.Spades),
			},
			category:   TwoPair,
			wantValues: [5]int{14, 14, 9, 9, 2},
		},
		{
			name: "three of a kind",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.Ace, cards.Diamonds), c(cards.Ace, cards.Clubs),
				c(cards.Nine, cards.Hearts), c(cards.Two, cards.Spades),
			},
			category:   ThreeOfAKind,
			wantValues: [5]int{14, 14, 14, 9, 2},
		},
		{
			name: "straight",
			hand: []cards.Card{
				c(cards.Nine, cards.Spades), c(cards.Eight, cards.Diamonds), c(cards.Seven, cards.Clubs),
				c(cards.Six, cards.Hearts), c(cards.Five, cards.Spades),
			},
			category:   Straight,
			wantValues: [5]int{9, 8, 7, 6, 5},
		},
		{
			name: "wheel straight ranks ace low",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.Two, cards.Diamonds), c(cards.Three, cards.Clubs),
				c(cards.Four, cards.Hearts), c(cards.Five, cards.Spades),
			},
			category:   Straight,
			wantValues: [5]int{5, 4, 3, 2, 1},
		},
		{
			name: "flush",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.Jack, cards.Spades), c(cards.Nine, cards.Spades),
				c(cards.Five, cards.Spades), c(cards.Two, cards.Spades),
			},
			category:   Flush,
			wantValues: [5]int{14, 11, 9, 5, 2},
		},
		{
			name: "full house",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.Ace, cards.Diamonds), c(cards.Ace, cards.Clubs),
				c(cards.Nine, cards.Hearts), c(cards.Nine, cards.Spades),
			},
			category:   FullHouse,
			wantValues: [5]int{14, 14, 14, 9, 9},
		},
		{
			name: "four of a kind",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.Ace, cards.Diamonds), c(cards.Ace, cards.Clubs),
				c(cards.Ace, cards.Hearts), c(cards.Nine, cards.Spades),
			},
			category:   FourOfAKind,
			wantValues: [5]int{14, 14, 14, 14, 9},
		},
		{
			name: "straight flush",
			hand: []cards.Card{
				c(cards.Nine, cards.Spades), c(cards.Eight, cards.Spades), c(cards.Seven, cards.Spades),
				c(cards.Six, cards.Spades), c(cards.Five, cards.Spades),
			},
			category:   StraightFlush,
			wantValues: [5]int{9, 8, 7, 6, 5},
		},
		{
			name: "steel wheel is a straight flush, not royal",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.Two, cards.Spades), c(cards.Three, cards.Spades),
				c(cards.Four, cards.Spades), c(cards.Five, cards.Spades),
			},
			category:   StraightFlush,
			wantValues: [5]int{5, 4, 3, 2, 1},
		},
		{
			name: "royal flush",
			hand: []cards.Card{
				c(cards.Ace, cards.Spades), c(cards.King, cards.Spades), c(cards.Queen, cards.Spades),
				c(cards.Jack, cards.Spades), c(cards.Ten, cards.Spades),
			},
			category:   RoyalFlush,
			wantValues: [5]int{14, 13, 12, 11, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := EvaluateFive(tt.hand)
			assert.Equal(t, tt.category, rank.Category)
			assert.Equal(t, tt.wantValues, rank.Values)
		})
	}
}

func TestHandRank_Compare_CategoryDominates(t *testing.T) {
	quads := HandRank{Category: FourOfAKind, Values: [5]int{2, 2, 2, 2, 3}}
	boat := HandRank{Category: FullHouse, Values: [5]int{14, 14, 14, 13, 13}}

	assert.Positive(t, quads.Compare(boat))
	assert.Negative(t, boat.Compare(quads))
}

func TestHandRank_Compare_DescendingValueOrder(t *testing.T) {
	// Within a category the sorted value-lists decide, position by
	// position, so a pair of threes with an ace kicker beats a pair of
	// kings with lower side cards
	threesWithAce := EvaluateFive([]cards.Card{
		c(cards.Three, cards.Spades), c(cards.Three, cards.Diamonds), c(cards.Ace, cards.Clubs),
		c(cards.King, cards.Hearts), c(cards.Queen, cards.Spades),
	})
	kings := EvaluateFive([]cards.Card{
		c(cards.King, cards.Spades), c(cards.King, cards.Diamonds), c(cards.Nine, cards.Clubs),
		c(cards.Eight, cards.Hearts), c(cards.Seven, cards.Spades),
	})

	require.Equal(t, OnePair, threesWithAce.Category)
	require.Equal(t, OnePair, kings.Category)
	assert.Positive(t, threesWithAce.Compare(kings))
}

func TestHandRank_Compare_WheelBelowSixHighStraight(t *testing.T) {
	wheel := EvaluateFive([]cards.Card{
		c(cards.Ace, cards.Spades), c(cards.Two, cards.Diamonds), c(cards.Three, cards.Clubs),
		c(cards.Four, cards.Hearts), c(cards.Five, cards.Spades),
	})
	sixHigh := EvaluateFive([]cards.Card{
		c(cards.Two, cards.Spades), c(cards.Three, cards.Diamonds), c(cards.Four, cards.Clubs),
		c(cards.Five, cards.Hearts), c(cards.Six, cards.Spades),
	})

	assert.Negative(t, wheel.Compare(sixHigh))
}

func TestHandRank_Compare_Tie(t *testing.T) {
	a := EvaluateFive([]cards.Card{
		c(cards.Ace, cards.Spades), c(cards.King, cards.Diamonds), c(cards.Nine, cards.Clubs),
		c(cards.Five, cards.Hearts), c(cards.Two, cards.Spades),
	})
	b := EvaluateFive([]cards.Card{
		c(cards.Ace, cards.Hearts), c(cards.King, cards.Clubs), c(cards.Nine, cards.Diamonds),
		c(cards.Five, cards.Spades), c(cards.Two, cards.Hearts),
	})

	assert.Zero(t, a.Compare(b))
}

func TestEvaluateSeven_PicksBestSubset(t *testing.T) {
	// Flush and straight both available: the flush wins
	rank := EvaluateSeven([]cards.Card{
		c(cards.Two, cards.Spades), c(cards.Four, cards.Spades), c(cards.Six, cards.Spades),
		c(cards.Eight, cards.Spades), c(cards.Ten, cards.Spades),
		c(cards.Nine, cards.Diamonds), c(cards.Seven, cards.Diamonds),
	})
	assert.Equal(t, Flush, rank.Category)
	assert.Equal(t, [5]int{10, 8, 6, 4, 2}, rank.Values)
}

func TestEvaluateSeven_KeepsHighestKickers(t *testing.T) {
	rank := EvaluateSeven([]cards.Card{
		c(cards.Ace, cards.Spades), c(cards.Ace, cards.Diamonds), c(cards.King, cards.Clubs),
		c(cards.Queen, cards.Hearts), c(cards.Jack, cards.Spades),
		c(cards.Three, cards.Diamonds), c(cards.Two, cards.Clubs),
	})
	assert.Equal(t, OnePair, rank.Category)
	assert.Equal(t, [5]int{14, 14, 13, 12, 11}, rank.Values)
}

func TestEvaluateSeven_SteelWheel(t *testing.T) {
	rank := EvaluateSeven([]cards.Card{
		c(cards.Ace, cards.Spades), c(cards.Two, cards.Spades), c(cards.Three, cards.Spades),
		c(cards.Four, cards.Spades), c(cards.Five, cards.Spades),
		c(cards.King, cards.Diamonds), c(cards.King, cards.Clubs),
	})
	assert.Equal(t, StraightFlush, rank.Category)
	assert.Equal(t, [5]int{5, 4, 3, 2, 1}, rank.Values)
}

// referenceCard converts to the paulhankin/poker representation, which
// numbers ranks 1 (ace) through 13 (king)
func referenceCard(t *testing.T, card cards.Card) poker.Card {
	t.Helper()

	suits := map[cards.Suit]poker.Suit{
		cards.Clubs:    poker.Club,
		cards.Diamonds: poker.Diamond,
		cards.Hearts:   poker.Heart,
		cards.Spades:   poker.Spade,
	}
	ranks := map[cards.Rank]poker.Rank{
		cards.Ace: 1, cards.Two: 2, cards.Three: 3, cards.Four: 4,
		cards.Five: 5, cards.Six: 6, cards.Seven: 7, cards.Eight: 8,
		cards.Nine: 9, cards.Ten: 10, cards.Jack: 11, cards.Queen: 12,
		cards.King: 13,
	}

	ref, err := poker.MakeCard(suits[card.Suit], ranks[card.Rank])
	require.NoError(t, err)
	return ref
}

func TestEvaluateSeven_CategoryOrderingMatchesReference(t *testing.T) {
	deck := cards.New(1, cards.WithRand(rand.New(rand.NewSource(7))))

	type evaluated struct {
		mine HandRank
		ref  int16
	}

	hands := make([]evaluated, 0, 200)
	for i := 0; i < 200; i++ {
		seven := deck.Deal(7)
		var ref [7]poker.Card
		for j, card := range seven {
			ref[j] = referenceCard(t, card)
		}
		hands = append(hands, evaluated{
			mine: EvaluateSeven(seven),
			ref:  poker.Eval7(&ref),
		})
	}

	// Wherever our categories differ, the reference evaluator must
	// order the two hands the same way
	for i := 0; i < len(hands); i++ {
		for j := i + 1; j < len(hands); j++ {
			a, b := hands[i], hands[j]
			switch {
			case a.mine.Category > b.mine.Category:
				assert.Greater(t, a.ref, b.ref,
					"hand %d (%s) vs hand %d (%s)", i, a.mine.Category, j, b.mine.Category)
			case a.mine.Category < b.mine.Category:
				assert.Less(t, a.ref, b.ref,
					"hand %d (%s) vs hand %d (%s)", i, a.mine.Category, j, b.mine.Category)
			}
		}
	}
}
