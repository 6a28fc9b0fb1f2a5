package games

import (
	"sort"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
)

// HandCategory orders poker hands from high card up to royal flush
type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handCategoryNames = [...]string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

func (c HandCategory) String() string {
	if c < 0 || int(c) >= len(handCategoryNames) {
		return "Unknown"
	}
	return handCategoryNames[c]
}

// pokerOrder maps ranks to their poker ordering value, ace high
var pokerOrder = map[cards.Rank]int{
	cards.Two:   2,
	cards.Three: 3,
	cards.Four:  4,
	cards.Five:  5,
	cards.Six:   6,
	cards.Seven: 7,
	cards.Eight: 8,
	cards.Nine:  9,
	cards.Ten:   10,
	cards.Jack:  11,
	cards.Queen: 12,
	cards.King:  13,
	cards.Ace:   14,
}

// HandRank is a totally ordered evaluation of a five-card hand:
// category first, then the descending card values compared position by
// position. In the wheel straight the ace counts as 1.
type HandRank struct {
	Category HandCategory
	Values   [5]int
}

// Compare orders two hand ranks. Positive means h beats other,
// negative means it loses, zero is a true tie.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		return int(h.Category) - int(other.Category)
	}
	for i := range h.Values {
		if h.Values[i] != other.Values[i] {
			return h.Values[i] - other.Values[i]
		}
	}
	return 0
}

// EvaluateFive ranks exactly five cards
func EvaluateFive(hand []cards.Card) HandRank {
	values := make([]int, 5)
	suits := make(map[cards.Suit]int, 4)
	counts := make(map[int]int, 5)
	for i, c := range hand {
		values[i] = pokerOrder[c.Rank]
		suits[c.Suit]++
		counts[values[i]]++
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	flush := len(suits) == 1
	straight, high := straightHigh(values)
	if straight && high == 5 {
		values = []int{5, 4, 3, 2, 1}
	}

	var category HandCategory
	switch {
	case straight && flush && high == 14:
		category = RoyalFlush
	case straight && flush:
		category = StraightFlush
	case hasCount(counts, 4):
		category = FourOfAKind
	case hasCount(counts, 3) && hasCount(counts, 2):
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case hasCount(counts, 3):
		category = ThreeOfAKind
	case pairCount(counts) == 2:
		category = TwoPair
	case pairCount(counts) == 1:
		category = OnePair
	default:
		category = HighCard
	}

	rank := HandRank{Category: category}
	copy(rank.Values[:], values)
	return rank
}

// EvaluateSeven finds the designated best five of seven cards: the
// subset with the highest category, ties between subsets broken by the
// greater descending value-list.
func EvaluateSeven(seven []cards.Card) HandRank {
	var best HandRank
	first := true

	hand := make([]cards.Card, 0, 5)
	for skip1 := 0; skip1 < len(seven); skip1++ {
		for skip2 := skip1 + 1; skip2 < len(seven); skip2++ {
			hand = hand[:0]
			for i, c := range seven {
				if i != skip1 && i != skip2 {
					hand = append(hand, c)
				}
			}

			rank := EvaluateFive(hand)
			if first || rank.Compare(best) > 0 {
				best = rank
				first = false
			}
		}
	}
	return best
}

// straightHigh reports whether five descending values form a straight
// and returns the high card, counting the wheel as a 5-high straight
func straightHigh(values []int) (bool, int) {
	consecutive := true
	for i := 1; i < len(values); i++ {
		if values[i-1]-values[i] != 1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true, values[0]
	}
	if values[0] == 14 && values[1] == 5 && values[2] == 4 && values[3] == 3 && values[4] == 2 {
		return true, 5
	}
	return false, 0
}

func hasCount(counts map[int]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

func pairCount(counts map[int]int) int {
	pairs := 0
	for _, c := range counts {
		if c == 2 {
			pairs++
		}
	}
	return pairs
}
