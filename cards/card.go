package cards

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Rank represents a card rank
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Suits and Ranks define the composition of one 52-card set
var (
	Suits = []Suit{Hearts, Diamonds, Clubs, Spades}
	Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// Value returns the counting value of the card: numeric ranks at face
// value, J/Q/K as 10 and Ace as 11. Hand evaluators that track soft aces
// reduce the Ace contribution themselves.
func (c Card) Value() int {
	switch c.Rank {
	case Jack, Queen, King:
		return 10
	case Ace:
		return 11
	case Ten:
		return 10
	case Nine:
		return 9
	case Eight:
		return 8
	case Seven:
		return 7
	case Six:
		return 6
	case Five:
		return 5
	case Four:
		return 4
	case Three:
		return 3
	default:
		return 2
	}
}

// String returns the compact display form of the card, e.g. "A♠"
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}
