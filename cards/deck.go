package cards

import (
	"math/rand"
	"time"
)

const (
	// MinSets and MaxSets bound the number of 52-card sets in a deck
	MinSets = 1
	MaxSets = 6
)

// Deck is a shuffled shoe of one or more 52-card sets
type Deck struct {
	Cards []Card
	sets  int
	rng   *rand.Rand
}

// Option configures a Deck
type Option func(*Deck)

// WithRand injects the deck's randomness source. Tests use a seeded
// source to make every shuffle and deal deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = rng
	}
}

// New creates a shuffled deck built from the given number of 52-card
// sets, clamped to [MinSets, MaxSets].
func New(sets int, opts ...Option) *Deck {
	if sets < MinSets {
		sets = MinSets
	}
	if sets > MaxSets {
		sets = MaxSets
	}

	d := &Deck{sets: sets}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d.reset()
	return d
}

// reset rebuilds the full shoe and shuffles it
func (d *Deck) reset() {
	d.Cards = d.Cards[:0]
	for i := 0; i < d.sets; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				d.Cards = append(d.Cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal removes and returns the top n cards. If fewer than n cards
// remain the whole shoe is rebuilt and reshuffled before dealing, so a
// deal never comes up short.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 {
		return nil
	}
	if len(d.Cards) < n {
		d.reset()
	}

	dealt := make([]Card, n)
	copy(dealt, d.Cards[:n])
	d.Cards = d.Cards[n:]
	return dealt
}

// Remaining reports how many cards are left before the next rebuild
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
