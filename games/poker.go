package games

import (
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// PokerStage tracks where a hold'em round is in its street sequence
type PokerStage string

const (
	PokerPreFlop  PokerStage = "PRE_FLOP"
	PokerFlop     PokerStage = "FLOP"
	PokerTurn     PokerStage = "TURN"
	PokerRiver    PokerStage = "RIVER"
	PokerShowdown PokerStage = "SHOWDOWN"
)

// Poker player actions
const (
	ActionCall = "call"
	ActionFold = "fold"
)

// PokerRound is heads-up Texas hold'em against the house. Each call
// advances one street; calling the river runs the showdown. Folding at
// any street forfeits the bet.
type PokerRound struct {
	deck  *cards.Deck
	stage PokerStage

	Bet        int64
	PlayerHole []cards.Card
	HouseHole  []cards.Card
	Community  []cards.Card

	result *Result
}

// NewPokerRound deals two hole cards each to player and house
func NewPokerRound(deck *cards.Deck, bet int64) *PokerRound {
	return &PokerRound{
		deck:       deck,
		stage:      PokerPreFlop,
		Bet:        bet,
		PlayerHole: deck.Deal(2),
		HouseHole:  deck.Deal(2),
	}
}

// Call advances to the next street, dealing its community cards, and
// runs the showdown after the river
func (r *PokerRound) Call() error {
	if r.result != nil {
		return fmt.Errorf("%w: call after settlement", ErrInvalidAction)
	}

	switch r.stage {
	case PokerPreFlop:
		r.Community = append(r.Community, r.deck.Deal(3)...)
		r.stage = PokerFlop
	case PokerFlop:
		r.Community = append(r.Community, r.deck.Deal(1)...)
		r.stage = PokerTurn
	case PokerTurn:
		r.Community = append(r.Community, r.deck.Deal(1)...)
		r.stage = PokerRiver
	case PokerRiver:
		r.showdown()
	default:
		return fmt.Errorf("%w: call in stage %s", ErrInvalidAction, r.stage)
	}
	return nil
}

// Fold forfeits the bet and ends the round with payout 0
func (r *PokerRound) Fold() error {
	if r.result != nil {
		return fmt.Errorf("%w: fold after settlement", ErrInvalidAction)
	}

	r.result = &Result{
		Outcome: models.OutcomeFold,
		Detail: map[string]any{
			"player_hole": handStrings(r.PlayerHole),
			"community":   handStrings(r.Community),
			"folded_at":   string(r.stage),
		},
	}
	return nil
}

// Stage returns the round's current street
func (r *PokerRound) Stage() PokerStage {
	return r.stage
}

// Settled reports whether the round has a settlement
func (r *PokerRound) Settled() bool {
	return r.result != nil
}

// Result returns the settlement, or nil while the round is live
func (r *PokerRound) Result() *Result {
	return r.result
}

// showdown evaluates both seven-card hands and settles: win pays the
// pot (2x bet), a true tie returns the bet, a loss pays nothing
func (r *PokerRound) showdown() {
	r.stage = PokerShowdown

	playerSeven := append(append([]cards.Card{}, r.PlayerHole...), r.Community...)
	houseSeven := append(append([]cards.Card{}, r.HouseHole...), r.Community...)
	playerRank := EvaluateSeven(playerSeven)
	houseRank := EvaluateSeven(houseSeven)

	var outcome models.Outcome
	var payout int64
	switch cmp := playerRank.Compare(houseRank); {
	case cmp > 0:
		outcome = models.OutcomeWin
		payout = r.Bet * 2
	case cmp < 0:
		outcome = models.OutcomeLose
	default:
		outcome = models.OutcomePush
		payout = r.Bet
	}

	r.result = &Result{
		Outcome: outcome,
		Payout:  payout,
		Detail: map[string]any{
			"player_hole": handStrings(r.PlayerHole),
			"house_hole":  handStrings(r.HouseHole),
			"community":   handStrings(r.Community),
			"player_hand": playerRank.Category.String(),
			"house_hand":  houseRank.Category.String(),
		},
	}
}
