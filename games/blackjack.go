package games

import (
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// BlackjackState tracks where a blackjack round is in its lifecycle
type BlackjackState string

const (
	BlackjackDealt      BlackjackState = "DEALT"
	BlackjackPlayerTurn BlackjackState = "PLAYER_TURN"
	BlackjackDealerTurn BlackjackState = "DEALER_TURN"
	BlackjackSettled    BlackjackState = "SETTLED"
)

// Blackjack player actions
const (
	ActionHit        = "hit"
	ActionStand      = "stand"
	ActionDoubleDown = "double_down"
)

// HandValue sums card values counting every ace as 11, then converts
// aces to 1 one at a time while the total is over 21.
func HandValue(hand []cards.Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += c.Value()
		if c.Rank == cards.Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// BlackjackRound is one blackjack hand played against the dealer.
// The round settles itself on a natural, a bust, a stand or a double
// down; callers read the settlement from Result.
type BlackjackRound struct {
	deck  *cards.Deck
	state BlackjackState

	Bet        int64
	PlayerHand []cards.Card
	DealerHand []cards.Card
	Doubled    bool

	result *Result
}

// NewBlackjackRound deals two cards each to player and dealer. A player
// natural (two cards totalling 21) runs the dealer and settles
// immediately, skipping the player turn.
func NewBlackjackRound(deck *cards.Deck, bet int64) *BlackjackRound {
	r := &BlackjackRound{
		deck:       deck,
		state:      BlackjackDealt,
		Bet:        bet,
		PlayerHand: deck.Deal(2),
		DealerHand: deck.Deal(2),
	}

	if HandValue(r.PlayerHand) == 21 {
		r.playDealer()
		r.settle()
		return r
	}

	r.state = BlackjackPlayerTurn
	return r
}

// Hit draws one card for the player. Going over 21 busts the hand and
// settles the round as a loss.
func (r *BlackjackRound) Hit() error {
	if r.state != BlackjackPlayerTurn {
		return fmt.Errorf("%w: hit in state %s", ErrInvalidAction, r.state)
	}

	r.PlayerHand = append(r.PlayerHand, r.deck.Deal(1)...)
	if HandValue(r.PlayerHand) > 21 {
		r.settle()
	}
	return nil
}

// Stand ends the player turn, runs the dealer and settles
func (r *BlackjackRound) Stand() error {
	if r.state != BlackjackPlayerTurn {
		return fmt.Errorf("%w: stand in state %s", ErrInvalidAction, r.state)
	}

	r.playDealer()
	r.settle()
	return nil
}

// DoubleDown doubles the bet, draws exactly one card and then stands
// unless the draw busts. Only legal as the first action, while the
// player still holds two cards. The caller must reserve the matching
// funds before invoking it.
func (r *BlackjackRound) DoubleDown() error {
	if r.state != BlackjackPlayerTurn {
		return fmt.Errorf("%w: double down in state %s", ErrInvalidAction, r.state)
	}
	if len(r.PlayerHand) != 2 {
		return fmt.Errorf("%w: double down after hitting", ErrInvalidAction)
	}

	r.Doubled = true
	r.Bet *= 2
	r.PlayerHand = append(r.PlayerHand, r.deck.Deal(1)...)

	if HandValue(r.PlayerHand) > 21 {
		r.settle()
		return nil
	}

	r.playDealer()
	r.settle()
	return nil
}

// State returns the round's current state
func (r *BlackjackRound) State() BlackjackState {
	return r.state
}

// Settled reports whether the round has reached SETTLED
func (r *BlackjackRound) Settled() bool {
	return r.state == BlackjackSettled
}

// Result returns the settlement, or nil before the round settles
func (r *BlackjackRound) Result() *Result {
	return r.result
}

// playDealer draws for the dealer until 17 or more, standing on any 17
func (r *BlackjackRound) playDealer() {
	r.state = BlackjackDealerTurn
	for HandValue(r.DealerHand) < 17 {
		r.DealerHand = append(r.DealerHand, r.deck.Deal(1)...)
	}
}

// settle applies the payout table in precedence order: player bust,
// dealer bust, player natural, then value comparison.
func (r *BlackjackRound) settle() {
	r.state = BlackjackSettled

	playerValue := HandValue(r.PlayerHand)
	dealerValue := HandValue(r.DealerHand)
	playerNatural := len(r.PlayerHand) == 2 && playerValue == 21
	dealerNatural := len(r.DealerHand) == 2 && dealerValue == 21

	var outcome models.Outcome
	var payout int64
	switch {
	case playerValue > 21:
		outcome = models.OutcomeLose
	case dealerValue > 21:
		outcome = models.OutcomeWin
		payout = r.Bet * 2
	case playerNatural && !dealerNatural:
		outcome = models.OutcomeWin
		payout = r.Bet * 5 / 2
	case playerValue > dealerValue:
		outcome = models.OutcomeWin
		payout = r.Bet * 2
	case playerValue < dealerValue:
		outcome = models.OutcomeLose
	default:
		outcome = models.OutcomePush
		payout = r.Bet
	}

	r.result = &Result{
		Outcome: outcome,
		Payout:  payout,
		Detail: map[string]any{
			"player_hand":  handStrings(r.PlayerHand),
			"dealer_hand":  handStrings(r.DealerHand),
			"player_value": playerValue,
			"dealer_value": dealerValue,
			"doubled":      r.Doubled,
		},
	}
}
