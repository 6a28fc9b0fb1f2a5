package games

import (
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// Baccarat sides
const (
	BaccaratPlayer = "player"
	BaccaratBanker = "banker"
	BaccaratTie    = "tie"
)

// baccaratPoints scores a hand: card values capped at 10, summed, mod 10
func baccaratPoints(hand []cards.Card) int {
	total := 0
	for _, c := range hand {
		v := c.Value()
		if v > 10 {
			v = 10
		}
		total += v
	}
	return total % 10
}

// PlayBaccarat deals two cards each to player and banker. A natural 8
// or 9 on either side skips all third cards; otherwise each side draws
// a third card while holding 5 points or less. The higher total wins.
// Winning player bets pay 2x, banker 1.95x (floored), tie 9x; a tie
// bet loses in full when either side wins.
func PlayBaccarat(deck *cards.Deck, bet int64, side string) (*Result, error) {
	switch side {
	case BaccaratPlayer, BaccaratBanker, BaccaratTie:
	default:
		return nil, fmt.Errorf("side must be player, banker or tie, got %q", side)
	}

	player := deck.Deal(2)
	banker := deck.Deal(2)

	if baccaratPoints(player) < 8 && baccaratPoints(banker) < 8 {
		if baccaratPoints(player) <= 5 {
			player = append(player, deck.Deal(1)...)
		}
		if baccaratPoints(banker) <= 5 {
			banker = append(banker, deck.Deal(1)...)
		}
	}

	playerPoints := baccaratPoints(player)
	bankerPoints := baccaratPoints(banker)

	winner := BaccaratTie
	if playerPoints > bankerPoints {
		winner = BaccaratPlayer
	} else if bankerPoints > playerPoints {
		winner = BaccaratBanker
	}

	outcome := models.OutcomeLose
	var payout int64
	if winner == side {
		outcome = models.OutcomeWin
		switch side {
		case BaccaratPlayer:
			payout = bet * 2
		case BaccaratBanker:
			payout = bet * 195 / 100
		case BaccaratTie:
			payout = bet * 9
		}
	}

	return &Result{
		Outcome: outcome,
		Payout:  payout,
		Detail: map[string]any{
			"player_hand":   handStrings(player),
			"banker_hand":   handStrings(banker),
			"player_points": playerPoints,
			"banker_points": bankerPoints,
			"winner":        winner,
		},
	}, nil
}
