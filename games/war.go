package games

import (
	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// PlayWar deals one card each to player and house. The higher counting
// value wins 2x; equal values push the bet back. Face cards all count
// 10 and push against each other.
func PlayWar(deck *cards.Deck, bet int64) *Result {
	player := deck.Deal(1)[0]
	house := deck.Deal(1)[0]

	var outcome models.Outcome
	var payout int64
	switch {
	case player.Value() > house.Value():
		outcome = models.OutcomeWin
		payout = bet * 2
	case player.Value() < house.Value():
		outcome = models.OutcomeLose
	default:
		outcome = models.OutcomePush
		payout = bet
	}

	return &Result{
		Outcome: outcome,
		Payout:  payout,
		Detail: map[string]any{
			"player_card": player.String(),
			"house_card":  house.String(),
		},
	}
}
