package games

import (
	"errors"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// ErrInvalidAction reports a round action that is not legal in the
// round's current state
var ErrInvalidAction = errors.New("action not allowed in current state")

// Game names as persisted on bet rows
const (
	GameBlackjack       = "blackjack"
	GamePoker           = "poker"
	GameRoulette        = "roulette"
	GameSlots           = "slots"
	GameDice            = "dice"
	GameCoinflip        = "coinflip"
	GameCrash           = "crash"
	GameBaccarat        = "baccarat"
	GameWar             = "war"
	GameKeno            = "keno"
	GameHighLow         = "highlow"
	GameRussianRoulette = "russian_roulette"
)

// Result is the settled outcome of a single round. Payout is the total
// amount returned to the player including the stake, so a losing round
// always carries Payout 0 and a push returns exactly the bet. Detail
// holds the public round state for rendering and for the bet record.
type Result struct {
	Outcome models.Outcome
	Payout  int64
	Detail  map[string]any
}

// handStrings renders a hand for result details
func handStrings(hand []cards.Card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.String()
	}
	return out
}
