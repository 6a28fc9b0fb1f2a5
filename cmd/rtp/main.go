// Command rtp runs an offline Monte-Carlo simulation over every game
// engine and reports the observed return-to-player per game, plus a
// uniformity check on the randomness source the engines draw from.
//
// Card games run against a live shoe that reshuffles when it runs
// short, so long runs include the same card-removal effects players
// see. Games with a decision point use a fixed strategy: blackjack
// hits below 17, poker calls every street to showdown.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/games"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// chiSquaredCritical is the 95% critical value for 9 degrees of freedom
const chiSquaredCritical = 16.92

func main() {
	trials := flag.Int("trials", 100000, "rounds simulated per game")
	stake := flag.Int64("bet", 1000, "stake per simulated round")
	seed := flag.Int64("seed", 0, "randomness seed, 0 picks the current time")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	banner()
	pterm.Info.Printfln("Simulating %d rounds per game at a %d coin stake (seed %d)", *trials, *stake, *seed)
	pterm.Println()

	rows := pterm.TableData{{"Game", "Win %", "Push %", "RTP %", "House Edge %"}}
	for _, sim := range simulations(*stake) {
		t, err := run(sim, rng, *trials, *stake)
		if err != nil {
			pterm.Error.Printfln("%s: %v", sim.name, err)
			os.Exit(1)
		}
		rows = append(rows, []string{
			sim.name,
			fmt.Sprintf("%.2f", t.winRate()*100),
			fmt.Sprintf("%.2f", t.pushRate()*100),
			fmt.Sprintf("%.2f", t.rtp()*100),
			fmt.Sprintf("%.2f", (1-t.rtp())*100),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(rows).Render()

	pterm.Println()
	uniformityReport(rng, *trials)
}

func banner() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("RTP", pterm.FgLightGreen.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
}

// simulation plays one round of a game with a fixed strategy. Engines
// that draw numbers take the shared source; card engines deal from the
// shoe and ignore it.
type simulation struct {
	name string
	play func(rng games.Rand, deck *cards.Deck) (*games.Result, error)
}

func simulations(bet int64) []simulation {
	kenoPicks := []int{4, 17, 23, 55, 80}
	return []simulation{
		{"coinflip (heads)", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlayCoinflip(rng, bet, games.CoinHeads)
		}},
		{"dice (over)", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlayDice(rng, bet, games.DiceOver)
		}},
		{"dice (seven)", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlayDice(rng, bet, games.DiceSeven)
		}},
		{"roulette (red)", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlayRoulette(rng, bet, games.RouletteRed, 0)
		}},
		{"roulette (single 17)", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlayRoulette(rng, bet, games.RouletteSingle, 17)
		}},
		{"slots", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlaySlots(rng, bet), nil
		}},
		{"crash (cash out at 2x)", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlayCrash(rng, bet, 2.0)
		}},
		{"baccarat (banker)", func(_ games.Rand, deck *cards.Deck) (*games.Result, error) {
			return games.PlayBaccarat(deck, bet, games.BaccaratBanker)
		}},
		{"war", func(_ games.Rand, deck *cards.Deck) (*games.Result, error) {
			return games.PlayWar(deck, bet), nil
		}},
		{"keno (five picks)", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlayKeno(rng, bet, kenoPicks)
		}},
		{"high-low (high)", func(_ games.Rand, deck *cards.Deck) (*games.Result, error) {
			return games.PlayHighLow(deck, bet, games.HighLowHigh)
		}},
		{"russian roulette", func(rng games.Rand, _ *cards.Deck) (*games.Result, error) {
			return games.PlayRussianRoulette(rng, bet), nil
		}},
		{"blackjack (hit below 17)", func(_ games.Rand, deck *cards.Deck) (*games.Result, error) {
			return playBlackjack(deck, bet)
		}},
		{"poker (call to showdown)", func(_ games.Rand, deck *cards.Deck) (*games.Result, error) {
			return playPoker(deck, bet)
		}},
	}
}

// playBlackjack hits until the hand reaches 17, then stands. The round
// settles itself on a natural or a bust.
func playBlackjack(deck *cards.Deck, bet int64) (*games.Result, error) {
	round := games.NewBlackjackRound(deck, bet)
	for !round.Settled() {
		if games.HandValue(round.PlayerHand) < 17 {
			if err := round.Hit(); err != nil {
				return nil, err
			}
			continue
		}
		if err := round.Stand(); err != nil {
			return nil, err
		}
	}
	return round.Result(), nil
}

// playPoker calls every street and takes the showdown
func playPoker(deck *cards.Deck, bet int64) (*games.Result, error) {
	round := games.NewPokerRound(deck, bet)
	for !round.Settled() {
		if err := round.Call(); err != nil {
			return nil, err
		}
	}
	return round.Result(), nil
}

type tally struct {
	trials  int
	wins    int
	pushes  int
	wagered int64
	paid    int64
}

func (t *tally) record(bet int64, r *games.Result) {
	t.trials++
	t.wagered += bet
	t.paid += r.Payout
	switch r.Outcome {
	case models.OutcomeWin:
		t.wins++
	case models.OutcomePush:
		t.pushes++
	}
}

func (t tally) winRate() float64  { return float64(t.wins) / float64(t.trials) }
func (t tally) pushRate() float64 { return float64(t.pushes) / float64(t.trials) }
func (t tally) rtp() float64      { return float64(t.paid) / float64(t.wagered) }

func run(sim simulation, rng *rand.Rand, trials int, bet int64) (tally, error) {
	deck := cards.New(1, cards.WithRand(rng))
	var t tally
	for i := 0; i < trials; i++ {
		result, err := sim.play(rng, deck)
		if err != nil {
			return tally{}, err
		}
		t.record(bet, result)
	}
	return t, nil
}

// uniformityReport draws from the same kind of source the engines use
// and checks the ten-bucket distribution against a flat expectation
func uniformityReport(rng *rand.Rand, draws int) {
	pterm.DefaultSection.Println("Randomness uniformity")

	buckets := make([]int, 10)
	for i := 0; i < draws; i++ {
		b := int(rng.Float64() * 10)
		if b >= 10 {
			b = 9
		}
		buckets[b]++
	}

	expected := float64(draws) / 10
	chi := 0.0
	bars := make([]pterm.Bar, len(buckets))
	for i, n := range buckets {
		chi += math.Pow(float64(n)-expected, 2) / expected
		bars[i] = pterm.Bar{
			Label: fmt.Sprintf("%.1f-%.1f", float64(i)/10, float64(i+1)/10),
			Value: n,
		}
	}
	pterm.DefaultBarChart.WithBars(bars).WithShowValue().Render()

	if chi < chiSquaredCritical {
		pterm.Success.Printfln("chi-squared %.2f is below the %.2f critical value for 9 degrees of freedom", chi, chiSquaredCritical)
	} else {
		pterm.Warning.Printfln("chi-squared %.2f exceeds the %.2f critical value for 9 degrees of freedom", chi, chiSquaredCritical)
	}
}
