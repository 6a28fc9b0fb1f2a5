package casino

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/games"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

func TestParseRoundCustomID(t *testing.T) {
	tests := []struct {
		name     string
		customID string
		action   string
		roundID  string
		ok       bool
	}{
		{"blackjack hit", "bj_hit_550e8400-e29b-41d4-a716-446655440000", "hit", "550e8400-e29b-41d4-a716-446655440000", true},
		{"blackjack stand", "bj_stand_abc", "stand", "abc", true},
		{"double maps to the engine action", "bj_double_abc", "double_down", "abc", true},
		{"poker call", "pk_call_abc", "call", "abc", true},
		{"poker fold", "pk_fold_abc", "fold", "abc", true},
		{"foreign prefix ignored", "bet_odds_50", "", "", false},
		{"too few segments", "bj_hit", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, roundID, ok := parseRoundCustomID(tt.customID)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.roundID, roundID)
		})
	}
}

func TestParseKenoPicks(t *testing.T) {
	picks, err := parseKenoPicks("4 17 23 55 80")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 17, 23, 55, 80}, picks)

	picks, err = parseKenoPicks("1,2,3,4,5")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, picks)

	_, err = parseKenoPicks("1 2 three")
	assert.Error(t, err)
}

func TestDetailLine(t *testing.T) {
	tests := []struct {
		name     string
		game     string
		detail   map[string]any
		expected string
	}{
		{
			"coinflip",
			games.GameCoinflip,
			map[string]any{"flip": "heads"},
			"The coin landed on **heads**.",
		},
		{
			"dice",
			games.GameDice,
			map[string]any{"dice": []int{3, 4}, "total": 7},
			"Rolled **3 + 4 = 7**.",
		},
		{
			"roulette",
			games.GameRoulette,
			map[string]any{"number": 17, "color": "black"},
			"The ball landed on **17** (black).",
		},
		{
			"slots",
			games.GameSlots,
			map[string]any{"reels": []string{"🍒", "🍒", "🍋"}},
			"| 🍒 | 🍒 | 🍋 |",
		},
		{
			"war",
			games.GameWar,
			map[string]any{"player_card": "K♠", "house_card": "9♦"},
			"Your card: **K♠** vs house: **9♦**",
		},
		{
			"keno shows only the hits",
			games.GameKeno,
			map[string]any{"picks": []int{1, 2, 3}, "drawn": []int{2, 3, 9}, "matches": 2},
			"Your picks: 1, 2, 3\nHits: 2, 3 (**2 of 3**)",
		},
		{
			"poker fold",
			games.GamePoker,
			map[string]any{"folded_at": "FLOP"},
			"Folded at **FLOP**.",
		},
		{
			"poker showdown",
			games.GamePoker,
			map[string]any{"player_hand": "One Pair", "house_hand": "High Card"},
			"Your hand: **One Pair**\nHouse hand: **High Card**",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detailLine(tt.game, tt.detail))
		})
	}
}

func TestBuildResultEmbed(t *testing.T) {
	result := &service.PlayResult{
		Bet:        &models.Bet{Amount: 100, Game: games.GameCoinflip},
		Outcome:    models.OutcomeWin,
		Payout:     200,
		NewBalance: 1100,
		Detail:     map[string]any{"flip": "heads"},
	}

	embed := BuildResultEmbed(games.GameCoinflip, result)

	assert.Equal(t, "🪙 Coinflip", embed.Title)
	assert.Equal(t, common.ColorSuccess, embed.Color)
	assert.Contains(t, embed.Description, "The coin landed on **heads**.")
	assert.Contains(t, embed.Description, "You won 200 coins!")
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "100 coins", embed.Fields[0].Value)
	assert.Equal(t, "200 coins", embed.Fields[1].Value)
	assert.Equal(t, "1,100 coins", embed.Fields[2].Value)
	assert.Nil(t, embed.Footer)
}

func TestBuildResultEmbed_LossCarriesFlag(t *testing.T) {
	result := &service.PlayResult{
		Bet:        &models.Bet{Amount: 20000, Game: games.GameSlots},
		Outcome:    models.OutcomeLose,
		Payout:     0,
		NewBalance: 5000,
		Detail:     map[string]any{"reels": []string{"🍒", "🍋", "⭐"}},
		FraudFlag:  "Large bet of 20000 coins flagged for review.",
	}

	embed := BuildResultEmbed(games.GameSlots, result)

	assert.Equal(t, common.ColorDanger, embed.Color)
	assert.Contains(t, embed.Description, "You lost 20,000 coins.")
	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "flagged for review")
}

func TestBuildRoundMessage_LiveBlackjackButtons(t *testing.T) {
	view := &service.RoundView{
		RoundID: "round-1",
		Game:    games.GameBlackjack,
		Bet:     100,
		State:   "PLAYER_TURN",
		Detail: map[string]any{
			"player_hand":  []string{"K♠", "6♥"},
			"player_value": 16,
			"dealer_up":    "10♦",
		},
	}

	embed, components := BuildRoundMessage(view)

	assert.Contains(t, embed.Description, "K♠ 6♥")
	assert.Contains(t, embed.Description, "**16**")
	assert.Contains(t, embed.Description, "10♦")

	require.Len(t, components, 1)
	row, ok := components[0].(*discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3, "two-card hands can still double down")

	labels := make([]string, 0, len(row.Components))
	for _, comp := range row.Components {
		button, ok := comp.(*discordgo.Button)
		require.True(t, ok)
		labels = append(labels, button.Label)
		assert.Contains(t, button.CustomID, "round-1")
	}
	assert.Equal(t, []string{"Hit", "Stand", "Double Down"}, labels)
}

func TestBuildRoundMessage_NoDoubleAfterHit(t *testing.T) {
	view := &service.RoundView{
		RoundID: "round-2",
		Game:    games.GameBlackjack,
		Bet:     100,
		State:   "PLAYER_TURN",
		Detail: map[string]any{
			"player_hand":  []string{"K♠", "3♥", "2♦"},
			"player_value": 15,
			"dealer_up":    "10♦",
		},
	}

	_, components := BuildRoundMessage(view)

	require.Len(t, components, 1)
	row := components[0].(*discordgo.ActionsRow)
	assert.Len(t, row.Components, 2)
}

func TestBuildRoundMessage_SettledDropsButtons(t *testing.T) {
	view := &service.RoundView{
		RoundID: "round-3",
		Game:    games.GameBlackjack,
		Bet:     100,
		State:   "SETTLED",
		Settled: true,
		Result: &service.PlayResult{
			Bet:        &models.Bet{Amount: 100, Game: games.GameBlackjack},
			Outcome:    models.OutcomePush,
			Payout:     100,
			NewBalance: 1000,
			Detail: map[string]any{
				"player_hand":  []string{"K♠", "7♥"},
				"dealer_hand":  []string{"9♦", "8♣"},
				"player_value": 17,
				"dealer_value": 17,
				"doubled":      false,
			},
		},
	}

	embed, components := BuildRoundMessage(view)

	assert.Empty(t, components)
	assert.Equal(t, common.ColorWarning, embed.Color)
	assert.Contains(t, embed.Description, "Push")
}
