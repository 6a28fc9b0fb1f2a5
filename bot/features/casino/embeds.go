package casino

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/games"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

func gameTitle(game string) string {
	switch game {
	case games.GameCoinflip:
		return "🪙 Coinflip"
	case games.GameDice:
		return "🎲 Dice"
	case games.GameRoulette:
		return "🎡 Roulette"
	case games.GameSlots:
		return "🎰 Slots"
	case games.GameCrash:
		return "📈 Crash"
	case games.GameBaccarat:
		return "🎴 Baccarat"
	case games.GameWar:
		return "⚔️ War"
	case games.GameKeno:
		return "🔢 Keno"
	case games.GameHighLow:
		return "🔺 High-Low"
	case games.GameRussianRoulette:
		return "🔫 Russian Roulette"
	case games.GameBlackjack:
		return "🃏 Blackjack"
	case games.GamePoker:
		return "♠️ Poker"
	}
	return game
}

func outcomeColor(outcome models.Outcome) int {
	switch outcome {
	case models.OutcomeWin:
		return common.ColorSuccess
	case models.OutcomePush:
		return common.ColorWarning
	default:
		return common.ColorDanger
	}
}

func outcomeLine(result *service.PlayResult) string {
	switch result.Outcome {
	case models.OutcomeWin:
		return fmt.Sprintf("🎉 **You won %s coins!**", common.FormatBalance(result.Payout))
	case models.OutcomePush:
		return fmt.Sprintf("↩️ **Push.** Your **%s coin** stake was returned.", common.FormatBalance(result.Payout))
	case models.OutcomeFold:
		return fmt.Sprintf("🏳️ **Folded.** Your **%s coin** stake is forfeit.", common.FormatBalance(result.Bet.Amount))
	default:
		return fmt.Sprintf("😔 **You lost %s coins.**", common.FormatBalance(result.Bet.Amount))
	}
}

// BuildResultEmbed renders a settled game, one-shot or round
func BuildResultEmbed(game string, result *service.PlayResult) *discordgo.MessageEmbed {
	var description strings.Builder
	if line := detailLine(game, result.Detail); line != "" {
		description.WriteString(line)
		description.WriteString("\n\n")
	}
	description.WriteString(outcomeLine(result))

	embed := &discordgo.MessageEmbed{
		Title:       gameTitle(game),
		Color:       outcomeColor(result.Outcome),
		Description: description.String(),
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Bet",
				Value:  fmt.Sprintf("%s coins", common.FormatBalance(result.Bet.Amount)),
				Inline: true,
			},
			{
				Name:   "Payout",
				Value:  fmt.Sprintf("%s coins", common.FormatBalance(result.Payout)),
				Inline: true,
			},
			{
				Name:   "Balance",
				Value:  fmt.Sprintf("%s coins", common.FormatBalance(result.NewBalance)),
				Inline: true,
			},
		},
	}

	if result.FraudFlag != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "⚠️ " + result.FraudFlag}
	}

	return embed
}

// detailLine renders the game-specific part of a result
func detailLine(game string, detail map[string]any) string {
	switch game {
	case games.GameCoinflip:
		return fmt.Sprintf("The coin landed on **%s**.", detailString(detail, "flip"))
	case games.GameDice:
		dice := detailInts(detail, "dice")
		if len(dice) == 2 {
			return fmt.Sprintf("Rolled **%d + %d = %d**.", dice[0], dice[1], detailInt(detail, "total"))
		}
		return fmt.Sprintf("Rolled **%d**.", detailInt(detail, "total"))
	case games.GameRoulette:
		return fmt.Sprintf("The ball landed on **%d** (%s).",
			detailInt(detail, "number"), detailString(detail, "color"))
	case games.GameSlots:
		reels := detailStrings(detail, "reels")
		return "| " + strings.Join(reels, " | ") + " |"
	case games.GameCrash:
		return fmt.Sprintf("Crashed at **%.2fx**. Your target was **%.2fx**.",
			detailFloat(detail, "crash_point"), detailFloat(detail, "target"))
	case games.GameBaccarat:
		return fmt.Sprintf("Player: %s (**%d points**)\nBanker: %s (**%d points**)\nWinner: **%s**",
			strings.Join(detailStrings(detail, "player_hand"), " "),
			detailInt(detail, "player_points"),
			strings.Join(detailStrings(detail, "banker_hand"), " "),
			detailInt(detail, "banker_points"),
			detailString(detail, "winner"))
	case games.GameWar:
		return fmt.Sprintf("Your card: **%s** vs house: **%s**",
			detailString(detail, "player_card"), detailString(detail, "house_card"))
	case games.GameKeno:
		picks := detailInts(detail, "picks")
		drawn := detailInts(detail, "drawn")
		return fmt.Sprintf("Your picks: %s\nHits: %s (**%d of %d**)",
			joinInts(picks), joinInts(intersectInts(picks, drawn)),
			detailInt(detail, "matches"), len(picks))
	case games.GameHighLow:
		return fmt.Sprintf("First card **%s**, second card **%s**. You called **%s**.",
			detailString(detail, "first_card"),
			detailString(detail, "second_card"),
			detailString(detail, "guess"))
	case games.GameRussianRoulette:
		if detailBool(detail, "survived") {
			return "*Click.* The chamber was empty."
		}
		return "💥 *Bang.*"
	case games.GameBlackjack:
		return fmt.Sprintf("Your hand: %s (**%d**)\nDealer: %s (**%d**)",
			strings.Join(detailStrings(detail, "player_hand"), " "),
			detailInt(detail, "player_value"),
			strings.Join(detailStrings(detail, "dealer_hand"), " "),
			detailInt(detail, "dealer_value"))
	case games.GamePoker:
		if folded := detailString(detail, "folded_at"); folded != "" {
			return fmt.Sprintf("Folded at **%s**.", folded)
		}
		return fmt.Sprintf("Your hand: **%s**\nHouse hand: **%s**",
			detailString(detail, "player_hand"), detailString(detail, "house_hand"))
	}
	return ""
}

// BuildRoundMessage renders a blackjack or poker round, live or settled.
// Settled rounds get the result embed and drop the action buttons.
func BuildRoundMessage(view *service.RoundView) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	if view.Settled {
		return BuildResultEmbed(view.Game, view.Result), nil
	}

	switch view.Game {
	case games.GamePoker:
		return buildPokerMessage(view)
	default:
		return buildBlackjackMessage(view)
	}
}

func buildBlackjackMessage(view *service.RoundView) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	playerHand := detailStrings(view.Detail, "player_hand")

	embed := &discordgo.MessageEmbed{
		Title: gameTitle(games.GameBlackjack),
		Color: common.ColorPrimary,
		Description: fmt.Sprintf("Your hand: %s (**%d**)\nDealer shows: **%s**",
			strings.Join(playerHand, " "),
			detailInt(view.Detail, "player_value"),
			detailString(view.Detail, "dealer_up")),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Bet",
				Value:  fmt.Sprintf("%s coins", common.FormatBalance(view.Bet)),
				Inline: true,
			},
		},
		Footer: roundFooter(view),
	}

	buttons := []discordgo.MessageComponent{
		&discordgo.Button{
			Label:    "Hit",
			Style:    discordgo.PrimaryButton,
			CustomID: "bj_hit_" + view.RoundID,
		},
		&discordgo.Button{
			Label:    "Stand",
			Style:    discordgo.SecondaryButton,
			CustomID: "bj_stand_" + view.RoundID,
		},
	}
	// Doubling is only legal on the first decision
	if len(playerHand) == 2 {
		buttons = append(buttons, &discordgo.Button{
			Label:    "Double Down",
			Style:    discordgo.DangerButton,
			CustomID: "bj_double_" + view.RoundID,
		})
	}

	return embed, []discordgo.MessageComponent{&discordgo.ActionsRow{Components: buttons}}
}

func buildPokerMessage(view *service.RoundView) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	community := detailStrings(view.Detail, "community")
	board := "(none yet)"
	if len(community) > 0 {
		board = strings.Join(community, " ")
	}

	embed := &discordgo.MessageEmbed{
		Title: gameTitle(games.GamePoker),
		Color: common.ColorPrimary,
		Description: fmt.Sprintf("Your hole cards: %s\nCommunity: %s",
			strings.Join(detailStrings(view.Detail, "player_hole"), " "), board),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Bet",
				Value:  fmt.Sprintf("%s coins", common.FormatBalance(view.Bet)),
				Inline: true,
			},
			{
				Name:   "Stage",
				Value:  view.State,
				Inline: true,
			},
		},
		Footer: roundFooter(view),
	}

	components := []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{
					Label:    "Call",
					Style:    discordgo.PrimaryButton,
					CustomID: "pk_call_" + view.RoundID,
				},
				&discordgo.Button{
					Label:    "Fold",
					Style:    discordgo.DangerButton,
					CustomID: "pk_fold_" + view.RoundID,
				},
			},
		},
	}

	return embed, components
}

func roundFooter(view *service.RoundView) *discordgo.MessageEmbedFooter {
	text := fmt.Sprintf("Expires %s", view.ExpiresAt.UTC().Format("15:04:05 MST"))
	if view.FraudFlag != "" {
		text = "⚠️ " + view.FraudFlag + " · " + text
	}
	return &discordgo.MessageEmbedFooter{Text: text}
}

// Detail maps are built in-process by the engines, so the assertions below
// only guard against a missing key.

func detailString(detail map[string]any, key string) string {
	v, _ := detail[key].(string)
	return v
}

func detailInt(detail map[string]any, key string) int {
	v, _ := detail[key].(int)
	return v
}

func detailFloat(detail map[string]any, key string) float64 {
	v, _ := detail[key].(float64)
	return v
}

func detailBool(detail map[string]any, key string) bool {
	v, _ := detail[key].(bool)
	return v
}

func detailStrings(detail map[string]any, key string) []string {
	v, _ := detail[key].([]string)
	return v
}

func detailInts(detail map[string]any, key string) []int {
	v, _ := detail[key].([]int)
	return v
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "none"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func intersectInts(picks, drawn []int) []int {
	drawnSet := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		drawnSet[n] = true
	}
	var hits []int
	for _, n := range picks {
		if drawnSet[n] {
			hits = append(hits, n)
		}
	}
	return hits
}
