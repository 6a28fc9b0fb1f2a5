package casino

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/config"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

// Feature bundles the game commands and the interactive round flows
type Feature struct {
	games  service.GameService
	rounds service.RoundService
	config *config.Config
}

// New creates the casino feature
func New(games service.GameService, rounds service.RoundService, cfg *config.Config) *Feature {
	return &Feature{
		games:  games,
		rounds: rounds,
		config: cfg,
	}
}

// HandleCommand routes game slash commands to their handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "coinflip":
		f.handleCoinflip(s, i)
	case "dice":
		f.handleDice(s, i)
	case "roulette":
		f.handleRoulette(s, i)
	case "slots":
		f.handleSlots(s, i)
	case "crash":
		f.handleCrash(s, i)
	case "baccarat":
		f.handleBaccarat(s, i)
	case "war":
		f.handleWar(s, i)
	case "keno":
		f.handleKeno(s, i)
	case "highlow":
		f.handleHighLow(s, i)
	case "russian-roulette":
		f.handleRussianRoulette(s, i)
	case "blackjack":
		f.handleBlackjack(s, i)
	case "poker":
		f.handlePoker(s, i)
	}
}

// HandleComponent routes button clicks on active blackjack and poker
// rounds. CustomIDs look like "bj_hit_<round-id>" or "pk_fold_<round-id>".
func (f *Feature) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	action, roundID, ok := parseRoundCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	f.handleRoundAction(s, i, roundID, action)
}

func parseRoundCustomID(customID string) (action, roundID string, ok bool) {
	parts := strings.SplitN(customID, "_", 3)
	if len(parts) != 3 {
		return "", "", false
	}
	if parts[0] != "bj" && parts[0] != "pk" {
		return "", "", false
	}

	action = parts[1]
	if action == "double" {
		action = "double_down"
	}
	return action, parts[2], true
}

// optionMap indexes a command's options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// replyError maps service failures to user-facing messages. Everything is
// ephemeral so a rejected bet doesn't spam the channel.
func (f *Feature) replyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	var rejected *service.BetRejectedError
	var cooldown *service.CooldownError

	switch {
	case errors.As(err, &rejected):
		common.RespondWithError(s, i, rejected.Reason)
	case errors.As(err, &cooldown):
		common.RespondWithError(s, i, fmt.Sprintf("Slow down. Try again in **%s**.",
			service.FormatDuration(cooldown.Remaining)))
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "You don't have enough coins for that bet.")
	case errors.Is(err, service.ErrRoundActive):
		common.RespondWithError(s, i, "Finish your current round first.")
	case errors.Is(err, service.ErrRoundNotFound):
		common.RespondWithError(s, i, "No active round. Start a new one.")
	case errors.Is(err, service.ErrRoundSettled):
		common.RespondWithError(s, i, "That round is already settled.")
	default:
		log.Errorf("Game command failed: %v", err)
		common.RespondWithError(s, i, "Something went wrong. Please try again.")
	}
}
