package casino

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/games"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

// respondResult renders a settled one-shot game as a public embed
func (f *Feature) respondResult(s *discordgo.Session, i *discordgo.InteractionCreate, game string, result *service.PlayResult) {
	embed := BuildResultEmbed(game, result)
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to %s command: %v", game, err)
	}
}

func (f *Feature) handleCoinflip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	opts := optionMap(i)
	amount := opts["amount"].IntValue()
	side := opts["side"].StringValue()

	result, err := f.games.PlayCoinflip(ctx, userID, amount, side)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameCoinflip, result)
}

func (f *Feature) handleDice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	opts := optionMap(i)
	amount := opts["amount"].IntValue()
	prediction := opts["bet"].StringValue()

	result, err := f.games.PlayDice(ctx, userID, amount, prediction)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameDice, result)
}

func (f *Feature) handleRoulette(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	opts := optionMap(i)
	amount := opts["amount"].IntValue()
	betType := opts["bet"].StringValue()

	number := 0
	if opt, ok := opts["number"]; ok {
		number = int(opt.IntValue())
	} else if betType == games.RouletteSingle || betType == games.RouletteDozen {
		common.RespondWithError(s, i, "That bet needs a number: 0-36 for single, 1-3 for dozen.")
		return
	}

	result, err := f.games.PlayRoulette(ctx, userID, amount, betType, number)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameRoulette, result)
}

func (f *Feature) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	amount := optionMap(i)["amount"].IntValue()

	result, err := f.games.PlaySlots(ctx, userID, amount)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameSlots, result)
}

func (f *Feature) handleCrash(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	opts := optionMap(i)
	amount := opts["amount"].IntValue()
	target := opts["target"].FloatValue()

	result, err := f.games.PlayCrash(ctx, userID, amount, target)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameCrash, result)
}

func (f *Feature) handleBaccarat(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	opts := optionMap(i)
	amount := opts["amount"].IntValue()
	side := opts["side"].StringValue()

	result, err := f.games.PlayBaccarat(ctx, userID, amount, side)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameBaccarat, result)
}

func (f *Feature) handleWar(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	amount := optionMap(i)["amount"].IntValue()

	result, err := f.games.PlayWar(ctx, userID, amount)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameWar, result)
}

func (f *Feature) handleKeno(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	opts := optionMap(i)
	amount := opts["amount"].IntValue()

	picks, err := parseKenoPicks(opts["picks"].StringValue())
	if err != nil {
		common.RespondWithError(s, i, "Picks must be five numbers between 1 and 80, like: 4 17 23 55 80")
		return
	}

	result, err := f.games.PlayKeno(ctx, userID, amount, picks)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameKeno, result)
}

// parseKenoPicks splits a "4 17 23 55 80" style pick list. Count, range
// and duplicate checks are left to the engine.
func parseKenoPicks(raw string) ([]int, error) {
	fields := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	picks := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		picks = append(picks, n)
	}
	return picks, nil
}

func (f *Feature) handleHighLow(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	opts := optionMap(i)
	amount := opts["amount"].IntValue()
	guess := opts["guess"].StringValue()

	result, err := f.games.PlayHighLow(ctx, userID, amount, guess)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameHighLow, result)
}

func (f *Feature) handleRussianRoulette(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	amount := optionMap(i)["amount"].IntValue()

	result, err := f.games.PlayRussianRoulette(ctx, userID, amount)
	if err != nil {
		f.replyError(s, i, err)
		return
	}
	f.respondResult(s, i, games.GameRussianRoulette, result)
}
