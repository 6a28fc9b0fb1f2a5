package casino

import (
	"context"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

func (f *Feature) handleBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.startRound(s, i, f.rounds.StartBlackjack)
}

func (f *Feature) handlePoker(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.startRound(s, i, f.rounds.StartPoker)
}

func (f *Feature) startRound(s *discordgo.Session, i *discordgo.InteractionCreate,
	start func(ctx context.Context, userID, amount int64) (*service.RoundView, error)) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	amount := optionMap(i)["amount"].IntValue()

	view, err := start(ctx, userID, amount)
	if err != nil {
		f.replyError(s, i, err)
		return
	}

	// A natural blackjack settles on the deal, so the first message can
	// already be a result
	embed, components := BuildRoundMessage(view)
	if err := common.RespondWithEmbed(s, i, embed, components, false); err != nil {
		log.Errorf("Error responding to %s start: %v", view.Game, err)
	}
}

// handleRoundAction advances a round from a button click. Success replaces
// the round message in place; failures reply ephemerally and leave the
// original message untouched.
func (f *Feature) handleRoundAction(s *discordgo.Session, i *discordgo.InteractionCreate, roundID, action string) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Advance resolves (userID, roundID) together, so another player
	// clicking these buttons just gets "no active round"
	view, err := f.rounds.Advance(ctx, userID, roundID, action)
	if err != nil {
		f.replyError(s, i, err)
		return
	}

	embed, components := BuildRoundMessage(view)
	if err := common.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Errorf("Error updating %s round message: %v", view.Game, err)
	}
}
