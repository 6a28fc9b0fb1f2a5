package admin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

func (f *Feature) handleCredit(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var amount int64
	var target *discordgo.User
	for _, opt := range sub.Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			target = opt.UserValue(s)
		}
	}

	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}
	if amount <= 0 {
		common.RespondWithError(s, i, "Amount must be positive.")
		return
	}

	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing target Discord ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if err := f.ledger.AddMoney(ctx, targetID, amount, models.TransactionTypeAdmin, "admin credit", nil); err != nil {
		log.Errorf("Error crediting %d coins to %d: %v", amount, targetID, err)
		common.RespondWithError(s, i, "Unable to credit coins. Please try again.")
		return
	}

	log.WithFields(log.Fields{
		"admin_id":  common.InteractionUser(i).ID,
		"target_id": targetID,
		"amount":    amount,
	}).Info("Admin credit issued")

	message := fmt.Sprintf("✅ Credited **%s coins** to **%s**.",
		common.FormatBalance(amount), target.Username)
	if err := common.RespondWithContent(s, i, message, true); err != nil {
		log.Errorf("Error responding to admin credit: %v", err)
	}
}

func (f *Feature) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	confirm := ""
	for _, opt := range sub.Options {
		if opt.Name == "confirm" {
			confirm = opt.StringValue()
		}
	}

	if confirm != "CONFIRM" {
		common.RespondWithError(s, i, "This wipes every wallet, bet and ledger row. Run again with confirm: CONFIRM")
		return
	}

	removed, err := f.ledger.ResetEconomy(ctx)
	if err != nil {
		log.Errorf("Error resetting economy: %v", err)
		common.RespondWithError(s, i, "Unable to reset the economy. Please try again.")
		return
	}

	log.WithFields(log.Fields{
		"admin_id": common.InteractionUser(i).ID,
		"wallets":  removed,
	}).Warn("Economy reset")

	message := fmt.Sprintf("🧹 Economy reset. Removed **%d** wallets.", removed)
	if err := common.RespondWithContent(s, i, message, false); err != nil {
		log.Errorf("Error responding to admin reset: %v", err)
	}
}
