package economy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	wallet, err := f.ledger.GetOrCreateWallet(ctx, userID)
	if err != nil {
		log.Errorf("Error getting wallet for %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	wagered, err := f.ledger.DailyWagered(ctx, userID)
	if err != nil {
		log.Errorf("Error getting daily wagered for %d: %v", userID, err)
		wagered = 0
	}

	displayName := common.GetDisplayName(s, i.GuildID, common.InteractionUser(i).ID)
	embed := BuildBalanceEmbed(displayName, wallet, wagered, f.config.DailyWagerLimit)
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

func (f *Feature) handleDeposit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBankMove(s, i, true)
}

func (f *Feature) handleWithdraw(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBankMove(s, i, false)
}

// handleBankMove covers both directions of the balance/bank move. The
// amount option is a string so "all" can resolve the whole pocket.
func (f *Feature) handleBankMove(s *discordgo.Session, i *discordgo.InteractionCreate, toBank bool) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	raw := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			raw = opt.StringValue()
		}
	}

	amount, err := service.ParseAmount(raw)
	if err != nil {
		common.RespondWithError(s, i, "Amount must be a positive number or \"all\".")
		return
	}

	var wallet *models.Wallet
	var moved int64
	if toBank {
		wallet, moved, err = f.ledger.Deposit(ctx, userID, amount)
	} else {
		wallet, moved, err = f.ledger.Withdraw(ctx, userID, amount)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			common.RespondWithError(s, i, "Nothing to move.")
		case errors.Is(err, service.ErrInsufficientFunds):
			if toBank {
				common.RespondWithError(s, i, "You don't have that many coins on hand.")
			} else {
				common.RespondWithError(s, i, "You don't have that many coins in the bank.")
			}
		default:
			log.Errorf("Error moving %s for user %d: %v", raw, userID, err)
			common.RespondWithError(s, i, "Unable to process request. Please try again.")
		}
		return
	}

	var message string
	if toBank {
		message = fmt.Sprintf("🏦 Deposited **%s coins**. On hand: **%s** | Bank: **%s**",
			common.FormatBalance(moved), common.FormatBalance(wallet.Balance), common.FormatBalance(wallet.Bank))
	} else {
		message = fmt.Sprintf("🏦 Withdrew **%s coins**. On hand: **%s** | Bank: **%s**",
			common.FormatBalance(moved), common.FormatBalance(wallet.Balance), common.FormatBalance(wallet.Bank))
	}
	if err := common.RespondWithContent(s, i, message, false); err != nil {
		log.Errorf("Error responding to bank move: %v", err)
	}
}

func (f *Feature) handleTransfer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var amount int64
	var recipient *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}

	if recipient == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}
	if recipient.Bot {
		common.RespondWithError(s, i, "Bots don't need coins.")
		return
	}

	fromID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing sender Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	toID, err := strconv.ParseInt(recipient.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing recipient Discord ID %s: %v", recipient.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Transfers hard-block on a fraud flag, unlike bets which only get
	// logged. The check runs before any money moves.
	if allowed, reason := f.policy.Check(fromID, amount, service.FraudActionTransfer); !allowed {
		blockErr := &service.TransferBlockedError{Reason: reason}
		common.RespondWithError(s, i, blockErr.Error())
		return
	}

	// The sender needs a wallet before TransferMoney looks it up; the
	// recipient wallet is created inside the transfer itself
	if _, err := f.ledger.GetOrCreateWallet(ctx, fromID); err != nil {
		log.Errorf("Error ensuring sender wallet %d: %v", fromID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.ledger.TransferMoney(ctx, fromID, toID, amount, "player transfer")
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			common.RespondWithError(s, i, "Amount must be positive.")
		case errors.Is(err, service.ErrSelfTransfer):
			common.RespondWithError(s, i, "You cannot transfer coins to yourself.")
		case errors.Is(err, service.ErrInsufficientFunds):
			common.RespondWithError(s, i, "You don't have enough coins for this transfer.")
		default:
			log.Errorf("Error transferring %d coins from %d to %d: %v", amount, fromID, toID, err)
			common.RespondWithError(s, i, "Unable to process transfer. Please try again.")
		}
		return
	}

	senderName := common.GetDisplayName(s, i.GuildID, common.InteractionUser(i).ID)
	recipientName := common.GetDisplayName(s, i.GuildID, recipient.ID)
	message := fmt.Sprintf("✅ **%s** sent **%s coins** to **%s**. Remaining balance: **%s coins**",
		senderName, common.FormatBalance(result.Amount), recipientName, common.FormatBalance(result.NewBalance))
	if err := common.RespondWithContent(s, i, message, false); err != nil {
		log.Errorf("Error responding to transfer command: %v", err)
	}
}

// incomeSpec describes one of the periodic reward commands
type incomeSpec struct {
	reward   int64
	cooldown time.Duration
	txType   models.TransactionType
	blurb    string
}

func (f *Feature) incomeSpecFor(command string) (incomeSpec, bool) {
	switch command {
	case "work":
		return incomeSpec{f.config.WorkReward, f.config.WorkCooldown, models.TransactionTypeWork, "You put in a shift and earned"}, true
	case "collect":
		return incomeSpec{f.config.CollectReward, f.config.CollectCooldown, models.TransactionTypeCollect, "You collected"}, true
	case "daily":
		return incomeSpec{f.config.DailyReward, f.config.DailyCooldown, models.TransactionTypeDaily, "Daily reward claimed:"}, true
	case "weekly":
		return incomeSpec{f.config.WeeklyReward, f.config.WeeklyCooldown, models.TransactionTypeWeekly, "Weekly reward claimed:"}, true
	}
	return incomeSpec{}, false
}

// handleIncome covers work, collect, daily and weekly. All four follow the
// same shape: cooldown gate, credit, cooldown start.
func (f *Feature) handleIncome(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	command := i.ApplicationCommandData().Name

	spec, ok := f.incomeSpecFor(command)
	if !ok {
		return
	}

	userID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if remaining := f.policy.RemainingCooldown(command, userID); remaining > 0 {
		common.RespondWithError(s, i, fmt.Sprintf("You can use /%s again in **%s** (%s).",
			command, service.FormatDuration(remaining),
			common.FormatDiscordTimestamp(time.Now().Add(remaining), "R")))
		return
	}

	if err := f.ledger.AddMoney(ctx, userID, spec.reward, spec.txType, command+" payout", nil); err != nil {
		log.Errorf("Error crediting %s payout for %d: %v", command, userID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// The cooldown starts only once the credit committed
	f.policy.SetCooldown(command, userID, spec.cooldown)

	wallet, err := f.ledger.GetOrCreateWallet(ctx, userID)
	if err != nil {
		log.Errorf("Error reading wallet after %s payout for %d: %v", command, userID, err)
		message := fmt.Sprintf("💰 %s **%s coins**.", spec.blurb, common.FormatBalance(spec.reward))
		_ = common.RespondWithContent(s, i, message, false)
		return
	}

	message := fmt.Sprintf("💰 %s **%s coins**. Balance: **%s coins**",
		spec.blurb, common.FormatBalance(spec.reward), common.FormatBalance(wallet.Balance))
	if err := common.RespondWithContent(s, i, message, false); err != nil {
		log.Errorf("Error responding to %s command: %v", command, err)
	}
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	entries, err := f.stats.GetLeaderboard(ctx, 10)
	if err != nil {
		log.Errorf("Error getting leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	embed := BuildLeaderboardEmbed(entries, s, i.GuildID)
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}

func (f *Feature) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	target := common.InteractionUser(i)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			if u := opt.UserValue(s); u != nil {
				target = u
			}
		}
	}

	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing target Discord ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	userStats, err := f.stats.GetUserStats(ctx, targetID)
	if err != nil {
		if errors.Is(err, service.ErrWalletNotFound) {
			common.RespondWithError(s, i, fmt.Sprintf("**%s** hasn't played yet.", target.Username))
			return
		}
		log.Errorf("Error getting stats for %d: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to load stats. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, target.ID)
	embed := BuildUserStatsEmbed(userStats, displayName)
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to stats command: %v", err)
	}
}
