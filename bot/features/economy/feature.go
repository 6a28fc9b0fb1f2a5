package economy

import (
	"github.com/bwmarrin/discordgo"

	"github.com/TheCodeVerseHub/Eigen-Bot/config"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

// Feature bundles the wallet, income and statistics commands
type Feature struct {
	ledger service.LedgerService
	stats  service.StatsService
	policy *service.WagerPolicy
	config *config.Config
}

// New creates the economy feature
func New(ledger service.LedgerService, stats service.StatsService, policy *service.WagerPolicy, cfg *config.Config) *Feature {
	return &Feature{
		ledger: ledger,
		stats:  stats,
		policy: policy,
		config: cfg,
	}
}

// HandleCommand routes economy slash commands to their handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "balance":
		f.handleBalance(s, i)
	case "deposit":
		f.handleDeposit(s, i)
	case "withdraw":
		f.handleWithdraw(s, i)
	case "transfer":
		f.handleTransfer(s, i)
	case "work", "collect", "daily", "weekly":
		f.handleIncome(s, i)
	case "leaderboard":
		f.handleLeaderboard(s, i)
	case "stats":
		f.handleStats(s, i)
	}
}
