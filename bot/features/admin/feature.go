package admin

import (
	"github.com/bwmarrin/discordgo"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/config"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

// Feature bundles the owner-only management commands
type Feature struct {
	ledger service.LedgerService
	config *config.Config
}

// New creates the admin feature
func New(ledger service.LedgerService, cfg *config.Config) *Feature {
	return &Feature{
		ledger: ledger,
		config: cfg,
	}
}

// HandleCommand routes /admin subcommands, rejecting everyone but the
// configured owner
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if f.config.OwnerID == 0 || userID != f.config.OwnerID {
		common.RespondWithError(s, i, "You are not allowed to use admin commands.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "credit":
		f.handleCredit(s, i, options[0])
	case "reset":
		f.handleReset(s, i, options[0])
	}
}
