package bot

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

func amountOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "amount",
		Description: description,
		Required:    true,
	}
}

func choices(values ...string) []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, len(values))
	for i, v := range values {
		out[i] = &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v}
	}
	return out
}

// dicePredictions lists the dice bet choices: the named ranges plus every
// exact total
func dicePredictions() []*discordgo.ApplicationCommandOptionChoice {
	values := []string{"over", "under", "seven"}
	for total := 2; total <= 12; total++ {
		values = append(values, strconv.Itoa(total))
	}
	return choices(values...)
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your wallet and bank balance",
		},
		{
			Name:        "deposit",
			Description: "Move coins from your wallet into the bank",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "amount",
					Description: "Amount to deposit, or \"all\"",
					Required:    true,
				},
			},
		},
		{
			Name:        "withdraw",
			Description: "Move coins from the bank back into your wallet",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "amount",
					Description: "Amount to withdraw, or \"all\"",
					Required:    true,
				},
			},
		},
		{
			Name:        "transfer",
			Description: "Send coins to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Player to send coins to",
					Required:    true,
				},
				amountOption("Amount to send"),
			},
		},
		{
			Name:        "work",
			Description: "Put in a shift for some coins",
		},
		{
			Name:        "collect",
			Description: "Collect your hourly coins",
		},
		{
			Name:        "daily",
			Description: "Claim your daily reward",
		},
		{
			Name:        "weekly",
			Description: "Claim your weekly reward",
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players",
		},
		{
			Name:        "stats",
			Description: "Show gambling statistics for a player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Player to check (defaults to you)",
					Required:    false,
				},
			},
		},
		{
			Name:        "coinflip",
			Description: "Flip a coin, double or nothing",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "side",
					Description: "Side to call",
					Required:    true,
					Choices:     choices("heads", "tails"),
				},
			},
		},
		{
			Name:        "dice",
			Description: "Roll two dice against a prediction",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "bet",
					Description: "over (8+), under (6-), seven, or an exact total",
					Required:    true,
					Choices:     dicePredictions(),
				},
			},
		},
		{
			Name:        "roulette",
			Description: "Spin the wheel",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "bet",
					Description: "Bet type",
					Required:    true,
					Choices:     choices("single", "dozen", "red", "black", "odd", "even", "low", "high"),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "number",
					Description: "0-36 for single, 1-3 for dozen",
					Required:    false,
				},
			},
		},
		{
			Name:        "slots",
			Description: "Pull the slot machine",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
			},
		},
		{
			Name:        "crash",
			Description: "Cash out before the crash",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "target",
					Description: "Multiplier to cash out at, e.g. 2.5",
					Required:    true,
				},
			},
		},
		{
			Name:        "baccarat",
			Description: "Back the player, the banker, or a tie",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "side",
					Description: "Side to back",
					Required:    true,
					Choices:     choices("player", "banker", "tie"),
				},
			},
		},
		{
			Name:        "war",
			Description: "One card each, highest wins",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
			},
		},
		{
			Name:        "keno",
			Description: "Pick five numbers, twenty are drawn",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "picks",
					Description: "Five numbers between 1 and 80, e.g. 4 17 23 55 80",
					Required:    true,
				},
			},
		},
		{
			Name:        "highlow",
			Description: "Will the next card be higher or lower?",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "guess",
					Description: "Your call",
					Required:    true,
					Choices:     choices("high", "low"),
				},
			},
		},
		{
			Name:        "russian-roulette",
			Description: "One chamber in six. Survive for 5x",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
			},
		},
		{
			Name:        "blackjack",
			Description: "Play a hand of blackjack against the dealer",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
			},
		},
		{
			Name:        "poker",
			Description: "Heads-up hold'em against the house",
			Options: []*discordgo.ApplicationCommandOption{
				amountOption("Amount to bet"),
			},
		},
		{
			Name:        "admin",
			Description: "Owner-only management commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "credit",
					Description: "Credit coins to a player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Player to credit",
							Required:    true,
						},
						amountOption("Amount to credit"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Wipe the entire economy",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "confirm",
							Description: "Type CONFIRM to proceed",
							Required:    true,
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.DiscordGuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
