package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/features/admin"
	"github.com/TheCodeVerseHub/Eigen-Bot/bot/features/casino"
	"github.com/TheCodeVerseHub/Eigen-Bot/bot/features/economy"
	"github.com/TheCodeVerseHub/Eigen-Bot/config"
	"github.com/TheCodeVerseHub/Eigen-Bot/events"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

// Bot owns the Discord session and routes interactions to the feature
// handlers
type Bot struct {
	config  *config.Config
	session *discordgo.Session
	economy *economy.Feature
	casino  *casino.Feature
	admin   *admin.Feature
	rounds  service.RoundService
	done    chan struct{}
}

func New(cfg *config.Config, ledger service.LedgerService, gameService service.GameService, rounds service.RoundService, stats service.StatsService, policy *service.WagerPolicy, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:  cfg,
		session: dg,
		economy: economy.New(ledger, stats, policy, cfg),
		casino:  casino.New(gameService, rounds, cfg),
		admin:   admin.New(ledger, cfg),
		rounds:  rounds,
		done:    make(chan struct{}),
	}

	dg.AddHandler(bot.handleInteraction)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Abandoned blackjack and poker rounds are force-resolved in the
	// background so every deducted stake settles
	go bot.startRoundSweeper()

	if cfg.OwnerID != 0 {
		eventBus.Subscribe(events.EventTypeFraudFlagged, func(ctx context.Context, event events.Event) {
			if e, ok := event.(events.FraudFlaggedEvent); ok {
				bot.notifyOwnerOfFlag(e)
			}
		})
	}

	return bot, nil
}

// Close stops the round sweeper and closes the Discord session
func (b *Bot) Close() error {
	close(b.done)
	return b.session.Close()
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.casino.HandleComponent(s, i)
	}
}

func (b *Bot) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "balance", "deposit", "withdraw", "transfer",
		"work", "collect", "daily", "weekly",
		"leaderboard", "stats":
		b.economy.HandleCommand(s, i)
	case "admin":
		b.admin.HandleCommand(s, i)
	default:
		b.casino.HandleCommand(s, i)
	}
}

// startRoundSweeper runs periodic force-resolution of expired rounds
func (b *Bot) startRoundSweeper() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := b.rounds.SweepExpired(context.Background()); n > 0 {
				log.Infof("Force-resolved %d expired rounds", n)
			}
		case <-b.done:
			return
		}
	}
}

// notifyOwnerOfFlag DMs the configured owner about flagged activity
func (b *Bot) notifyOwnerOfFlag(e events.FraudFlaggedEvent) {
	ownerID := strconv.FormatInt(b.config.OwnerID, 10)
	channel, err := b.session.UserChannelCreate(ownerID)
	if err != nil {
		log.Errorf("Failed to open owner DM channel: %v", err)
		return
	}

	message := fmt.Sprintf("⚠️ Flagged %s by <@%d>: %s (amount %d)",
		e.Action, e.UserID, e.Reason, e.Amount)
	if _, err := b.session.ChannelMessageSend(channel.ID, message); err != nil {
		log.Errorf("Failed to send fraud flag DM: %v", err)
	}
}
