package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot"
	"github.com/TheCodeVerseHub/Eigen-Bot/config"
	"github.com/TheCodeVerseHub/Eigen-Bot/database"
	"github.com/TheCodeVerseHub/Eigen-Bot/events"
	"github.com/TheCodeVerseHub/Eigen-Bot/repository"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting casino bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	log.Println("Initializing event bus...")
	eventBus := events.NewBus()
	log.Println("Event bus initialized successfully")

	// Initialize unit of work factory
	log.Println("Initializing unit of work factory...")
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)
	log.Println("Unit of work factory initialized successfully")

	// Initialize services
	log.Println("Initializing services...")
	policy := service.NewWagerPolicy(cfg, eventBus)
	ledgerService := service.NewLedgerService(uowFactory, cfg.StartingBalance)
	gameService := service.NewGameService(uowFactory, policy, cfg)
	roundService := service.NewRoundService(uowFactory, policy, cfg)
	statsService := service.NewStatsService(uowFactory)
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	discordBot, err := bot.New(cfg, ledgerService, gameService, roundService, statsService, policy, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	// Close Discord bot connection
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
