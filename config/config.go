package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Economy configuration
	StartingBalance int64 // granted when a wallet is first created
	MinBet          int64
	MaxBet          int64
	DailyWagerLimit int64 // total stake allowed per user per UTC day

	// Fraud heuristics
	LargeBetThreshold int64 // single bets above this are flagged
	BetVelocityLimit  int   // max bets inside BetVelocityWindow before flagging
	BetVelocityWindow time.Duration
	TransferRateLimit int // max transfers inside TransferRateWindow before flagging
	TransferRateWindow time.Duration

	// Income command rewards
	WorkReward    int64
	CollectReward int64
	DailyReward   int64
	WeeklyReward  int64

	// Cooldown windows
	WorkCooldown    time.Duration
	CollectCooldown time.Duration
	DailyCooldown   time.Duration
	WeeklyCooldown  time.Duration
	GameCooldown    time.Duration // per-game-command cooldown

	// Round lifecycle
	RoundTTL time.Duration // idle multi-step rounds are force-resolved after this

	// Privileged operations
	OwnerID int64 // Discord ID allowed to run admin commands

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	// Best effort; real deployments set env vars directly
	_ = godotenv.Load()

	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Economy defaults
		StartingBalance: 0,
		MinBet:          10,
		MaxBet:          10000,
		DailyWagerLimit: 50000,

		// Fraud defaults
		LargeBetThreshold:  10000,
		BetVelocityLimit:   20,
		BetVelocityWindow:  5 * time.Minute,
		TransferRateLimit:  10,
		TransferRateWindow: time.Hour,

		// Reward defaults
		WorkReward:    100,
		CollectReward: 50,
		DailyReward:   500,
		WeeklyReward:  2000,

		// Cooldown defaults
		WorkCooldown:    30 * time.Minute,
		CollectCooldown: time.Hour,
		DailyCooldown:   24 * time.Hour,
		WeeklyCooldown:  7 * 24 * time.Hour,
		GameCooldown:    10 * time.Second,

		RoundTTL: 2 * time.Minute,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if v := os.Getenv("STARTING_BALANCE"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.StartingBalance = parsed
		}
	}
	if v := os.Getenv("MIN_BET"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.MinBet = parsed
		}
	}
	if v := os.Getenv("MAX_BET"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.MaxBet = parsed
		}
	}
	if v := os.Getenv("DAILY_WAGER_LIMIT"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.DailyWagerLimit = parsed
		}
	}
	if v := os.Getenv("LARGE_BET_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.LargeBetThreshold = parsed
		}
	}
	if v := os.Getenv("OWNER_ID"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.OwnerID = parsed
		}
	}
	if v := os.Getenv("ROUND_TTL_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			config.RoundTTL = time.Duration(parsed) * time.Second
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	if config.MinBet <= 0 || config.MaxBet < config.MinBet {
		return nil, fmt.Errorf("invalid bet limits: min=%d max=%d", config.MinBet, config.MaxBet)
	}

	return config, nil
}
