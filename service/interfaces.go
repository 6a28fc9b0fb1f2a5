package service

import (
	"context"
	"time"

	"github.com/TheCodeVerseHub/Eigen-Bot/events"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// WalletRepository defines the interface for wallet data access
type WalletRepository interface {
	// GetByUserID retrieves a wallet by the owner's Discord ID
	GetByUserID(ctx context.Context, userID int64) (*models.Wallet, error)

	// Create creates a new wallet with the starting balance
	Create(ctx context.Context, userID int64, startingBalance int64) (*models.Wallet, error)

	// AddBalance adds to a wallet's spendable balance atomically
	AddBalance(ctx context.Context, userID int64, amount int64) error

	// DeductBalance deducts from a wallet's spendable balance atomically,
	// failing if the balance would go negative
	DeductBalance(ctx context.Context, userID int64, amount int64) error

	// MoveToBank moves funds from balance into the bank pocket
	MoveToBank(ctx context.Context, userID int64, amount int64) error

	// MoveFromBank moves funds from the bank pocket back to balance
	MoveFromBank(ctx context.Context, userID int64, amount int64) error

	// AddDailyWagered bumps the rolling daily stake counter
	AddDailyWagered(ctx context.Context, userID int64, amount int64) error

	// GetDailyWagered returns today's wagered total for a user
	GetDailyWagered(ctx context.Context, userID int64) (int64, error)

	// GetTopByTotal returns the wealthiest wallets by balance plus bank
	GetTopByTotal(ctx context.Context, limit int) ([]*models.Wallet, error)

	// DeleteAll wipes every wallet, returning how many were removed
	DeleteAll(ctx context.Context) (int64, error)
}

// TransactionRepository defines the interface for the append-only ledger
type TransactionRepository interface {
	// Record appends a new ledger entry
	Record(ctx context.Context, txn *models.Transaction) error

	// GetByUser returns the most recent ledger entries for a user
	GetByUser(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error)

	// DeleteAll wipes the ledger
	DeleteAll(ctx context.Context) error
}

// BetRepository defines the interface for bet data access
type BetRepository interface {
	// Create creates a new bet record
	Create(ctx context.Context, bet *models.Bet) error

	// GetByID retrieves a bet by its ID
	GetByID(ctx context.Context, id int64) (*models.Bet, error)

	// GetByUser returns the most recent bets for a user
	GetByUser(ctx context.Context, userID int64, limit int) ([]*models.Bet, error)

	// GetStats returns aggregated betting statistics for a user
	GetStats(ctx context.Context, userID int64) (*models.BetStats, error)

	// GetGameStats returns per-game aggregated statistics for a user
	GetGameStats(ctx context.Context, userID int64) ([]*models.GameStats, error)

	// DeleteAll wipes all bet records
	DeleteAll(ctx context.Context) error
}

// LedgerService defines the interface for wallet and ledger operations.
// Every mutation runs inside one unit of work; business failures are the
// sentinel errors from errors.go, storage failures are wrapped pgx errors.
type LedgerService interface {
	// GetOrCreateWallet retrieves an existing wallet or creates one with the
	// configured starting balance
	GetOrCreateWallet(ctx context.Context, userID int64) (*models.Wallet, error)

	// AddMoney credits the spendable balance and appends a ledger entry.
	// A zero amount is accepted and still appends a zero-amount entry;
	// push settlements rely on that.
	AddMoney(ctx context.Context, userID int64, amount int64, txType models.TransactionType, description string, game *string) error

	// SubtractMoney debits the spendable balance via a conditional update
	// and appends a negative ledger entry. No partial mutation on failure.
	SubtractMoney(ctx context.Context, userID int64, amount int64, txType models.TransactionType, description string, game *string) error

	// TransferMoney atomically moves funds between two wallets, creating the
	// recipient wallet if needed, and appends paired transfer entries
	TransferMoney(ctx context.Context, fromUserID, toUserID int64, amount int64, description string) (*models.TransferResult, error)

	// Deposit moves funds from balance into the bank pocket. Returns the
	// updated wallet and the amount actually moved.
	Deposit(ctx context.Context, userID int64, amount Amount) (*models.Wallet, int64, error)

	// Withdraw moves funds from the bank pocket back to balance. Returns the
	// updated wallet and the amount actually moved.
	Withdraw(ctx context.Context, userID int64, amount Amount) (*models.Wallet, int64, error)

	// DailyWagered returns how much the user has staked today
	DailyWagered(ctx context.Context, userID int64) (int64, error)

	// ResetEconomy wipes bets, transactions and wallets, in that order.
	// Returns the number of wallets removed.
	ResetEconomy(ctx context.Context) (int64, error)
}

// FraudDetector flags suspicious activity. allowed reports whether the
// action may proceed; a non-empty reason means the action was flagged even
// when it is allowed to continue.
type FraudDetector interface {
	Check(userID int64, amount int64, action string) (allowed bool, reason string)
}

// PlayResult is the settled outcome of a single game round
type PlayResult struct {
	Bet        *models.Bet
	Outcome    models.Outcome
	Payout     int64
	NewBalance int64
	Detail     map[string]any
	FraudFlag  string // advisory heuristic note, empty when clean
}

// GameService defines the interface for single-shot game operations. Each
// method validates the bet against the wager policy, debits the stake,
// resolves the game and settles it atomically.
type GameService interface {
	PlayRoulette(ctx context.Context, userID int64, amount int64, betType string, number int) (*PlayResult, error)
	PlaySlots(ctx context.Context, userID int64, amount int64) (*PlayResult, error)
	PlayDice(ctx context.Context, userID int64, amount int64, betType string) (*PlayResult, error)
	PlayCoinflip(ctx context.Context, userID int64, amount int64, side string) (*PlayResult, error)
	PlayCrash(ctx context.Context, userID int64, amount int64, target float64) (*PlayResult, error)
	PlayBaccarat(ctx context.Context, userID int64, amount int64, side string) (*PlayResult, error)
	PlayWar(ctx context.Context, userID int64, amount int64) (*PlayResult, error)
	PlayKeno(ctx context.Context, userID int64, amount int64, picks []int) (*PlayResult, error)
	PlayHighLow(ctx context.Context, userID int64, amount int64, guess string) (*PlayResult, error)
	PlayRussianRoulette(ctx context.Context, userID int64, amount int64) (*PlayResult, error)
}

// RoundView is a renderable snapshot of a multi-step round
type RoundView struct {
	RoundID   string
	Game      string
	UserID    int64
	Bet       int64
	State     string
	Detail    map[string]any
	Settled   bool
	Result    *PlayResult // non-nil once settled
	ExpiresAt time.Time
	FraudFlag string // advisory heuristic note from the starting stake
}

// RoundService defines the interface for multi-step game rounds (blackjack
// and poker). At most one active round per user per game; rounds expire and
// are force-resolved by the sweeper.
type RoundService interface {
	// StartBlackjack debits the stake and deals a new blackjack round
	StartBlackjack(ctx context.Context, userID int64, amount int64) (*RoundView, error)

	// StartPoker debits the stake and deals a new heads-up poker round
	StartPoker(ctx context.Context, userID int64, amount int64) (*RoundView, error)

	// Advance applies a player action to an active round, settling it when
	// the action is terminal
	Advance(ctx context.Context, userID int64, roundID string, action string) (*RoundView, error)

	// SweepExpired force-resolves rounds past their deadline and returns how
	// many were settled
	SweepExpired(ctx context.Context) int
}

// StatsService defines the interface for statistics operations
type StatsService interface {
	// GetLeaderboard returns the wealthiest users ranked by balance plus bank
	GetLeaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)

	// GetUserStats returns detailed gambling statistics for a user
	GetUserStats(ctx context.Context, userID int64) (*models.UserStats, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	WalletRepository() WalletRepository
	TransactionRepository() TransactionRepository
	BetRepository() BetRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
