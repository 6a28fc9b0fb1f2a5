package repository

import (
	"context"
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/database"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
	"github.com/TheCodeVerseHub/Eigen-Bot/service"
	"github.com/jackc/pgx/v5"
)

// WalletRepository implements the WalletRepository interface
type WalletRepository struct {
	q queryable
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *database.DB) *WalletRepository {
	return &WalletRepository{q: db.Pool}
}

// newWalletRepositoryWithTx creates a new wallet repository with a transaction
func newWalletRepositoryWithTx(tx queryable) *WalletRepository {
	return &WalletRepository{q: tx}
}

const walletColumns = `user_id, balance, bank, daily_wagered, last_daily_reset, created_at, updated_at`

// GetByUserID retrieves a wallet by the owner's Discord ID
func (r *WalletRepository) GetByUserID(ctx context.Context, userID int64) (*models.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1
	`

	var wallet models.Wallet
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&wallet.UserID,
		&wallet.Balance,
		&wallet.Bank,
		&wallet.DailyWagered,
		&wallet.LastDailyReset,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet for user %d: %w", userID, err)
	}

	return &wallet, nil
}

// Create creates a new wallet with the starting balance
func (r *WalletRepository) Create(ctx context.Context, userID int64, startingBalance int64) (*models.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
		RETURNING ` + walletColumns + `
	`

	var wallet models.Wallet
	err := r.q.QueryRow(ctx, query, userID, startingBalance).Scan(
		&wallet.UserID,
		&wallet.Balance,
		&wallet.Bank,
		&wallet.DailyWagered,
		&wallet.LastDailyReset,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create wallet for user %d: %w", userID, err)
	}

	return &wallet, nil
}

// AddBalance adds to a wallet's spendable balance atomically
func (r *WalletRepository) AddBalance(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE wallets
		SET balance = balance + $1, updated_at = NOW()
		WHERE user_id = $2
	`

	result, err := r.q.Exec(ctx, query, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to add balance for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", userID, service.ErrWalletNotFound)
	}

	return nil
}

// DeductBalance deducts from a wallet's spendable balance atomically,
// failing if the balance would go negative. The conditional update is the
// only funds check; concurrent deducts race safely on it.
func (r *WalletRepository) DeductBalance(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE wallets
		SET balance = balance - $1, updated_at = NOW()
		WHERE user_id = $2 AND balance >= $1
	`

	result, err := r.q.Exec(ctx, query, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to deduct balance for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		// Distinguish a missing wallet from insufficient funds
		wallet, err := r.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to check wallet: %w", err)
		}
		if wallet == nil {
			return fmt.Errorf("user %d: %w", userID, service.ErrWalletNotFound)
		}
		return fmt.Errorf("have %d, need %d: %w", wallet.Balance, amount, service.ErrInsufficientFunds)
	}

	return nil
}

// MoveToBank moves funds from the spendable balance into the bank pocket,
// failing if the balance is insufficient
func (r *WalletRepository) MoveToBank(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE wallets
		SET balance = balance - $1, bank = bank + $1, updated_at = NOW()
		WHERE user_id = $2 AND balance >= $1
	`

	result, err := r.q.Exec(ctx, query, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to move funds to bank for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		wallet, err := r.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to check wallet: %w", err)
		}
		if wallet == nil {
			return fmt.Errorf("user %d: %w", userID, service.ErrWalletNotFound)
		}
		return fmt.Errorf("have %d, need %d: %w", wallet.Balance, amount, service.ErrInsufficientFunds)
	}

	return nil
}

// MoveFromBank moves funds from the bank pocket back to the spendable
// balance, failing if the bank is insufficient
func (r *WalletRepository) MoveFromBank(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE wallets
		SET balance = balance + $1, bank = bank - $1, updated_at = NOW()
		WHERE user_id = $2 AND bank >= $1
	`

	result, err := r.q.Exec(ctx, query, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to move funds from bank for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		wallet, err := r.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to check wallet: %w", err)
		}
		if wallet == nil {
			return fmt.Errorf("user %d: %w", userID, service.ErrWalletNotFound)
		}
		return fmt.Errorf("have %d in bank, need %d: %w", wallet.Bank, amount, service.ErrInsufficientFunds)
	}

	return nil
}

// AddDailyWagered bumps the daily wagered counter, resetting it first when
// the last reset date is before today (UTC)
func (r *WalletRepository) AddDailyWagered(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE wallets
		SET daily_wagered = CASE WHEN last_daily_reset < CURRENT_DATE THEN $1 ELSE daily_wagered + $1 END,
		    last_daily_reset = CURRENT_DATE,
		    updated_at = NOW()
		WHERE user_id = $2
	`

	result, err := r.q.Exec(ctx, query, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to update daily wagered for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", userID, service.ErrWalletNotFound)
	}

	return nil
}

// GetDailyWagered returns how much the user has wagered today, treating a
// stale reset date as zero. Missing wallets count as zero wagered.
func (r *WalletRepository) GetDailyWagered(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT CASE WHEN last_daily_reset < CURRENT_DATE THEN 0 ELSE daily_wagered END
		FROM wallets
		WHERE user_id = $1
	`

	var wagered int64
	err := r.q.QueryRow(ctx, query, userID).Scan(&wagered)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get daily wagered for user %d: %w", userID, err)
	}

	return wagered, nil
}

// DeleteAll wipes every wallet, returning how many were removed. Bets and
// transactions must be deleted first for the FK chain.
func (r *WalletRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.q.Exec(ctx, `DELETE FROM wallets`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete wallets: %w", err)
	}
	return result.RowsAffected(), nil
}

// GetTopByTotal returns the wealthiest wallets ordered by combined
// balance and bank
func (r *WalletRepository) GetTopByTotal(ctx context.Context, limit int) ([]*models.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		ORDER BY balance + bank DESC, user_id ASC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top wallets: %w", err)
	}
	defer rows.Close()

	var wallets []*models.Wallet
	for rows.Next() {
		var wallet models.Wallet
		err := rows.Scan(
			&wallet.UserID,
			&wallet.Balance,
			&wallet.Bank,
			&wallet.DailyWagered,
			&wallet.LastDailyReset,
			&wallet.CreatedAt,
			&wallet.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, &wallet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallets: %w", err)
	}

	return wallets, nil
}
