package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/database"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
	"github.com/jackc/pgx/v5"
)

// BetRepository implements the BetRepository interface
type BetRepository struct {
	q queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) *BetRepository {
	return &BetRepository{q: db.Pool}
}

// newBetRepositoryWithTx creates a new bet repository with a transaction
func newBetRepositoryWithTx(tx queryable) *BetRepository {
	return &BetRepository{q: tx}
}

// Create creates a new bet record
func (r *BetRepository) Create(ctx context.Context, bet *models.Bet) error {
	// Convert game data to JSON
	gameDataJSON, err := json.Marshal(bet.GameData)
	if err != nil {
		return fmt.Errorf("failed to marshal game data: %w", err)
	}

	query := `
		INSERT INTO bets (user_id, game, amount, bet_type, outcome, payout, game_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err = r.q.QueryRow(ctx, query,
		bet.UserID,
		bet.Game,
		bet.Amount,
		bet.BetType,
		bet.Outcome,
		bet.Payout,
		gameDataJSON,
	).Scan(&bet.ID, &bet.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create bet for user %d: %w", bet.UserID, err)
	}

	return nil
}

// GetByID retrieves a bet by its ID
func (r *BetRepository) GetByID(ctx context.Context, id int64) (*models.Bet, error) {
	query := `
		SELECT id, user_id, game, amount, bet_type, outcome, payout, game_data, created_at
		FROM bets
		WHERE id = $1
	`

	bet, err := scanBet(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet %d: %w", id, err)
	}

	return bet, nil
}

// GetByUser returns the most recent bets for a user
func (r *BetRepository) GetByUser(ctx context.Context, userID int64, limit int) ([]*models.Bet, error) {
	query := `
		SELECT id, user_id, game, amount, bet_type, outcome, payout, game_data, created_at
		FROM bets
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets for user %d: %w", userID, err)
	}
	defer rows.Close()

	var bets []*models.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}

	return bets, nil
}

// GetStats returns aggregated betting statistics for a user
func (r *BetRepository) GetStats(ctx context.Context, userID int64) (*models.BetStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE outcome = 'win'),
			COUNT(*) FILTER (WHERE outcome IN ('lose', 'fold')),
			COUNT(*) FILTER (WHERE outcome = 'push'),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(payout), 0),
			COALESCE(MAX(CASE WHEN outcome = 'win' THEN payout - amount END), 0),
			COALESCE(MAX(CASE WHEN outcome IN ('lose', 'fold') THEN amount END), 0)
		FROM bets
		WHERE user_id = $1
	`

	var stats models.BetStats
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&stats.TotalBets,
		&stats.TotalWins,
		&stats.TotalLosses,
		&stats.TotalPushes,
		&stats.TotalWagered,
		&stats.TotalPayout,
		&stats.BiggestWin,
		&stats.BiggestLoss,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get bet stats for user %d: %w", userID, err)
	}

	return &stats, nil
}

// GetGameStats returns per-game aggregated statistics for a user, most
// played games first
func (r *BetRepository) GetGameStats(ctx context.Context, userID int64) ([]*models.GameStats, error) {
	query := `
		SELECT
			game,
			COUNT(*),
			COUNT(*) FILTER (WHERE outcome = 'win'),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(payout), 0)
		FROM bets
		WHERE user_id = $1
		GROUP BY game
		ORDER BY COUNT(*) DESC, game ASC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game stats for user %d: %w", userID, err)
	}
	defer rows.Close()

	var stats []*models.GameStats
	for rows.Next() {
		var gs models.GameStats
		err := rows.Scan(
			&gs.Game,
			&gs.TotalBets,
			&gs.TotalWins,
			&gs.TotalWagered,
			&gs.TotalPayout,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game stats: %w", err)
		}
		stats = append(stats, &gs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game stats: %w", err)
	}

	return stats, nil
}

// DeleteAll wipes all bet records. Only the admin full economy reset uses
// this; bets must go before transactions and wallets for the FK chain.
func (r *BetRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM bets`); err != nil {
		return fmt.Errorf("failed to delete bets: %w", err)
	}
	return nil
}

// scanBet scans a single bet row including its JSON game data
func scanBet(row pgx.Row) (*models.Bet, error) {
	var bet models.Bet
	var gameDataJSON []byte

	err := row.Scan(
		&bet.ID,
		&bet.UserID,
		&bet.Game,
		&bet.Amount,
		&bet.BetType,
		&bet.Outcome,
		&bet.Payout,
		&gameDataJSON,
		&bet.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(gameDataJSON) > 0 {
		if err := json.Unmarshal(gameDataJSON, &bet.GameData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game data: %w", err)
		}
	}

	return &bet, nil
}
