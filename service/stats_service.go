package service

import (
	"context"
	"fmt"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// statsService implements the StatsService interface
type statsService struct {
	uowFactory UnitOfWorkFactory
}

// NewStatsService creates a new stats service
func NewStatsService(uowFactory UnitOfWorkFactory) StatsService {
	return &statsService{
		uowFactory: uowFactory,
	}
}

// GetLeaderboard returns the wealthiest users ranked by balance plus bank
func (s *statsService) GetLeaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallets, err := uow.WalletRepository().GetTopByTotal(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top wallets: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(wallets))
	for i, wallet := range wallets {
		entries = append(entries, &models.LeaderboardEntry{
			Rank:         i + 1,
			UserID:       wallet.UserID,
			Balance:      wallet.Balance,
			Bank:         wallet.Bank,
			TotalBalance: wallet.Total(),
		})
	}

	return entries, nil
}

// GetUserStats returns detailed gambling statistics for a specific user
func (s *statsService) GetUserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallet, err := uow.WalletRepository().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrWalletNotFound)
	}

	betStats, err := uow.BetRepository().GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bet stats: %w", err)
	}

	gameStats, err := uow.BetRepository().GetGameStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game stats: %w", err)
	}

	stats := &models.UserStats{
		Wallet:    wallet,
		BetStats:  betStats,
		GameStats: gameStats,
		NetProfit: betStats.TotalPayout - betStats.TotalWagered,
	}

	// Pushes neither win nor lose, so they stay out of the rate
	decided := betStats.TotalWins + betStats.TotalLosses
	if decided > 0 {
		stats.WinRate = float64(betStats.TotalWins) / float64(decided) * 100
	}

	return stats, nil
}
