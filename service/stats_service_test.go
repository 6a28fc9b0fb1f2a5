package service

import (
	"context"
	"testing"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetLeaderboard(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockWalletRepo := new(MockWalletRepository)

	mockUoW.SetRepositories(mockWalletRepo, nil, nil)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockWalletRepo.On("GetTopByTotal", ctx, 3).Return([]*models.Wallet{
		{UserID: 1, Balance: 5000, Bank: 5000},
		{UserID: 2, Balance: 9000, Bank: 0},
		{UserID: 3, Balance: 100, Bank: 4000},
	}, nil)

	service := NewStatsService(mockFactory)
	entries, err := service.GetLeaderboard(ctx, 3)

	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, int64(1), entries[0].UserID)
	assert.Equal(t, int64(10000), entries[0].TotalBalance)

	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, int64(9000), entries[1].TotalBalance)

	assert.Equal(t, 3, entries[2].Rank)
	assert.Equal(t, int64(100), entries[2].Balance)
	assert.Equal(t, int64(4000), entries[2].Bank)
	assert.Equal(t, int64(4100), entries[2].TotalBalance)
}

func TestStatsService_GetUserStats(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockWalletRepo := new(MockWalletRepository)
	mockBetRepo := new(MockBetRepository)

	mockUoW.SetRepositories(mockWalletRepo, nil, mockBetRepo)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	wallet := &models.Wallet{UserID: 42, Balance: 2500, Bank: 1000}
	mockWalletRepo.On("GetByUserID", ctx, int64(42)).Return(wallet, nil)

	mockBetRepo.On("GetStats", ctx, int64(42)).Return(&models.BetStats{
		TotalBets:    10,
		TotalWins:    4,
		TotalLosses:  4,
		TotalPushes:  2,
		TotalWagered: 1000,
		TotalPayout:  1150,
		BiggestWin:   300,
		BiggestLoss:  100,
	}, nil)
	mockBetRepo.On("GetGameStats", ctx, int64(42)).Return([]*models.GameStats{
		{Game: "blackjack", TotalBets: 6, TotalWins: 3, TotalWagered: 600, TotalPayout: 800},
		{Game: "slots", TotalBets: 4, TotalWins: 1, TotalWagered: 400, TotalPayout: 350},
	}, nil)

	service := NewStatsService(mockFactory)
	stats, err := service.GetUserStats(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, wallet, stats.Wallet)
	assert.Equal(t, int64(150), stats.NetProfit)
	// 4 wins out of 8 decided bets; the 2 pushes do not count
	assert.InDelta(t, 50.0, stats.WinRate, 0.001)
	require.Len(t, stats.GameStats, 2)
	assert.Equal(t, "blackjack", stats.GameStats[0].Game)
}

func TestStatsService_GetUserStats_NoDecidedBets(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockWalletRepo := new(MockWalletRepository)
	mockBetRepo := new(MockBetRepository)

	mockUoW.SetRepositories(mockWalletRepo, nil, mockBetRepo)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockWalletRepo.On("GetByUserID", ctx, int64(42)).Return(&models.Wallet{UserID: 42}, nil)
	mockBetRepo.On("GetStats", ctx, int64(42)).Return(&models.BetStats{}, nil)
	mockBetRepo.On("GetGameStats", ctx, int64(42)).Return([]*models.GameStats{}, nil)

	service := NewStatsService(mockFactory)
	stats, err := service.GetUserStats(ctx, 42)

	require.NoError(t, err)
	assert.Zero(t, stats.WinRate)
	assert.Zero(t, stats.NetProfit)
}

func TestStatsService_GetUserStats_UnknownUser(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockWalletRepo := new(MockWalletRepository)

	mockUoW.SetRepositories(mockWalletRepo, nil, nil)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockWalletRepo.On("GetByUserID", ctx, int64(42)).Return(nil, nil)

	service := NewStatsService(mockFactory)
	_, err := service.GetUserStats(ctx, 42)

	assert.ErrorIs(t, err, ErrWalletNotFound)
}
