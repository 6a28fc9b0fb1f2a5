package repository

import (
	"context"
	"testing"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
	"github.com/TheCodeVerseHub/Eigen-Bot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	walletRepo := NewWalletRepository(testDB.DB)
	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	_, err := walletRepo.Create(ctx, 100, 1000)
	require.NoError(t, err)

	t.Run("missing bet returns nil", func(t *testing.T) {
		bet, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, bet)
	})

	t.Run("round-trips game data through jsonb", func(t *testing.T) {
		bet := testutil.CreateTestBetWithType(100, "blackjack", "standard", 100, models.OutcomeWin, 250)
		bet.GameData = map[string]any{
			"player_hand":  []any{"A♠", "K♥"},
			"player_value": float64(21),
			"doubled":      false,
		}

		require.NoError(t, repo.Create(ctx, bet))
		assert.NotZero(t, bet.ID)
		assert.False(t, bet.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, bet.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "blackjack", got.Game)
		require.NotNil(t, got.BetType)
		assert.Equal(t, "standard", *got.BetType)
		assert.Equal(t, models.OutcomeWin, got.Outcome)
		assert.Equal(t, int64(250), got.Payout)
		// JSON numbers come back as float64
		assert.Equal(t, float64(21), got.GameData["player_value"])
		assert.Equal(t, []any{"A♠", "K♥"}, got.GameData["player_hand"])
		assert.Equal(t, false, got.GameData["doubled"])
	})

	t.Run("bet type stays optional", func(t *testing.T) {
		bet := testutil.CreateTestBet(100, "slots", 50, models.OutcomeLose, 0)
		require.NoError(t, repo.Create(ctx, bet))

		got, err := repo.GetByID(ctx, bet.ID)
		require.NoError(t, err)
		assert.Nil(t, got.BetType)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		bet := testutil.CreateTestBet(999, "slots", 50, models.OutcomeLose, 0)
		assert.Error(t, repo.Create(ctx, bet))
	})
}

func TestBetRepository_GetByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	walletRepo := NewWalletRepository(testDB.DB)
	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	_, err := walletRepo.Create(ctx, 100, 1000)
	require.NoError(t, err)
	_, err = walletRepo.Create(ctx, 200, 1000)
	require.NoError(t, err)

	for _, game := range []string{"slots", "dice", "roulette"} {
		require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(100, game, 100, models.OutcomeLose, 0)))
	}
	require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(200, "war", 100, models.OutcomeWin, 200)))

	bets, err := repo.GetByUser(ctx, 100, 2)
	require.NoError(t, err)
	require.Len(t, bets, 2)
	// Newest first
	assert.Equal(t, "roulette", bets[0].Game)
	assert.Equal(t, "dice", bets[1].Game)
}

func TestBetRepository_GetStats(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	walletRepo := NewWalletRepository(testDB.DB)
	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	_, err := walletRepo.Create(ctx, 100, 10000)
	require.NoError(t, err)

	t.Run("empty stats for a fresh user", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, 100)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalBets)
		assert.Zero(t, stats.TotalWagered)
	})

	t.Run("aggregates across outcomes", func(t *testing.T) {
		seed := []*models.Bet{
			testutil.CreateTestBet(100, "blackjack", 100, models.OutcomeWin, 250),
			testutil.CreateTestBet(100, "blackjack", 200, models.OutcomeWin, 400),
			testutil.CreateTestBet(100, "slots", 300, models.OutcomeLose, 0),
			testutil.CreateTestBet(100, "dice", 150, models.OutcomeLose, 0),
			testutil.CreateTestBet(100, "poker", 120, models.OutcomeFold, 0),
			testutil.CreateTestBet(100, "war", 80, models.OutcomePush, 80),
		}
		for _, bet := range seed {
			require.NoError(t, repo.Create(ctx, bet))
		}

		stats, err := repo.GetStats(ctx, 100)
		require.NoError(t, err)

		assert.Equal(t, 6, stats.TotalBets)
		assert.Equal(t, 2, stats.TotalWins)
		// Folds count as losses
		assert.Equal(t, 3, stats.TotalLosses)
		assert.Equal(t, 1, stats.TotalPushes)
		assert.Equal(t, int64(950), stats.TotalWagered)
		assert.Equal(t, int64(730), stats.TotalPayout)
		// Biggest win is net of the stake: 400 - 200
		assert.Equal(t, int64(200), stats.BiggestWin)
		assert.Equal(t, int64(300), stats.BiggestLoss)
	})
}

func TestBetRepository_GetGameStats(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	walletRepo := NewWalletRepository(testDB.DB)
	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	_, err := walletRepo.Create(ctx, 100, 10000)
	require.NoError(t, err)

	seed := []*models.Bet{
		testutil.CreateTestBet(100, "slots", 100, models.OutcomeLose, 0),
		testutil.CreateTestBet(100, "slots", 100, models.OutcomeWin, 500),
		testutil.CreateTestBet(100, "slots", 100, models.OutcomeLose, 0),
		testutil.CreateTestBet(100, "dice", 200, models.OutcomeWin, 400),
	}
	for _, bet := range seed {
		require.NoError(t, repo.Create(ctx, bet))
	}

	stats, err := repo.GetGameStats(ctx, 100)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Most played game first
	assert.Equal(t, "slots", stats[0].Game)
	assert.Equal(t, 3, stats[0].TotalBets)
	assert.Equal(t, 1, stats[0].TotalWins)
	assert.Equal(t, int64(300), stats[0].TotalWagered)
	assert.Equal(t, int64(500), stats[0].TotalPayout)

	assert.Equal(t, "dice", stats[1].Game)
	assert.Equal(t, 1, stats[1].TotalBets)
}

func TestBetRepository_DeleteAll(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	walletRepo := NewWalletRepository(testDB.DB)
	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	_, err := walletRepo.Create(ctx, 100, 1000)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(100, "slots", 100, models.OutcomeLose, 0)))

	require.NoError(t, repo.DeleteAll(ctx))

	bets, err := repo.GetByUser(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, bets)
}
