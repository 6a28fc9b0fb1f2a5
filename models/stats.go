package models

// BetStats represents aggregated betting statistics across all games
type BetStats struct {
	TotalBets    int
	TotalWins    int
	TotalLosses  int
	TotalPushes  int
	TotalWagered int64
	TotalPayout  int64
	BiggestWin   int64 // largest single net win (payout minus stake)
	BiggestLoss  int64 // largest single losing stake
}

// GameStats represents aggregated statistics for a single game
type GameStats struct {
	Game         string
	TotalBets    int
	TotalWins    int
	TotalWagered int64
	TotalPayout  int64
}

// UserStats represents combined statistics for a user
type UserStats struct {
	Wallet    *Wallet
	BetStats  *BetStats
	GameStats []*GameStats
	NetProfit int64   // TotalPayout - TotalWagered
	WinRate   float64 // percentage 0-100, pushes excluded
}

// LeaderboardEntry represents a user's entry on the wealth leaderboard
type LeaderboardEntry struct {
	Rank         int
	UserID       int64
	Balance      int64
	Bank         int64
	TotalBalance int64 // Balance + Bank
}
