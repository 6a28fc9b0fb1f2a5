package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/config"
	"github.com/TheCodeVerseHub/Eigen-Bot/events"
	"github.com/TheCodeVerseHub/Eigen-Bot/games"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// gameService implements the GameService interface. Every single-shot game
// runs the same pipeline: cooldown gate, limit validation, fraud check,
// stake debit, engine resolution and atomic settlement.
type gameService struct {
	uowFactory UnitOfWorkFactory
	policy     *WagerPolicy
	detector   FraudDetector

	rng     games.Rand
	newDeck func() *cards.Deck

	startingBalance int64
	gameCooldown    time.Duration
}

// NewGameService creates a new game service backed by the given policy
func NewGameService(uowFactory UnitOfWorkFactory, policy *WagerPolicy, cfg *config.Config) GameService {
	return &gameService{
		uowFactory:      uowFactory,
		policy:          policy,
		detector:        policy,
		rng:             games.NewRand(),
		newDeck:         func() *cards.Deck { return cards.New(1) },
		startingBalance: cfg.StartingBalance,
		gameCooldown:    cfg.GameCooldown,
	}
}

// playFn resolves a game once the stake has been secured. Engines return an
// error only for invalid player parameters, before consuming any randomness.
type playFn func() (*games.Result, error)

// settle runs one single-shot game round end to end. Stake debit, daily
// wagered bump, ledger rows, the bet record and the settlement event all
// commit together or not at all.
func (s *gameService) settle(ctx context.Context, userID int64, game string, amount int64, betType string, play playFn) (*PlayResult, error) {
	if remaining := s.policy.RemainingCooldown(game, userID); remaining > 0 {
		return nil, &CooldownError{Command: game, Remaining: remaining}
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallet, err := getOrCreateWallet(ctx, uow, userID, s.startingBalance)
	if err != nil {
		return nil, err
	}

	dailyWagered, err := uow.WalletRepository().GetDailyWagered(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily wagered: %w", err)
	}
	if ok, reason := s.policy.ValidateBetAmount(amount, dailyWagered); !ok {
		return nil, &BetRejectedError{Reason: reason}
	}

	// Bet flags are advisory: play continues, the reason rides along on the
	// result and the policy has already published the audit event
	_, fraudFlag := s.detector.Check(userID, amount, FraudActionBet)

	if err := uow.WalletRepository().DeductBalance(ctx, userID, amount); err != nil {
		return nil, fmt.Errorf("failed to take stake: %w", err)
	}
	if err := uow.WalletRepository().AddDailyWagered(ctx, userID, amount); err != nil {
		return nil, fmt.Errorf("failed to update daily wagered: %w", err)
	}

	result, err := play()
	if err != nil {
		// Invalid player parameters; the rollback returns the stake
		return nil, &BetRejectedError{Reason: err.Error()}
	}

	stakeTxn := &models.Transaction{
		UserID:      userID,
		Amount:      -amount,
		Type:        models.TransactionTypeBet,
		Description: fmt.Sprintf("%s bet", game),
		Game:        &game,
	}
	if err := recordTransaction(ctx, uow, stakeTxn, wallet.Balance, wallet.Balance-amount); err != nil {
		return nil, err
	}

	if result.Payout > 0 {
		if err := uow.WalletRepository().AddBalance(ctx, userID, result.Payout); err != nil {
			return nil, fmt.Errorf("failed to credit payout: %w", err)
		}

		payoutType := models.TransactionTypeWin
		if result.Outcome == models.OutcomePush {
			payoutType = models.TransactionTypePush
		}
		payoutTxn := &models.Transaction{
			UserID:      userID,
			Amount:      result.Payout,
			Type:        payoutType,
			Description: fmt.Sprintf("%s %s", game, result.Outcome),
			Game:        &game,
		}
		if err := recordTransaction(ctx, uow, payoutTxn, wallet.Balance-amount, wallet.Balance-amount+result.Payout); err != nil {
			return nil, err
		}
	}

	bet := &models.Bet{
		UserID:   userID,
		Game:     game,
		Amount:   amount,
		Outcome:  result.Outcome,
		Payout:   result.Payout,
		GameData: result.Detail,
	}
	if betType != "" {
		bet.BetType = &betType
	}
	if err := uow.BetRepository().Create(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to record bet: %w", err)
	}

	uow.EventBus().Publish(events.BetSettledEvent{
		UserID:  userID,
		BetID:   bet.ID,
		Game:    game,
		Amount:  amount,
		Outcome: result.Outcome,
		Payout:  result.Payout,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.policy.SetCooldown(game, userID, s.gameCooldown)

	return &PlayResult{
		Bet:        bet,
		Outcome:    result.Outcome,
		Payout:     result.Payout,
		NewBalance: wallet.Balance - amount + result.Payout,
		Detail:     result.Detail,
		FraudFlag:  fraudFlag,
	}, nil
}

// PlayRoulette spins the wheel for one bet
func (s *gameService) PlayRoulette(ctx context.Context, userID int64, amount int64, betType string, number int) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameRoulette, amount, betType, func() (*games.Result, error) {
		return games.PlayRoulette(s.rng, amount, betType, number)
	})
}

// PlaySlots pulls the lever once
func (s *gameService) PlaySlots(ctx context.Context, userID int64, amount int64) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameSlots, amount, "", func() (*games.Result, error) {
		return games.PlaySlots(s.rng, amount), nil
	})
}

// PlayDice rolls two dice against the prediction
func (s *gameService) PlayDice(ctx context.Context, userID int64, amount int64, betType string) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameDice, amount, betType, func() (*games.Result, error) {
		return games.PlayDice(s.rng, amount, betType)
	})
}

// PlayCoinflip flips a coin against the chosen side
func (s *gameService) PlayCoinflip(ctx context.Context, userID int64, amount int64, side string) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameCoinflip, amount, side, func() (*games.Result, error) {
		return games.PlayCoinflip(s.rng, amount, side)
	})
}

// PlayCrash runs one crash round with a pre-committed cash-out target
func (s *gameService) PlayCrash(ctx context.Context, userID int64, amount int64, target float64) (*PlayResult, error) {
	betType := fmt.Sprintf("%.2fx", target)
	return s.settle(ctx, userID, games.GameCrash, amount, betType, func() (*games.Result, error) {
		return games.PlayCrash(s.rng, amount, target)
	})
}

// PlayBaccarat deals one baccarat coup for the chosen side
func (s *gameService) PlayBaccarat(ctx context.Context, userID int64, amount int64, side string) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameBaccarat, amount, side, func() (*games.Result, error) {
		return games.PlayBaccarat(s.newDeck(), amount, side)
	})
}

// PlayWar plays one hand of casino war
func (s *gameService) PlayWar(ctx context.Context, userID int64, amount int64) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameWar, amount, "", func() (*games.Result, error) {
		return games.PlayWar(s.newDeck(), amount), nil
	})
}

// PlayKeno draws twenty numbers against the player's picks
func (s *gameService) PlayKeno(ctx context.Context, userID int64, amount int64, picks []int) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameKeno, amount, "", func() (*games.Result, error) {
		return games.PlayKeno(s.rng, amount, picks)
	})
}

// PlayHighLow draws a card, then a second one against the guess
func (s *gameService) PlayHighLow(ctx context.Context, userID int64, amount int64, guess string) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameHighLow, amount, guess, func() (*games.Result, error) {
		return games.PlayHighLow(s.newDeck(), amount, guess)
	})
}

// PlayRussianRoulette spins the cylinder and pulls the trigger
func (s *gameService) PlayRussianRoulette(ctx context.Context, userID int64, amount int64) (*PlayResult, error) {
	return s.settle(ctx, userID, games.GameRussianRoulette, amount, "", func() (*games.Result, error) {
		return games.PlayRussianRoulette(s.rng, amount), nil
	})
}
