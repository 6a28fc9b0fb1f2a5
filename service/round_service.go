package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TheCodeVerseHub/Eigen-Bot/cards"
	"github.com/TheCodeVerseHub/Eigen-Bot/config"
	"github.com/TheCodeVerseHub/Eigen-Bot/events"
	"github.com/TheCodeVerseHub/Eigen-Bot/games"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"

	log "github.com/sirupsen/logrus"
)

type roundKey struct {
	userID int64
	game   string
}

// managedRound is one live multi-step round held in memory. The stake has
// already been debited; settlement credits the payout and writes the bet
// record. Settled rounds linger until their retention window passes so a
// late action gets ErrRoundSettled instead of vanishing.
type managedRound struct {
	id        string
	userID    int64
	game      string
	stake     int64 // total debited so far, grows on double down
	createdAt time.Time
	expiresAt time.Time

	blackjack *games.BlackjackRound
	poker     *games.PokerRound

	mu      sync.Mutex
	settled bool
	result  *PlayResult
}

// roundService implements the RoundService interface with an in-memory
// round store. At most one active round per user per game.
type roundService struct {
	uowFactory UnitOfWorkFactory
	policy     *WagerPolicy
	detector   FraudDetector

	newDeck func() *cards.Deck
	clock   func() time.Time

	startingBalance int64
	gameCooldown    time.Duration
	roundTTL        time.Duration

	mu     sync.RWMutex
	rounds map[string]*managedRound
	active map[roundKey]string
}

// NewRoundService creates a new round service backed by the given policy
func NewRoundService(uowFactory UnitOfWorkFactory, policy *WagerPolicy, cfg *config.Config) RoundService {
	return &roundService{
		uowFactory:      uowFactory,
		policy:          policy,
		detector:        policy,
		newDeck:         func() *cards.Deck { return cards.New(1) },
		clock:           time.Now,
		startingBalance: cfg.StartingBalance,
		gameCooldown:    cfg.GameCooldown,
		roundTTL:        cfg.RoundTTL,
		rounds:          make(map[string]*managedRound),
		active:          make(map[roundKey]string),
	}
}

// StartBlackjack debits the stake and deals a new blackjack round. A player
// natural settles immediately.
func (s *roundService) StartBlackjack(ctx context.Context, userID int64, amount int64) (*RoundView, error) {
	return s.start(ctx, userID, games.GameBlackjack, amount)
}

// StartPoker debits the stake and deals a new heads-up poker round
func (s *roundService) StartPoker(ctx context.Context, userID int64, amount int64) (*RoundView, error) {
	return s.start(ctx, userID, games.GamePoker, amount)
}

func (s *roundService) start(ctx context.Context, userID int64, game string, amount int64) (*RoundView, error) {
	if remaining := s.policy.RemainingCooldown(game, userID); remaining > 0 {
		return nil, &CooldownError{Command: game, Remaining: remaining}
	}

	key := roundKey{userID: userID, game: game}

	// Reserve the active slot before touching money so two concurrent
	// starts cannot both debit
	s.mu.Lock()
	if _, exists := s.active[key]; exists {
		s.mu.Unlock()
		return nil, ErrRoundActive
	}
	s.active[key] = ""
	s.mu.Unlock()

	release := func() {
		s.mu.Lock()
		if s.active[key] == "" {
			delete(s.active, key)
		}
		s.mu.Unlock()
	}

	fraudFlag, err := s.secureStake(ctx, userID, game, amount)
	if err != nil {
		release()
		return nil, err
	}

	now := s.clock()
	round := &managedRound{
		id:        uuid.New().String(),
		userID:    userID,
		game:      game,
		stake:     amount,
		createdAt: now,
		expiresAt: now.Add(s.roundTTL),
	}

	deck := s.newDeck()
	switch game {
	case games.GameBlackjack:
		round.blackjack = games.NewBlackjackRound(deck, amount)
	case games.GamePoker:
		round.poker = games.NewPokerRound(deck, amount)
	}

	s.mu.Lock()
	s.rounds[round.id] = round
	s.active[key] = round.id
	s.mu.Unlock()

	s.policy.SetCooldown(game, userID, s.gameCooldown)

	round.mu.Lock()
	defer round.mu.Unlock()

	if s.engineSettled(round) {
		if err := s.settleLocked(ctx, round); err != nil {
			return nil, err
		}
	}

	view := s.viewLocked(round)
	view.FraudFlag = fraudFlag
	return view, nil
}

// secureStake validates the bet against the policy and debits it inside one
// transaction, appending the stake ledger row. Returns any advisory fraud
// flag.
func (s *roundService) secureStake(ctx context.Context, userID int64, game string, amount int64) (string, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallet, err := getOrCreateWallet(ctx, uow, userID, s.startingBalance)
	if err != nil {
		return "", err
	}

	dailyWagered, err := uow.WalletRepository().GetDailyWagered(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get daily wagered: %w", err)
	}
	if ok, reason := s.policy.ValidateBetAmount(amount, dailyWagered); !ok {
		return "", &BetRejectedError{Reason: reason}
	}

	_, fraudFlag := s.detector.Check(userID, amount, FraudActionBet)

	if err := uow.WalletRepository().DeductBalance(ctx, userID, amount); err != nil {
		return "", fmt.Errorf("failed to take stake: %w", err)
	}
	if err := uow.WalletRepository().AddDailyWagered(ctx, userID, amount); err != nil {
		return "", fmt.Errorf("failed to update daily wagered: %w", err)
	}

	stakeTxn := &models.Transaction{
		UserID:      userID,
		Amount:      -amount,
		Type:        models.TransactionTypeBet,
		Description: fmt.Sprintf("%s bet", game),
		Game:        &game,
	}
	if err := recordTransaction(ctx, uow, stakeTxn, wallet.Balance, wallet.Balance-amount); err != nil {
		return "", err
	}

	if err := uow.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return fraudFlag, nil
}

// Advance applies a player action to an active round, settling it when the
// action is terminal
func (s *roundService) Advance(ctx context.Context, userID int64, roundID string, action string) (*RoundView, error) {
	s.mu.RLock()
	round, ok := s.rounds[roundID]
	s.mu.RUnlock()

	// A round belonging to someone else looks like no round at all
	if !ok || round.userID != userID {
		return nil, ErrRoundNotFound
	}

	round.mu.Lock()
	defer round.mu.Unlock()

	if round.settled {
		return nil, ErrRoundSettled
	}

	var err error
	switch round.game {
	case games.GameBlackjack:
		err = s.advanceBlackjack(ctx, round, action)
	case games.GamePoker:
		err = s.advancePoker(round, action)
	default:
		err = fmt.Errorf("%w: %s", games.ErrInvalidAction, action)
	}
	if err != nil {
		return nil, err
	}

	if s.engineSettled(round) {
		if err := s.settleLocked(ctx, round); err != nil {
			return nil, err
		}
	}

	return s.viewLocked(round), nil
}

func (s *roundService) advanceBlackjack(ctx context.Context, round *managedRound, action string) error {
	bj := round.blackjack
	switch action {
	case games.ActionHit:
		return bj.Hit()
	case games.ActionStand:
		return bj.Stand()
	case games.ActionDoubleDown:
		// Check legality before reserving funds so a rejected action
		// costs nothing; the engine re-checks the same conditions
		if bj.State() != games.BlackjackPlayerTurn || len(bj.PlayerHand) != 2 {
			return fmt.Errorf("%w: double down is only available as the first action", games.ErrInvalidAction)
		}
		if err := s.debitExtraStake(ctx, round, round.stake); err != nil {
			return err
		}
		return bj.DoubleDown()
	default:
		return fmt.Errorf("%w: %s", games.ErrInvalidAction, action)
	}
}

func (s *roundService) advancePoker(round *managedRound, action string) error {
	switch action {
	case games.ActionCall:
		return round.poker.Call()
	case games.ActionFold:
		return round.poker.Fold()
	default:
		return fmt.Errorf("%w: %s", games.ErrInvalidAction, action)
	}
}

// debitExtraStake reserves an additional stake mid-round, as double down
// requires. Insufficient funds reject the action and leave the round
// unchanged.
func (s *roundService) debitExtraStake(ctx context.Context, round *managedRound, extra int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallet, err := uow.WalletRepository().GetByUserID(ctx, round.userID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return fmt.Errorf("user %d: %w", round.userID, ErrWalletNotFound)
	}

	if err := uow.WalletRepository().DeductBalance(ctx, round.userID, extra); err != nil {
		return fmt.Errorf("failed to take stake: %w", err)
	}
	if err := uow.WalletRepository().AddDailyWagered(ctx, round.userID, extra); err != nil {
		return fmt.Errorf("failed to update daily wagered: %w", err)
	}

	stakeTxn := &models.Transaction{
		UserID:      round.userID,
		Amount:      -extra,
		Type:        models.TransactionTypeBet,
		Description: fmt.Sprintf("%s double down", round.game),
		Game:        &round.game,
	}
	if err := recordTransaction(ctx, uow, stakeTxn, wallet.Balance, wallet.Balance-extra); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	round.stake += extra
	return nil
}

// engineSettled reports whether the underlying engine reached settlement
func (s *roundService) engineSettled(round *managedRound) bool {
	switch round.game {
	case games.GameBlackjack:
		return round.blackjack.Settled()
	case games.GamePoker:
		return round.poker.Settled()
	}
	return false
}

func (s *roundService) engineResult(round *managedRound) *games.Result {
	switch round.game {
	case games.GameBlackjack:
		return round.blackjack.Result()
	case games.GamePoker:
		return round.poker.Result()
	}
	return nil
}

// settleLocked credits the payout, writes the bet record and publishes the
// settlement event in one transaction. Caller holds round.mu.
func (s *roundService) settleLocked(ctx context.Context, round *managedRound) error {
	result := s.engineResult(round)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	// Get-or-create so a wallet wiped mid-round still settles cleanly
	wallet, err := getOrCreateWallet(ctx, uow, round.userID, s.startingBalance)
	if err != nil {
		return err
	}

	if result.Payout > 0 {
		if err := uow.WalletRepository().AddBalance(ctx, round.userID, result.Payout); err != nil {
			return fmt.Errorf("failed to credit payout: %w", err)
		}

		payoutType := models.TransactionTypeWin
		if result.Outcome == models.OutcomePush {
			payoutType = models.TransactionTypePush
		}
		payoutTxn := &models.Transaction{
			UserID:      round.userID,
			Amount:      result.Payout,
			Type:        payoutType,
			Description: fmt.Sprintf("%s %s", round.game, result.Outcome),
			Game:        &round.game,
		}
		if err := recordTransaction(ctx, uow, payoutTxn, wallet.Balance, wallet.Balance+result.Payout); err != nil {
			return err
		}
	}

	bet := &models.Bet{
		UserID:   round.userID,
		Game:     round.game,
		Amount:   round.stake,
		Outcome:  result.Outcome,
		Payout:   result.Payout,
		GameData: result.Detail,
	}
	if err := uow.BetRepository().Create(ctx, bet); err != nil {
		return fmt.Errorf("failed to record bet: %w", err)
	}

	uow.EventBus().Publish(events.BetSettledEvent{
		UserID:  round.userID,
		BetID:   bet.ID,
		Game:    round.game,
		Amount:  round.stake,
		Outcome: result.Outcome,
		Payout:  result.Payout,
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	round.settled = true
	round.result = &PlayResult{
		Bet:        bet,
		Outcome:    result.Outcome,
		Payout:     result.Payout,
		NewBalance: wallet.Balance + result.Payout,
		Detail:     result.Detail,
	}

	// Free the per-game slot; the settled round lingers for rendering
	// until its retention window passes
	round.expiresAt = s.clock().Add(s.roundTTL)
	key := roundKey{userID: round.userID, game: round.game}
	s.mu.Lock()
	if s.active[key] == round.id {
		delete(s.active, key)
	}
	s.mu.Unlock()

	return nil
}

// SweepExpired force-resolves rounds past their deadline: blackjack stands,
// poker folds. The stake is settled by the forced action, never silently
// dropped. Returns how many rounds were force-resolved.
func (s *roundService) SweepExpired(ctx context.Context) int {
	now := s.clock()

	s.mu.RLock()
	var expired []*managedRound
	for _, round := range s.rounds {
		if now.After(round.expiresAt) {
			expired = append(expired, round)
		}
	}
	s.mu.RUnlock()

	resolved := 0
	for _, round := range expired {
		round.mu.Lock()
		if round.settled {
			round.mu.Unlock()
			s.remove(round.id)
			continue
		}

		if err := s.forceResolveLocked(ctx, round); err != nil {
			log.WithFields(log.Fields{
				"roundID": round.id,
				"userID":  round.userID,
				"game":    round.game,
				"error":   err,
			}).Error("Failed to force-resolve expired round")
			round.mu.Unlock()
			continue
		}
		resolved++
		round.mu.Unlock()
	}
	return resolved
}

// forceResolveLocked applies the forced action for an expired round and
// settles it. Caller holds round.mu.
func (s *roundService) forceResolveLocked(ctx context.Context, round *managedRound) error {
	var action string
	var err error
	switch round.game {
	case games.GameBlackjack:
		action = games.ActionStand
		err = round.blackjack.Stand()
	case games.GamePoker:
		action = games.ActionFold
		err = round.poker.Fold()
	}
	if err != nil {
		return fmt.Errorf("failed to apply forced %s: %w", action, err)
	}

	if err := s.settleLocked(ctx, round); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"roundID": round.id,
		"userID":  round.userID,
		"game":    round.game,
		"action":  action,
		"outcome": round.result.Outcome,
	}).Warn("Force-resolved expired round")

	return nil
}

// remove drops a round from the store, releasing its per-game slot if it
// still owns it
func (s *roundService) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	round, ok := s.rounds[id]
	if !ok {
		return
	}
	delete(s.rounds, id)

	key := roundKey{userID: round.userID, game: round.game}
	if s.active[key] == id {
		delete(s.active, key)
	}
}

// viewLocked renders the round for the player. Live blackjack hides the
// dealer's hole card. Caller holds round.mu.
func (s *roundService) viewLocked(round *managedRound) *RoundView {
	view := &RoundView{
		RoundID:   round.id,
		Game:      round.game,
		UserID:    round.userID,
		Bet:       round.stake,
		Settled:   round.settled,
		Result:    round.result,
		ExpiresAt: round.expiresAt,
	}

	if round.settled {
		view.State = "SETTLED"
		view.Detail = round.result.Detail
		return view
	}

	switch round.game {
	case games.GameBlackjack:
		bj := round.blackjack
		view.State = string(bj.State())
		view.Detail = map[string]any{
			"player_hand":  cardStrings(bj.PlayerHand),
			"player_value": games.HandValue(bj.PlayerHand),
			"dealer_up":    bj.DealerHand[0].String(),
		}
	case games.GamePoker:
		p := round.poker
		view.State = string(p.Stage())
		view.Detail = map[string]any{
			"player_hole": cardStrings(p.PlayerHole),
			"community":   cardStrings(p.Community),
		}
	}
	return view
}

func cardStrings(hand []cards.Card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.String()
	}
	return out
}
