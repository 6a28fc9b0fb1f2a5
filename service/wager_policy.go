package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/TheCodeVerseHub/Eigen-Bot/config"
	"github.com/TheCodeVerseHub/Eigen-Bot/events"

	log "github.com/sirupsen/logrus"
)

// Actions recognized by the fraud detector
const (
	FraudActionBet      = "bet"
	FraudActionTransfer = "transfer"
)

// Per-user history caps keep fraud state bounded
const (
	maxBetHistory      = 100
	maxTransferHistory = 50
)

type cooldownKey struct {
	command string
	userID  int64
}

// betRecord is one remembered stake, kept for velocity checks
type betRecord struct {
	at     time.Time
	amount int64
}

// WagerPolicy validates stake amounts, gates commands with cooldowns and
// runs the fraud heuristics. All state lives in memory and is lost on
// restart; cooldowns and fraud signals are soft so that is acceptable.
//
// Bet flags are advisory: play continues and the reason is surfaced to the
// caller. Transfer flags hard-block. The asymmetry is deliberate.
type WagerPolicy struct {
	minBet            int64
	maxBet            int64
	dailyLimit        int64
	largeBetThreshold int64

	betVelocityLimit   int
	betVelocityWindow  time.Duration
	transferRateLimit  int
	transferRateWindow time.Duration

	clock func() time.Time
	bus   *events.Bus

	mu              sync.Mutex
	cooldowns       map[cooldownKey]time.Time
	betHistory      map[int64][]betRecord
	transferHistory map[int64][]time.Time
}

// NewWagerPolicy creates a policy from the configured limits. The bus
// receives FraudFlaggedEvent for every flag and may be nil in tests.
func NewWagerPolicy(cfg *config.Config, bus *events.Bus) *WagerPolicy {
	return &WagerPolicy{
		minBet:             cfg.MinBet,
		maxBet:             cfg.MaxBet,
		dailyLimit:         cfg.DailyWagerLimit,
		largeBetThreshold:  cfg.LargeBetThreshold,
		betVelocityLimit:   cfg.BetVelocityLimit,
		betVelocityWindow:  cfg.BetVelocityWindow,
		transferRateLimit:  cfg.TransferRateLimit,
		transferRateWindow: cfg.TransferRateWindow,
		clock:              time.Now,
		bus:                bus,
		cooldowns:          make(map[cooldownKey]time.Time),
		betHistory:         make(map[int64][]betRecord),
		transferHistory:    make(map[int64][]time.Time),
	}
}

// ValidateBetAmount checks a stake against the configured limits. The first
// failing check produces the reason. Nothing is recorded; callers add to the
// daily total only once the stake is actually taken.
func (p *WagerPolicy) ValidateBetAmount(amount int64, dailyWagered int64) (bool, string) {
	if amount < p.minBet {
		return false, fmt.Sprintf("Minimum bet is %d coins.", p.minBet)
	}
	if amount > p.maxBet {
		return false, fmt.Sprintf("Maximum bet is %d coins.", p.maxBet)
	}
	if dailyWagered+amount > p.dailyLimit {
		remaining := p.dailyLimit - dailyWagered
		if remaining < 0 {
			remaining = 0
		}
		return false, fmt.Sprintf("Daily wager limit exceeded. You can wager %d more coins today.", remaining)
	}
	return true, ""
}

// SetCooldown starts a cooldown window for the command
func (p *WagerPolicy) SetCooldown(command string, userID int64, window time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cooldowns[cooldownKey{command, userID}] = p.clock().Add(window)
}

// IsOnCooldown reports whether the command is still cooling down for the user
func (p *WagerPolicy) IsOnCooldown(command string, userID int64) bool {
	return p.RemainingCooldown(command, userID) > 0
}

// RemainingCooldown returns how long until the command is available again,
// zero when it is not cooling down
func (p *WagerPolicy) RemainingCooldown(command string, userID int64) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	expiresAt, ok := p.cooldowns[cooldownKey{command, userID}]
	if !ok {
		return 0
	}
	remaining := expiresAt.Sub(p.clock())
	if remaining <= 0 {
		return 0
	}
	return remaining
}

// ClearCooldown lets the command run again immediately
func (p *WagerPolicy) ClearCooldown(command string, userID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cooldowns, cooldownKey{command, userID})
}

// Check records the action and runs the fraud heuristics over the recorded
// history. Unknown actions pass through unflagged.
func (p *WagerPolicy) Check(userID int64, amount int64, action string) (bool, string) {
	switch action {
	case FraudActionBet:
		return p.checkBet(userID, amount)
	case FraudActionTransfer:
		return p.checkTransfer(userID, amount)
	default:
		return true, ""
	}
}

func (p *WagerPolicy) checkBet(userID int64, amount int64) (bool, string) {
	now := p.clock()

	p.mu.Lock()
	history := append(p.betHistory[userID], betRecord{at: now, amount: amount})
	if len(history) > maxBetHistory {
		history = history[len(history)-maxBetHistory:]
	}
	p.betHistory[userID] = history

	cutoff := now.Add(-p.betVelocityWindow)
	recent := 0
	for _, rec := range history {
		if rec.at.After(cutoff) {
			recent++
		}
	}
	p.mu.Unlock()

	if recent > p.betVelocityLimit {
		return true, p.flag(userID, amount, FraudActionBet, "Suspicious bet velocity detected.")
	}
	if amount > p.largeBetThreshold {
		reason := fmt.Sprintf("Large bet of %d coins flagged for review.", amount)
		return true, p.flag(userID, amount, FraudActionBet, reason)
	}
	return true, ""
}

func (p *WagerPolicy) checkTransfer(userID int64, amount int64) (bool, string) {
	now := p.clock()

	p.mu.Lock()
	history := append(p.transferHistory[userID], now)
	if len(history) > maxTransferHistory {
		history = history[len(history)-maxTransferHistory:]
	}
	p.transferHistory[userID] = history

	cutoff := now.Add(-p.transferRateWindow)
	recent := 0
	for _, at := range history {
		if at.After(cutoff) {
			recent++
		}
	}
	p.mu.Unlock()

	if recent > p.transferRateLimit {
		return false, p.flag(userID, amount, FraudActionTransfer, "Suspicious transfer activity detected.")
	}
	return true, ""
}

// flag publishes the fraud event and logs it, returning the reason unchanged
func (p *WagerPolicy) flag(userID int64, amount int64, action string, reason string) string {
	log.WithFields(log.Fields{
		"userID": userID,
		"amount": amount,
		"action": action,
		"reason": reason,
	}).Warn("Fraud heuristic flagged activity")

	if p.bus != nil {
		// Background context: flags outlive whatever request produced them
		p.bus.Emit(context.Background(), events.FraudFlaggedEvent{
			UserID: userID,
			Action: action,
			Amount: amount,
			Reason: reason,
		})
	}

	return reason
}
