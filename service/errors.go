package service

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors services return so command handlers can map failures to
// user-facing replies with errors.Is.
var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSelfTransfer      = errors.New("cannot transfer to yourself")
	ErrRoundActive       = errors.New("a round is already in progress")
	ErrRoundNotFound     = errors.New("no active round")
	ErrRoundSettled      = errors.New("round already settled")
)

// BetRejectedError is returned when the wager policy rejects a bet outright.
// Reason is the exact message shown to the player.
type BetRejectedError struct {
	Reason string
}

func (e *BetRejectedError) Error() string {
	return e.Reason
}

// TransferBlockedError is returned when the wager policy blocks a transfer.
// Unlike flagged bets, blocked transfers never execute.
type TransferBlockedError struct {
	Reason string
}

func (e *TransferBlockedError) Error() string {
	return e.Reason
}

// CooldownError is returned when a command is invoked before its cooldown
// window has elapsed.
type CooldownError struct {
	Command   string
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s is on cooldown for another %s", e.Command, FormatDuration(e.Remaining))
}

// FormatDuration renders a duration the way cooldown messages show it,
// dropping zero leading units: "1h 5m 3s", "5m 3s" or "3s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
