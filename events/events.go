package events

import (
	"context"
	"sync"

	"github.com/TheCodeVerseHub/Eigen-Bot/models"
	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeWalletCreated EventType = "wallet_created"
	EventTypeBalanceChange EventType = "balance_change"
	EventTypeBetSettled    EventType = "bet_settled"
	EventTypeTransfer      EventType = "transfer"
	EventTypeFraudFlagged  EventType = "fraud_flagged"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// WalletCreatedEvent represents a new wallet creation
type WalletCreatedEvent struct {
	UserID          int64
	StartingBalance int64
}

func (e WalletCreatedEvent) Type() EventType {
	return EventTypeWalletCreated
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID          int64
	OldBalance      int64
	NewBalance      int64
	TransactionType models.TransactionType
	ChangeAmount    int64
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// BetSettledEvent represents a game round that was settled
type BetSettledEvent struct {
	UserID  int64
	BetID   int64
	Game    string
	Amount  int64
	Outcome models.Outcome
	Payout  int64
}

func (e BetSettledEvent) Type() EventType {
	return EventTypeBetSettled
}

// TransferEvent represents a completed wallet-to-wallet transfer
type TransferEvent struct {
	FromUserID int64
	ToUserID   int64
	Amount     int64
}

func (e TransferEvent) Type() EventType {
	return EventTypeTransfer
}

// FraudFlaggedEvent represents activity the wager policy flagged for review.
// Flagged bets still settle normally; the event is the audit trail.
type FraudFlaggedEvent struct {
	UserID int64
	Action string
	Amount int64
	Reason string
}

func (e FraudFlaggedEvent) Type() EventType {
	return EventTypeFraudFlagged
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make([]Handler, 0)
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type on main event bus")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers on main event bus")

	// Call handlers asynchronously to avoid blocking
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// A transactional event bus for holding pending events coupled to the Unit of Work.
// Flushes to the underlying event bus.
type TransactionalBus struct {
	real    *Bus
	pending []Event // stashed until Flush
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	log.WithFields(log.Fields{
		"eventType":    e.Type(),
		"pendingCount": len(b.pending),
	}).Debug("Adding event to transactional bus pending queue")
	b.pending = append(b.pending, e)
}

// called after successful DB commit
func (b *TransactionalBus) Flush(ctx context.Context) error {
	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing pending events from transactional bus to main event bus")

	// Use background context for event emission so handlers are not cut off
	// when the transaction context is cancelled after commit
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
	return nil
}

// called after db rollback or to clear state.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
