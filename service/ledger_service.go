package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/TheCodeVerseHub/Eigen-Bot/events"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"

	log "github.com/sirupsen/logrus"
)

// Amount is a deposit/withdraw amount. All selects the entire source pocket
// and is resolved inside the operation's transaction.
type Amount struct {
	Value int64
	All   bool
}

// AmountOf returns a fixed amount
func AmountOf(v int64) Amount {
	return Amount{Value: v}
}

// AmountAll returns the whole-pocket sentinel
func AmountAll() Amount {
	return Amount{All: true}
}

// ParseAmount parses user input: "all" (case-insensitive) or a positive
// integer
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return AmountAll(), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	return AmountOf(v), nil
}

// ledgerService implements the LedgerService interface
type ledgerService struct {
	uowFactory      UnitOfWorkFactory
	startingBalance int64
}

// NewLedgerService creates a new ledger service. startingBalance is granted
// to every newly created wallet.
func NewLedgerService(uowFactory UnitOfWorkFactory, startingBalance int64) LedgerService {
	return &ledgerService{
		uowFactory:      uowFactory,
		startingBalance: startingBalance,
	}
}

// recordTransaction appends a ledger entry and publishes the balance change
// event. This is the single entry point for all balance-affecting writes.
func recordTransaction(ctx context.Context, uow UnitOfWork, txn *models.Transaction, oldBalance, newBalance int64) error {
	if err := uow.TransactionRepository().Record(ctx, txn); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	// Flushed to the main bus after the transaction commits
	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:          txn.UserID,
		OldBalance:      oldBalance,
		NewBalance:      newBalance,
		TransactionType: txn.Type,
		ChangeAmount:    txn.Amount,
	})

	return nil
}

// getOrCreateWallet returns the user's wallet within the given unit of work,
// creating it with the starting balance when missing
func getOrCreateWallet(ctx context.Context, uow UnitOfWork, userID int64, startingBalance int64) (*models.Wallet, error) {
	wallet, err := uow.WalletRepository().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing wallet: %w", err)
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet, err = uow.WalletRepository().Create(ctx, userID, startingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	uow.EventBus().Publish(events.WalletCreatedEvent{
		UserID:          userID,
		StartingBalance: startingBalance,
	})

	if startingBalance > 0 {
		txn := &models.Transaction{
			UserID:      userID,
			Amount:      startingBalance,
			Type:        models.TransactionTypeInitial,
			Description: "starting balance",
		}
		if err := recordTransaction(ctx, uow, txn, 0, startingBalance); err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"userID":          userID,
		"startingBalance": startingBalance,
	}).Info("Created new wallet")

	return wallet, nil
}

// GetOrCreateWallet retrieves an existing wallet or creates one with the
// configured starting balance
func (s *ledgerService) GetOrCreateWallet(ctx context.Context, userID int64) (*models.Wallet, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	wallet, err := getOrCreateWallet(ctx, uow, userID, s.startingBalance)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return wallet, nil
}

// AddMoney credits the spendable balance and appends a ledger entry. A zero
// amount still appends a zero-amount entry; push settlements rely on that.
func (s *ledgerService) AddMoney(ctx context.Context, userID int64, amount int64, txType models.TransactionType, description string, game *string) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallet, err := getOrCreateWallet(ctx, uow, userID, s.startingBalance)
	if err != nil {
		return err
	}

	if amount > 0 {
		if err := uow.WalletRepository().AddBalance(ctx, userID, amount); err != nil {
			return fmt.Errorf("failed to add balance: %w", err)
		}
	}

	txn := &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		Game:        game,
	}
	if err := recordTransaction(ctx, uow, txn, wallet.Balance, wallet.Balance+amount); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SubtractMoney debits the spendable balance and appends a negative ledger
// entry. The debit is a single conditional update; on any failure no
// mutation is left behind.
func (s *ledgerService) SubtractMoney(ctx context.Context, userID int64, amount int64, txType models.TransactionType, description string, game *string) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallet, err := uow.WalletRepository().GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return fmt.Errorf("user %d: %w", userID, ErrWalletNotFound)
	}

	if amount > 0 {
		if err := uow.WalletRepository().DeductBalance(ctx, userID, amount); err != nil {
			return fmt.Errorf("failed to deduct balance: %w", err)
		}
	}

	txn := &models.Transaction{
		UserID:      userID,
		Amount:      -amount,
		Type:        txType,
		Description: description,
		Game:        game,
	}
	if err := recordTransaction(ctx, uow, txn, wallet.Balance, wallet.Balance-amount); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// TransferMoney atomically moves funds between two wallets. Either both
// balance changes and both ledger entries persist, or none do.
func (s *ledgerService) TransferMoney(ctx context.Context, fromUserID, toUserID int64, amount int64, description string) (*models.TransferResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if fromUserID == toUserID {
		return nil, ErrSelfTransfer
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	fromWallet, err := uow.WalletRepository().GetByUserID(ctx, fromUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender wallet: %w", err)
	}
	if fromWallet == nil {
		return nil, fmt.Errorf("sender %d: %w", fromUserID, ErrWalletNotFound)
	}
	if fromWallet.Balance < amount {
		return nil, fmt.Errorf("have %d, need %d: %w", fromWallet.Balance, amount, ErrInsufficientFunds)
	}

	toWallet, err := getOrCreateWallet(ctx, uow, toUserID, s.startingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient wallet: %w", err)
	}

	// The conditional update closes the race the balance pre-check leaves open
	if err := uow.WalletRepository().DeductBalance(ctx, fromUserID, amount); err != nil {
		return nil, fmt.Errorf("failed to deduct transfer amount: %w", err)
	}
	if err := uow.WalletRepository().AddBalance(ctx, toUserID, amount); err != nil {
		return nil, fmt.Errorf("failed to add transfer amount: %w", err)
	}

	newFromBalance := fromWallet.Balance - amount
	newToBalance := toWallet.Balance + amount

	fromTxn := &models.Transaction{
		UserID:      fromUserID,
		Amount:      -amount,
		Type:        models.TransactionTypeTransferOut,
		Description: description,
		RecipientID: &toUserID,
	}
	if err := recordTransaction(ctx, uow, fromTxn, fromWallet.Balance, newFromBalance); err != nil {
		return nil, err
	}

	toTxn := &models.Transaction{
		UserID:      toUserID,
		Amount:      amount,
		Type:        models.TransactionTypeTransferIn,
		Description: description,
		RecipientID: &fromUserID,
	}
	if err := recordTransaction(ctx, uow, toTxn, toWallet.Balance, newToBalance); err != nil {
		return nil, err
	}

	uow.EventBus().Publish(events.TransferEvent{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Amount:     amount,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.TransferResult{
		Amount:      amount,
		RecipientID: toUserID,
		NewBalance:  newFromBalance,
	}, nil
}

// Deposit moves funds from the spendable balance into the bank pocket.
// Deposits log a negative ledger amount: money leaving the spendable pocket.
func (s *ledgerService) Deposit(ctx context.Context, userID int64, amount Amount) (*models.Wallet, int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallet, err := uow.WalletRepository().GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return nil, 0, fmt.Errorf("user %d: %w", userID, ErrWalletNotFound)
	}

	moveAmount := amount.Value
	if amount.All {
		moveAmount = wallet.Balance
	}
	if moveAmount <= 0 {
		// Covers "all" against an empty pocket
		return nil, 0, ErrInvalidAmount
	}

	if err := uow.WalletRepository().MoveToBank(ctx, userID, moveAmount); err != nil {
		return nil, 0, fmt.Errorf("failed to deposit: %w", err)
	}

	txn := &models.Transaction{
		UserID:      userID,
		Amount:      -moveAmount,
		Type:        models.TransactionTypeDeposit,
		Description: "bank deposit",
	}
	if err := recordTransaction(ctx, uow, txn, wallet.Balance, wallet.Balance-moveAmount); err != nil {
		return nil, 0, err
	}

	if err := uow.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	updated := *wallet
	updated.Balance -= moveAmount
	updated.Bank += moveAmount
	return &updated, moveAmount, nil
}

// Withdraw moves funds from the bank pocket back to the spendable balance.
// Withdrawals log a positive ledger amount: money entering the spendable
// pocket.
func (s *ledgerService) Withdraw(ctx context.Context, userID int64, amount Amount) (*models.Wallet, int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wallet, err := uow.WalletRepository().GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return nil, 0, fmt.Errorf("user %d: %w", userID, ErrWalletNotFound)
	}

	moveAmount := amount.Value
	if amount.All {
		moveAmount = wallet.Bank
	}
	if moveAmount <= 0 {
		return nil, 0, ErrInvalidAmount
	}

	if err := uow.WalletRepository().MoveFromBank(ctx, userID, moveAmount); err != nil {
		return nil, 0, fmt.Errorf("failed to withdraw: %w", err)
	}

	txn := &models.Transaction{
		UserID:      userID,
		Amount:      moveAmount,
		Type:        models.TransactionTypeWithdraw,
		Description: "bank withdrawal",
	}
	if err := recordTransaction(ctx, uow, txn, wallet.Balance, wallet.Balance+moveAmount); err != nil {
		return nil, 0, err
	}

	if err := uow.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	updated := *wallet
	updated.Balance += moveAmount
	updated.Bank -= moveAmount
	return &updated, moveAmount, nil
}

// DailyWagered returns how much the user has staked today
func (s *ledgerService) DailyWagered(ctx context.Context, userID int64) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	wagered, err := uow.WalletRepository().GetDailyWagered(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily wagered: %w", err)
	}

	return wagered, nil
}

// ResetEconomy wipes bets, transactions and wallets, in FK order. Returns
// the number of wallets removed.
func (s *ledgerService) ResetEconomy(ctx context.Context) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.BetRepository().DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete bets: %w", err)
	}
	if err := uow.TransactionRepository().DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	wiped, err := uow.WalletRepository().DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete wallets: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"walletsWiped": wiped,
	}).Warn("Economy reset: all bets, transactions and wallets removed")

	return wiped, nil
}
