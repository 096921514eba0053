package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/playforge/wallet-ledger/internal/infra/pgutils"
	"github.com/playforge/wallet-ledger/internal/repos/assets"
	pgassets "github.com/playforge/wallet-ledger/internal/repos/assets/postgres"
	"github.com/playforge/wallet-ledger/internal/repos/ledger"
	pgledger "github.com/playforge/wallet-ledger/internal/repos/ledger/postgres"
	"github.com/playforge/wallet-ledger/internal/repos/wallets"
	pgwallets "github.com/playforge/wallet-ledger/internal/repos/wallets/postgres"
)

// Service coordinates double-entry transactions between user wallets and the
// per-asset system treasury, and serves the read-only query endpoints.
type Service struct {
	db      *sql.DB
	wallets wallets.Wallets
	ledger  ledger.Ledger
	assets  assets.Assets
	retry   pgutils.RetryPolicy
}

func New(db *sql.DB) *Service {
	return newService(db, pgwallets.New(db), pgledger.New(db), pgassets.New(db), pgutils.DefaultRetryPolicy())
}

func newService(db *sql.DB, w wallets.Wallets, l ledger.Ledger, a assets.Assets, retry pgutils.RetryPolicy) *Service {
	return &Service{db: db, wallets: w, ledger: l, assets: a, retry: retry}
}

// Execute runs one logical business operation exactly once:
//
//  1. Validate amount and type.
//  2. Idempotency check; replay or conflict short-circuits.
//  3. Lock the user wallet, then the treasury wallet of the same asset type.
//     The order is fixed globally; every writer must keep it to stay
//     deadlock-free on shared rows.
//  4. Compute balances per transaction type.
//  5. Insert the PENDING transaction, update both balances, append both
//     entries, mark COMPLETED.
//
// Everything runs in one READ COMMITTED transaction: a failure at any step
// rolls the whole attempt back, so no orphan transaction row or stale balance
// is ever observable. Deadlock/serialization conflicts retry the whole unit
// of work with backoff, which is safe because nothing committed.
func (s *Service) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.AmountMinor <= 0 {
		return nil, ErrInvalidAmount
	}

	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransactionType, req.Type)
	}

	var res *Result

	err := pgutils.WithTxRetry(ctx, s.db, s.retry, pgutils.IsTransient, func(tx *sql.Tx) error {
		res = nil

		prior, err := s.checkIdempotency(tx, req.IdempotencyKey)
		if err != nil {
			return fmt.Errorf("idempotency check: %w", err)
		}

		if prior != nil {
			res = prior
			return nil
		}

		userWallet, err := s.wallets.LockForUpdate(tx, UserAccount(req.UserID).OwnerID(), req.AssetTypeID)
		if err != nil {
			return fmt.Errorf("lock user wallet: %w", err)
		}

		treasuryWallet, err := s.wallets.LockForUpdate(tx, TreasuryAccount().OwnerID(), req.AssetTypeID)
		if err != nil {
			if errors.Is(err, wallets.ErrWalletNotFound) {
				return fmt.Errorf("lock treasury wallet: %w", ErrTreasuryNotFound)
			}

			return fmt.Errorf("lock treasury wallet: %w", err)
		}

		delta, err := applyRules(req.Type, req.AmountMinor, userWallet.Balance, treasuryWallet.Balance)
		if err != nil {
			return fmt.Errorf("apply balance rules: %w", err)
		}

		txRecord, err := s.ledger.CreateTransaction(tx, ledger.CreateParams{
			IdempotencyKey: req.IdempotencyKey,
			Type:           string(req.Type),
			ReferenceID:    req.ReferenceID,
			Description:    req.Description,
			CreatedBy:      req.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		err = s.wallets.SetBalance(tx, userWallet.ID, delta.userAfter)
		if err != nil {
			return fmt.Errorf("update user balance: %w", err)
		}

		err = s.wallets.SetBalance(tx, treasuryWallet.ID, delta.treasuryAfter)
		if err != nil {
			return fmt.Errorf("update treasury balance: %w", err)
		}

		err = s.ledger.AppendEntries(tx, txRecord.ID, []ledger.Entry{
			{WalletID: userWallet.ID, EntryType: string(delta.userEntry), Amount: req.AmountMinor, BalanceAfter: delta.userAfter},
			{WalletID: treasuryWallet.ID, EntryType: string(delta.treasuryEntry), Amount: req.AmountMinor, BalanceAfter: delta.treasuryAfter},
		})
		if err != nil {
			return fmt.Errorf("append entries: %w", err)
		}

		err = s.ledger.MarkCompleted(tx, txRecord.ID)
		if err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}

		res = &Result{
			TransactionID: txRecord.ID,
			Status:        StatusCompleted,
			Entries: [2]ResultEntry{
				{Account: UserAccount(req.UserID), EntryType: delta.userEntry, AmountMinor: req.AmountMinor, BalanceAfter: delta.userAfter},
				{Account: TreasuryAccount(), EntryType: delta.treasuryEntry, AmountMinor: req.AmountMinor, BalanceAfter: delta.treasuryAfter},
			},
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("execute transaction: %w", err)
	}

	if res.Replayed {
		slog.Info("transaction replayed",
			"transaction_id", res.TransactionID,
			"idempotency_key", req.IdempotencyKey,
		)
	} else {
		slog.Info("transaction completed",
			"transaction_id", res.TransactionID,
			"type", req.Type,
			"user_id", req.UserID,
			"asset_type_id", req.AssetTypeID,
			"amount", req.AmountMinor,
		)
	}

	return res, nil
}

// GetBalance returns the committed balance with asset metadata (no locks).
func (s *Service) GetBalance(ctx context.Context, userID string, assetTypeID int64) (*wallets.BalanceView, error) {
	view, err := s.wallets.GetBalance(ctx, UserAccount(userID).OwnerID(), assetTypeID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return view, nil
}

// GetUserWallets returns all active wallets of a user with asset metadata.
func (s *Service) GetUserWallets(ctx context.Context, userID string) ([]wallets.BalanceView, error) {
	views, err := s.wallets.GetUserWallets(ctx, UserAccount(userID).OwnerID())
	if err != nil {
		return nil, fmt.Errorf("get user wallets: %w", err)
	}

	return views, nil
}

// GetTransactionHistory lists a user's entries, most recent transaction
// first. assetTypeID of 0 means all assets.
func (s *Service) GetTransactionHistory(ctx context.Context, userID string, assetTypeID int64, limit, offset int) ([]ledger.HistoryRow, error) {
	rows, err := s.ledger.History(ctx, UserAccount(userID).OwnerID(), assetTypeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return rows, nil
}

// GetAssetTypes lists active asset types.
func (s *Service) GetAssetTypes(ctx context.Context) ([]assets.AssetType, error) {
	types, err := s.assets.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get asset types: %w", err)
	}

	return types, nil
}
