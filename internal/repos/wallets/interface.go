package wallets

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrWalletNotFound = errors.New("wallet not found")

// Wallet is one (owner, asset type) balance row.
type Wallet struct {
	ID          int64
	OwnerID     string
	AssetTypeID int64
	Balance     int64
	WalletType  string
	UpdatedAt   time.Time
}

// BalanceView is a committed balance joined with asset metadata, for the
// read-only query endpoints.
type BalanceView struct {
	WalletID    int64
	OwnerID     string
	AssetTypeID int64
	AssetName   string
	Symbol      string
	Decimals    int32
	Balance     int64
}

//go:generate mockgen -source=interface.go -destination=../mocks/wallets_mock.go -package=mocks

// Wallets reads and mutates wallet balances.
//
// Methods taking *sql.Tx participate in the caller's unit of work.
// LockForUpdate takes an exclusive row lock held until that unit of work
// ends; a balance must never be read for mutation outside it.
type Wallets interface {
	LockForUpdate(tx *sql.Tx, ownerID string, assetTypeID int64) (*Wallet, error)
	SetBalance(tx *sql.Tx, walletID int64, newBalance int64) error

	// Committed-state reads, no locks.
	GetBalance(ctx context.Context, ownerID string, assetTypeID int64) (*BalanceView, error)
	GetUserWallets(ctx context.Context, ownerID string) ([]BalanceView, error)
}
