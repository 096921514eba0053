package ledger

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrDuplicateTransaction is returned when an insert races another unit of
// work holding the same idempotency key. The loser's whole unit of work rolls
// back.
var ErrDuplicateTransaction = errors.New("duplicate transaction")

// Transaction is one transactions row. Type and Status are stored as the
// upper-case strings defined by the wallet service.
type Transaction struct {
	ID             string
	IdempotencyKey string
	Type           string
	ReferenceID    string
	Description    string
	Status         string
	CreatedBy      string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// CreateParams describes a transaction to insert. Status starts as PENDING;
// the id is generated by the repository.
type CreateParams struct {
	IdempotencyKey string
	Type           string
	ReferenceID    string
	Description    string
	CreatedBy      string
}

// Entry is one leg of the double entry to append.
type Entry struct {
	WalletID     int64
	EntryType    string
	Amount       int64
	BalanceAfter int64
}

// EntryRecord is a stored entry attributed to its wallet owner.
type EntryRecord struct {
	WalletID     int64
	OwnerID      string
	EntryType    string
	Amount       int64
	BalanceAfter int64
}

// HistoryRow is one transaction entry of a user's history, joined with the
// owning transaction and asset metadata.
type HistoryRow struct {
	TransactionID string
	Type          string
	ReferenceID   string
	Description   string
	Status        string
	EntryType     string
	Amount        int64
	BalanceAfter  int64
	AssetName     string
	Symbol        string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

//go:generate mockgen -source=interface.go -destination=../mocks/ledger_mock.go -package=mocks

// Ledger reads and writes transaction and entry records. Methods taking
// *sql.Tx participate in the caller's unit of work; nothing they write is
// durable or visible elsewhere until that unit commits.
type Ledger interface {
	CreateTransaction(tx *sql.Tx, p CreateParams) (*Transaction, error)
	AppendEntries(tx *sql.Tx, transactionID string, entries []Entry) error
	MarkCompleted(tx *sql.Tx, transactionID string) error
	MarkFailed(tx *sql.Tx, transactionID string) error

	// FindByIdempotencyKey returns (nil, nil) when no transaction holds key.
	FindByIdempotencyKey(tx *sql.Tx, key string) (*Transaction, error)
	EntriesOf(tx *sql.Tx, transactionID string) ([]EntryRecord, error)

	// History reads committed state only. assetTypeID of 0 means all assets.
	History(ctx context.Context, ownerID string, assetTypeID int64, limit, offset int) ([]HistoryRow, error)
}
