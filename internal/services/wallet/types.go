package wallet

import (
	"errors"
	"fmt"
)

// TreasuryOwnerID is the reserved wallet owner id for the per-asset system
// treasury. Treasury wallets are provisioned by seed data, never by this
// service.
const TreasuryOwnerID = "system_treasury"

type TransactionType string

const (
	TxTopup TransactionType = "TOPUP"
	TxBonus TransactionType = "BONUS"
	TxSpend TransactionType = "SPEND"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxTopup, TxBonus, TxSpend:
		return true
	default:
		return false
	}
}

type EntryType string

const (
	EntryCredit EntryType = "CREDIT"
	EntryDebit  EntryType = "DEBIT"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// OwnerKind distinguishes user-owned wallets from the system treasury so the
// reserved owner id can never be confused with a real user id in code.
type OwnerKind int

const (
	OwnerUser OwnerKind = iota
	OwnerTreasury
)

// AccountRef identifies a wallet owner.
type AccountRef struct {
	Kind   OwnerKind
	UserID string // set only for OwnerUser
}

func UserAccount(userID string) AccountRef {
	return AccountRef{Kind: OwnerUser, UserID: userID}
}

func TreasuryAccount() AccountRef {
	return AccountRef{Kind: OwnerTreasury}
}

// OwnerID returns the owner id as stored in the wallets table.
func (a AccountRef) OwnerID() string {
	if a.Kind == OwnerTreasury {
		return TreasuryOwnerID
	}

	return a.UserID
}

// Request describes one logical business operation against a user wallet.
type Request struct {
	IdempotencyKey string
	Type           TransactionType
	UserID         string
	AssetTypeID    int64
	AmountMinor    int64 // smallest asset unit
	ReferenceID    string
	Description    string
	CreatedBy      string
}

// ResultEntry is one leg of the double entry as reported to the caller.
type ResultEntry struct {
	Account      AccountRef
	EntryType    EntryType
	AmountMinor  int64
	BalanceAfter int64
}

// Result is the outcome of a completed (or replayed) transaction.
type Result struct {
	TransactionID string
	Status        TransactionStatus
	Replayed      bool
	Entries       [2]ResultEntry // user leg first, treasury leg second
}

var (
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInsufficientFunds      = errors.New("insufficient balance")
	ErrInsufficientTreasury   = errors.New("insufficient system treasury balance")
	// ErrTreasuryNotFound means the per-asset treasury wallet row is missing.
	// Treasury wallets are provisioned out-of-band by seed data, so this is a
	// server configuration failure, not a client error.
	ErrTreasuryNotFound = errors.New("system treasury wallet not found")
)

// IdempotencyConflictError reports a replayed idempotency key whose stored
// transaction never reached COMPLETED. The caller must not retry blindly with
// the same key.
type IdempotencyConflictError struct {
	Key    string
	Status TransactionStatus
}

func (e *IdempotencyConflictError) Error() string {
	return fmt.Sprintf("transaction with idempotency key %s already exists with status %s", e.Key, e.Status)
}
