package wallet

import (
	"database/sql"
	"fmt"
)

// checkIdempotency classifies a request's idempotency key inside the active
// unit of work:
//
//   - no prior transaction: (nil, nil), proceed as a fresh request;
//   - prior COMPLETED: the original result is reconstructed from the stored
//     entries and returned without touching any wallet;
//   - prior PENDING or FAILED: *IdempotencyConflictError: the attempt never
//     reached a terminal success and must not be silently re-executed.
func (s *Service) checkIdempotency(tx *sql.Tx, key string) (*Result, error) {
	prior, err := s.ledger.FindByIdempotencyKey(tx, key)
	if err != nil {
		return nil, fmt.Errorf("find prior transaction: %w", err)
	}

	if prior == nil {
		return nil, nil
	}

	status := TransactionStatus(prior.Status)
	if status != StatusCompleted {
		return nil, &IdempotencyConflictError{Key: key, Status: status}
	}

	records, err := s.ledger.EntriesOf(tx, prior.ID)
	if err != nil {
		return nil, fmt.Errorf("load prior entries: %w", err)
	}

	if len(records) != 2 {
		return nil, fmt.Errorf("transaction %s has %d entries, want 2", prior.ID, len(records))
	}

	res := Result{
		TransactionID: prior.ID,
		Status:        status,
		Replayed:      true,
	}

	// User leg first, treasury leg second, regardless of write order.
	for _, rec := range records {
		entry := ResultEntry{
			EntryType:    EntryType(rec.EntryType),
			AmountMinor:  rec.Amount,
			BalanceAfter: rec.BalanceAfter,
		}

		if rec.OwnerID == TreasuryOwnerID {
			entry.Account = TreasuryAccount()
			res.Entries[1] = entry
		} else {
			entry.Account = UserAccount(rec.OwnerID)
			res.Entries[0] = entry
		}
	}

	return &res, nil
}
