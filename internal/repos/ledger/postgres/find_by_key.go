package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/ledger"
)

// FindByIdempotencyKey looks up a prior transaction holding key. It returns
// (nil, nil) when the key is unused; absence is the common path, not an error.
func (r *ledgerRepo) FindByIdempotencyKey(tx *sql.Tx, key string) (*ledger.Transaction, error) {
	var (
		t           ledger.Transaction
		referenceID sql.NullString
		description sql.NullString
		completedAt sql.NullTime
	)

	err := tx.QueryRow(`
		SELECT id, idempotency_key, transaction_type, reference_id, description,
		       status, created_by, created_at, completed_at
		FROM transactions
		WHERE idempotency_key = $1
	`, key).Scan(
		&t.ID, &t.IdempotencyKey, &t.Type, &referenceID, &description,
		&t.Status, &t.CreatedBy, &t.CreatedAt, &completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("find by idempotency key: %w", err)
	}

	t.ReferenceID = referenceID.String
	t.Description = description.String

	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}

	return &t, nil
}
