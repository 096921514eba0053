package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/playforge/wallet-ledger/internal/repos/ledger"
)

// CreateTransaction inserts a new PENDING transaction. A unique violation on
// the idempotency key means another unit of work committed the same key
// between our idempotency check and this insert.
func (r *ledgerRepo) CreateTransaction(tx *sql.Tx, p ledger.CreateParams) (*ledger.Transaction, error) {
	t := ledger.Transaction{
		ID:             uuid.New().String(),
		IdempotencyKey: p.IdempotencyKey,
		Type:           p.Type,
		ReferenceID:    p.ReferenceID,
		Description:    p.Description,
		Status:         "PENDING",
		CreatedBy:      p.CreatedBy,
	}

	err := tx.QueryRow(`
		INSERT INTO transactions
			(id, idempotency_key, transaction_type, reference_id, description, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, t.ID, t.IdempotencyKey, t.Type, nullable(t.ReferenceID), nullable(t.Description), t.Status, t.CreatedBy).
		Scan(&t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, ledger.ErrDuplicateTransaction
		}

		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	return &t, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
