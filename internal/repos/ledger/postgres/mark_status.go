package ledger

import (
	"database/sql"
	"fmt"
)

func (r *ledgerRepo) MarkCompleted(tx *sql.Tx, transactionID string) error {
	return r.markStatus(tx, transactionID, "COMPLETED")
}

func (r *ledgerRepo) MarkFailed(tx *sql.Tx, transactionID string) error {
	return r.markStatus(tx, transactionID, "FAILED")
}

// markStatus moves a PENDING transaction to its terminal status. The guard on
// the current status keeps terminal transitions terminal.
func (r *ledgerRepo) markStatus(tx *sql.Tx, transactionID, status string) error {
	res, err := tx.Exec(`
		UPDATE transactions
		SET status = $2, completed_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND status = 'PENDING'
	`, transactionID, status)
	if err != nil {
		return fmt.Errorf("mark %s: %w", status, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("transaction %s is not pending", transactionID)
	}

	return nil
}
