package wallets

import (
	"database/sql"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/wallets"
)

// SetBalance overwrites the wallet balance. Callers must hold the row lock
// from LockForUpdate in the same transaction.
func (r *walletsRepo) SetBalance(tx *sql.Tx, walletID int64, newBalance int64) error {
	res, err := tx.Exec(`
		UPDATE wallets
		SET balance = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, walletID, newBalance)
	if err != nil {
		return fmt.Errorf("set balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return wallets.ErrWalletNotFound
	}

	return nil
}
