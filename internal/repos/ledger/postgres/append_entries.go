package ledger

import (
	"database/sql"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/ledger"
)

// AppendEntries writes the entry legs of a transaction. Entries are immutable
// once written.
func (r *ledgerRepo) AppendEntries(tx *sql.Tx, transactionID string, entries []ledger.Entry) error {
	for i, e := range entries {
		_, err := tx.Exec(`
			INSERT INTO transaction_entries
				(transaction_id, wallet_id, entry_type, amount, balance_after)
			VALUES ($1, $2, $3, $4, $5)
		`, transactionID, e.WalletID, e.EntryType, e.Amount, e.BalanceAfter)
		if err != nil {
			return fmt.Errorf("insert entry %d: %w", i, err)
		}
	}

	return nil
}
