package ledger

import (
	"database/sql"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/ledger"
)

// EntriesOf returns the stored entries of a transaction attributed to their
// wallet owners, ordered as written.
func (r *ledgerRepo) EntriesOf(tx *sql.Tx, transactionID string) ([]ledger.EntryRecord, error) {
	rows, err := tx.Query(`
		SELECT te.wallet_id, w.owner_id, te.entry_type, te.amount, te.balance_after
		FROM transaction_entries te
		JOIN wallets w ON te.wallet_id = w.id
		WHERE te.transaction_id = $1
		ORDER BY te.id
	`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var records []ledger.EntryRecord

	for rows.Next() {
		var rec ledger.EntryRecord

		err = rows.Scan(&rec.WalletID, &rec.OwnerID, &rec.EntryType, &rec.Amount, &rec.BalanceAfter)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		records = append(records, rec)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return records, nil
}
