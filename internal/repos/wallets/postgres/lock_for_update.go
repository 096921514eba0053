package wallets

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/wallets"
)

// LockForUpdate takes an exclusive row lock on the active wallet for
// (ownerID, assetTypeID). Other lockers of the same row block until the
// enclosing transaction commits or rolls back.
func (r *walletsRepo) LockForUpdate(tx *sql.Tx, ownerID string, assetTypeID int64) (*wallets.Wallet, error) {
	w := wallets.Wallet{OwnerID: ownerID, AssetTypeID: assetTypeID}

	err := tx.QueryRow(`
		SELECT id, balance, wallet_type, updated_at
		FROM wallets
		WHERE owner_id = $1 AND asset_type_id = $2 AND is_active = true
		FOR UPDATE
	`, ownerID, assetTypeID).Scan(&w.ID, &w.Balance, &w.WalletType, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallets.ErrWalletNotFound
		}

		return nil, fmt.Errorf("lock wallet: %w", err)
	}

	return &w, nil
}
