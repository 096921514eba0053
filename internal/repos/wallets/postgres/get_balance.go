package wallets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/wallets"
)

func (r *walletsRepo) GetBalance(ctx context.Context, ownerID string, assetTypeID int64) (*wallets.BalanceView, error) {
	v := wallets.BalanceView{OwnerID: ownerID, AssetTypeID: assetTypeID}

	err := r.db.QueryRowContext(ctx, `
		SELECT w.id, w.balance, at.name, at.symbol, at.decimals
		FROM wallets w
		JOIN asset_types at ON w.asset_type_id = at.id
		WHERE w.owner_id = $1 AND w.asset_type_id = $2 AND w.is_active = true
	`, ownerID, assetTypeID).Scan(&v.WalletID, &v.Balance, &v.AssetName, &v.Symbol, &v.Decimals)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallets.ErrWalletNotFound
		}

		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &v, nil
}
