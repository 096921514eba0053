package wallets

import (
	"context"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/wallets"
)

func (r *walletsRepo) GetUserWallets(ctx context.Context, ownerID string) ([]wallets.BalanceView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT w.id, w.balance, at.id, at.name, at.symbol, at.decimals
		FROM wallets w
		JOIN asset_types at ON w.asset_type_id = at.id
		WHERE w.owner_id = $1 AND w.is_active = true AND at.is_active = true
		ORDER BY at.name
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query wallets: %w", err)
	}
	defer rows.Close()

	var views []wallets.BalanceView

	for rows.Next() {
		v := wallets.BalanceView{OwnerID: ownerID}

		err = rows.Scan(&v.WalletID, &v.Balance, &v.AssetTypeID, &v.AssetName, &v.Symbol, &v.Decimals)
		if err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}

		views = append(views, v)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}

	return views, nil
}
