package assets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/assets"
)

var _ assets.Assets = (*assetsRepo)(nil)

type assetsRepo struct{ db *sql.DB }

func New(db *sql.DB) *assetsRepo {
	return &assetsRepo{db: db}
}

func (r *assetsRepo) ListActive(ctx context.Context) ([]assets.AssetType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, symbol, COALESCE(description, ''), decimals
		FROM asset_types
		WHERE is_active = true
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query asset types: %w", err)
	}
	defer rows.Close()

	var types []assets.AssetType

	for rows.Next() {
		var at assets.AssetType

		err = rows.Scan(&at.ID, &at.Name, &at.Symbol, &at.Description, &at.Decimals)
		if err != nil {
			return nil, fmt.Errorf("scan asset type: %w", err)
		}

		types = append(types, at)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate asset types: %w", err)
	}

	return types, nil
}
