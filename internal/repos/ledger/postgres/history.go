package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/playforge/wallet-ledger/internal/repos/ledger"
)

// History lists a user's entries joined with their transactions, most recent
// transaction first. It reads committed state only; no locks are taken.
func (r *ledgerRepo) History(ctx context.Context, ownerID string, assetTypeID int64, limit, offset int) ([]ledger.HistoryRow, error) {
	query := `
		SELECT t.id, t.transaction_type, t.reference_id, t.description,
		       t.status, t.created_at, t.completed_at,
		       te.entry_type, te.amount, te.balance_after,
		       at.name, at.symbol
		FROM transactions t
		JOIN transaction_entries te ON t.id = te.transaction_id
		JOIN wallets w ON te.wallet_id = w.id
		JOIN asset_types at ON w.asset_type_id = at.id
		WHERE w.owner_id = $1`

	args := []any{ownerID}

	if assetTypeID > 0 {
		args = append(args, assetTypeID)
		query += fmt.Sprintf(" AND w.asset_type_id = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var items []ledger.HistoryRow

	for rows.Next() {
		var (
			row         ledger.HistoryRow
			referenceID sql.NullString
			description sql.NullString
			completedAt sql.NullTime
		)

		err = rows.Scan(
			&row.TransactionID, &row.Type, &referenceID, &description,
			&row.Status, &row.CreatedAt, &completedAt,
			&row.EntryType, &row.Amount, &row.BalanceAfter,
			&row.AssetName, &row.Symbol,
		)
		if err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}

		row.ReferenceID = referenceID.String
		row.Description = description.String

		if completedAt.Valid {
			row.CompletedAt = &completedAt.Time
		}

		items = append(items, row)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return items, nil
}
