package wallets

import (
	"database/sql"

	"github.com/playforge/wallet-ledger/internal/repos/wallets"
)

var _ wallets.Wallets = (*walletsRepo)(nil)

type walletsRepo struct{ db *sql.DB }

func New(db *sql.DB) *walletsRepo {
	return &walletsRepo{db: db}
}
