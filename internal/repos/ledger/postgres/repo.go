package ledger

import (
	"database/sql"

	"github.com/playforge/wallet-ledger/internal/repos/ledger"
)

var _ ledger.Ledger = (*ledgerRepo)(nil)

type ledgerRepo struct{ db *sql.DB }

func New(db *sql.DB) *ledgerRepo {
	return &ledgerRepo{db: db}
}
