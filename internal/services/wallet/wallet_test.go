package wallet

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/playforge/wallet-ledger/internal/infra/pgutils"
	"github.com/playforge/wallet-ledger/internal/repos/ledger"
	"github.com/playforge/wallet-ledger/internal/repos/mocks"
	"github.com/playforge/wallet-ledger/internal/repos/wallets"
)

type fixture struct {
	svc     *Service
	db      *sql.DB
	dbMock  sqlmock.Sqlmock
	wallets *mocks.MockWallets
	ledger  *mocks.MockLedger
	assets  *mocks.MockAssets
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctrl := gomock.NewController(t)

	f := &fixture{
		db:      db,
		dbMock:  dbMock,
		wallets: mocks.NewMockWallets(ctrl),
		ledger:  mocks.NewMockLedger(ctrl),
		assets:  mocks.NewMockAssets(ctrl),
	}

	retry := pgutils.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	f.svc = newService(db, f.wallets, f.ledger, f.assets, retry)

	return f
}

func topupRequest() Request {
	return Request{
		IdempotencyKey: "key-1",
		Type:           TxTopup,
		UserID:         "user_alice",
		AssetTypeID:    1,
		AmountMinor:    100,
		ReferenceID:    "order-42",
		Description:    "coin pack",
		CreatedBy:      "shop-api",
	}
}

func TestExecute_TopupSuccess(t *testing.T) {
	f := newFixture(t)
	req := topupRequest()

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), "user_alice", int64(1)).
		Return(&wallets.Wallet{ID: 10, OwnerID: "user_alice", AssetTypeID: 1, Balance: 50}, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), TreasuryOwnerID, int64(1)).
		Return(&wallets.Wallet{ID: 20, OwnerID: TreasuryOwnerID, AssetTypeID: 1, Balance: 1000}, nil)
	f.ledger.EXPECT().CreateTransaction(gomock.Any(), ledger.CreateParams{
		IdempotencyKey: "key-1",
		Type:           "TOPUP",
		ReferenceID:    "order-42",
		Description:    "coin pack",
		CreatedBy:      "shop-api",
	}).Return(&ledger.Transaction{ID: "tx-1", Status: "PENDING"}, nil)
	f.wallets.EXPECT().SetBalance(gomock.Any(), int64(10), int64(150)).Return(nil)
	f.wallets.EXPECT().SetBalance(gomock.Any(), int64(20), int64(900)).Return(nil)
	f.ledger.EXPECT().AppendEntries(gomock.Any(), "tx-1", []ledger.Entry{
		{WalletID: 10, EntryType: "CREDIT", Amount: 100, BalanceAfter: 150},
		{WalletID: 20, EntryType: "DEBIT", Amount: 100, BalanceAfter: 900},
	}).Return(nil)
	f.ledger.EXPECT().MarkCompleted(gomock.Any(), "tx-1").Return(nil)

	res, err := f.svc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "tx-1", res.TransactionID)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.False(t, res.Replayed)
	assert.Equal(t, UserAccount("user_alice"), res.Entries[0].Account)
	assert.Equal(t, EntryCredit, res.Entries[0].EntryType)
	assert.Equal(t, int64(150), res.Entries[0].BalanceAfter)
	assert.Equal(t, TreasuryAccount(), res.Entries[1].Account)
	assert.Equal(t, EntryDebit, res.Entries[1].EntryType)
	assert.Equal(t, int64(900), res.Entries[1].BalanceAfter)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_BonusCreditsBothLegs(t *testing.T) {
	f := newFixture(t)

	req := topupRequest()
	req.Type = TxBonus

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), "user_alice", int64(1)).
		Return(&wallets.Wallet{ID: 10, Balance: 0}, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), TreasuryOwnerID, int64(1)).
		Return(&wallets.Wallet{ID: 20, Balance: 0}, nil)
	f.ledger.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&ledger.Transaction{ID: "tx-2", Status: "PENDING"}, nil)
	f.wallets.EXPECT().SetBalance(gomock.Any(), int64(10), int64(100)).Return(nil)
	f.wallets.EXPECT().SetBalance(gomock.Any(), int64(20), int64(100)).Return(nil)
	f.ledger.EXPECT().AppendEntries(gomock.Any(), "tx-2", []ledger.Entry{
		{WalletID: 10, EntryType: "CREDIT", Amount: 100, BalanceAfter: 100},
		{WalletID: 20, EntryType: "CREDIT", Amount: 100, BalanceAfter: 100},
	}).Return(nil)
	f.ledger.EXPECT().MarkCompleted(gomock.Any(), "tx-2").Return(nil)

	res, err := f.svc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Treasury leg is a CREDIT too: it records cumulative issuance.
	assert.Equal(t, EntryCredit, res.Entries[0].EntryType)
	assert.Equal(t, EntryCredit, res.Entries[1].EntryType)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_ReplayReturnsStoredResult(t *testing.T) {
	f := newFixture(t)
	req := topupRequest()

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").
		Return(&ledger.Transaction{ID: "tx-1", Status: "COMPLETED"}, nil)
	// Treasury leg stored first: the replay must still put the user leg first.
	f.ledger.EXPECT().EntriesOf(gomock.Any(), "tx-1").Return([]ledger.EntryRecord{
		{WalletID: 20, OwnerID: TreasuryOwnerID, EntryType: "DEBIT", Amount: 100, BalanceAfter: 900},
		{WalletID: 10, OwnerID: "user_alice", EntryType: "CREDIT", Amount: 100, BalanceAfter: 150},
	}, nil)

	res, err := f.svc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, res.Replayed)
	assert.Equal(t, "tx-1", res.TransactionID)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, UserAccount("user_alice"), res.Entries[0].Account)
	assert.Equal(t, int64(150), res.Entries[0].BalanceAfter)
	assert.Equal(t, TreasuryAccount(), res.Entries[1].Account)
	assert.Equal(t, int64(900), res.Entries[1].BalanceAfter)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_ConflictOnNonTerminalDuplicate(t *testing.T) {
	for _, status := range []string{"PENDING", "FAILED"} {
		t.Run(status, func(t *testing.T) {
			f := newFixture(t)
			req := topupRequest()

			f.dbMock.ExpectBegin()
			f.dbMock.ExpectRollback()

			f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").
				Return(&ledger.Transaction{ID: "tx-1", Status: status}, nil)

			res, err := f.svc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, res)

			var conflict *IdempotencyConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, "key-1", conflict.Key)
			assert.Equal(t, TransactionStatus(status), conflict.Status)
			assert.NoError(t, f.dbMock.ExpectationsWereMet())
		})
	}
}

func TestExecute_InsufficientFundsRollsBack(t *testing.T) {
	f := newFixture(t)

	req := topupRequest()
	req.Type = TxSpend
	req.AmountMinor = 60

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), "user_alice", int64(1)).
		Return(&wallets.Wallet{ID: 10, Balance: 50}, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), TreasuryOwnerID, int64(1)).
		Return(&wallets.Wallet{ID: 20, Balance: 1000}, nil)
	// No CreateTransaction, SetBalance or AppendEntries: nothing persists.

	res, err := f.svc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Nil(t, res)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_InsufficientTreasuryOnTopup(t *testing.T) {
	f := newFixture(t)

	req := topupRequest()
	req.AmountMinor = 20

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), "user_alice", int64(1)).
		Return(&wallets.Wallet{ID: 10, Balance: 0}, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), TreasuryOwnerID, int64(1)).
		Return(&wallets.Wallet{ID: 20, Balance: 10}, nil)

	_, err := f.svc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInsufficientTreasury)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_WalletNotFound(t *testing.T) {
	f := newFixture(t)
	req := topupRequest()

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), "user_alice", int64(1)).
		Return(nil, wallets.ErrWalletNotFound)

	_, err := f.svc.Execute(context.Background(), req)

	require.ErrorIs(t, err, wallets.ErrWalletNotFound)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_TreasuryMissingIsServerError(t *testing.T) {
	f := newFixture(t)
	req := topupRequest()

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), "user_alice", int64(1)).
		Return(&wallets.Wallet{ID: 10, Balance: 0}, nil)
	f.wallets.EXPECT().LockForUpdate(gomock.Any(), TreasuryOwnerID, int64(1)).
		Return(nil, wallets.ErrWalletNotFound)

	_, err := f.svc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrTreasuryNotFound)
	assert.NotErrorIs(t, err, wallets.ErrWalletNotFound)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_RejectsBadInputBeforeOpeningTx(t *testing.T) {
	f := newFixture(t)

	req := topupRequest()
	req.AmountMinor = 0

	_, err := f.svc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidAmount)

	req = topupRequest()
	req.Type = TransactionType("REFUND")

	_, err = f.svc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidTransactionType)

	// No Begin was ever expected: validation failures never touch the store.
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_RetriesDeadlockThenSucceeds(t *testing.T) {
	f := newFixture(t)
	req := topupRequest()

	deadlock := &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}

	// Attempt 1 hits a deadlock at the user lock and rolls back.
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()
	// Attempt 2 runs the whole sequence from scratch and commits.
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	gomock.InOrder(
		f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil),
		f.wallets.EXPECT().LockForUpdate(gomock.Any(), "user_alice", int64(1)).Return(nil, deadlock),
		f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil),
		f.wallets.EXPECT().LockForUpdate(gomock.Any(), "user_alice", int64(1)).
			Return(&wallets.Wallet{ID: 10, Balance: 50}, nil),
		f.wallets.EXPECT().LockForUpdate(gomock.Any(), TreasuryOwnerID, int64(1)).
			Return(&wallets.Wallet{ID: 20, Balance: 1000}, nil),
		f.ledger.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			Return(&ledger.Transaction{ID: "tx-1", Status: "PENDING"}, nil),
		f.wallets.EXPECT().SetBalance(gomock.Any(), int64(10), int64(150)).Return(nil),
		f.wallets.EXPECT().SetBalance(gomock.Any(), int64(20), int64(900)).Return(nil),
		f.ledger.EXPECT().AppendEntries(gomock.Any(), "tx-1", gomock.Any()).Return(nil),
		f.ledger.EXPECT().MarkCompleted(gomock.Any(), "tx-1").Return(nil),
	)

	res, err := f.svc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "tx-1", res.TransactionID)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_RetriesExhausted(t *testing.T) {
	f := newFixture(t)
	req := topupRequest()

	deadlock := &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}

	for range 3 {
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()
	}

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, deadlock).Times(3)

	_, err := f.svc.Execute(context.Background(), req)

	require.ErrorIs(t, err, pgutils.ErrRetriesExhausted)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestExecute_UnexpectedStoreErrorIsNotRetried(t *testing.T) {
	f := newFixture(t)
	req := topupRequest()

	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	boom := errors.New("connection reset")

	f.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, boom)

	_, err := f.svc.Execute(context.Background(), req)

	require.ErrorIs(t, err, boom)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestQueries_Passthrough(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.wallets.EXPECT().GetBalance(ctx, "user_alice", int64(1)).
		Return(&wallets.BalanceView{OwnerID: "user_alice", AssetTypeID: 1, Balance: 150}, nil)

	view, err := f.svc.GetBalance(ctx, "user_alice", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(150), view.Balance)

	f.wallets.EXPECT().GetUserWallets(ctx, "user_alice").
		Return([]wallets.BalanceView{{AssetTypeID: 1}, {AssetTypeID: 2}}, nil)

	views, err := f.svc.GetUserWallets(ctx, "user_alice")
	require.NoError(t, err)
	assert.Len(t, views, 2)

	f.ledger.EXPECT().History(ctx, "user_alice", int64(0), 50, 0).
		Return([]ledger.HistoryRow{{TransactionID: "tx-1"}}, nil)

	rows, err := f.svc.GetTransactionHistory(ctx, "user_alice", 0, 50, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
