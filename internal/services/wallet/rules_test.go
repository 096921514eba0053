package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		txType   TransactionType
		amount   int64
		user     int64
		treasury int64
		want     balanceDelta
		wantErr  error
	}{
		{
			name:     "topup_moves_from_treasury_to_user",
			txType:   TxTopup,
			amount:   100,
			user:     50,
			treasury: 1000,
			want: balanceDelta{
				userAfter:     150,
				treasuryAfter: 900,
				userEntry:     EntryCredit,
				treasuryEntry: EntryDebit,
			},
		},
		{
			name:     "topup_insufficient_treasury",
			txType:   TxTopup,
			amount:   20,
			user:     0,
			treasury: 10,
			wantErr:  ErrInsufficientTreasury,
		},
		{
			name:     "topup_exact_treasury_balance",
			txType:   TxTopup,
			amount:   1000,
			user:     0,
			treasury: 1000,
			want: balanceDelta{
				userAfter:     1000,
				treasuryAfter: 0,
				userEntry:     EntryCredit,
				treasuryEntry: EntryDebit,
			},
		},
		{
			// Both legs CREDIT: the treasury leg counts cumulative issuance.
			name:     "bonus_credits_both_wallets",
			txType:   TxBonus,
			amount:   100,
			user:     50,
			treasury: 1000,
			want: balanceDelta{
				userAfter:     150,
				treasuryAfter: 1100,
				userEntry:     EntryCredit,
				treasuryEntry: EntryCredit,
			},
		},
		{
			name:     "bonus_has_no_treasury_precondition",
			txType:   TxBonus,
			amount:   100,
			user:     0,
			treasury: 0,
			want: balanceDelta{
				userAfter:     100,
				treasuryAfter: 100,
				userEntry:     EntryCredit,
				treasuryEntry: EntryCredit,
			},
		},
		{
			name:     "spend_moves_from_user_to_treasury",
			txType:   TxSpend,
			amount:   60,
			user:     100,
			treasury: 1000,
			want: balanceDelta{
				userAfter:     40,
				treasuryAfter: 1060,
				userEntry:     EntryDebit,
				treasuryEntry: EntryCredit,
			},
		},
		{
			name:     "spend_insufficient_funds",
			txType:   TxSpend,
			amount:   60,
			user:     50,
			treasury: 1000,
			wantErr:  ErrInsufficientFunds,
		},
		{
			name:     "spend_exact_balance",
			txType:   TxSpend,
			amount:   50,
			user:     50,
			treasury: 0,
			want: balanceDelta{
				userAfter:     0,
				treasuryAfter: 50,
				userEntry:     EntryDebit,
				treasuryEntry: EntryCredit,
			},
		},
		{
			name:     "unknown_type",
			txType:   TransactionType("REFUND"),
			amount:   10,
			user:     100,
			treasury: 100,
			wantErr:  ErrInvalidTransactionType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := applyRules(tt.txType, tt.amount, tt.user, tt.treasury)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyRules_DoubleEntryConservation(t *testing.T) {
	t.Parallel()

	// For TOPUP and SPEND the signed deltas must cancel out.
	for _, txType := range []TransactionType{TxTopup, TxSpend} {
		delta, err := applyRules(txType, 30, 500, 500)
		require.NoError(t, err)

		userDelta := delta.userAfter - 500
		treasuryDelta := delta.treasuryAfter - 500

		assert.Equal(t, int64(0), userDelta+treasuryDelta, "type %s must conserve total balance", txType)
		assert.NotEqual(t, delta.userEntry, delta.treasuryEntry, "type %s legs must have opposite polarity", txType)
	}
}
