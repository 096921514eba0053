package wallet

// balanceDelta is the outcome of applying one transaction to the pair of
// locked balances. Pure data, no I/O.
type balanceDelta struct {
	userAfter     int64
	treasuryAfter int64
	userEntry     EntryType
	treasuryEntry EntryType
}

// applyRules computes the resulting balances and entry polarities for one
// transaction. amount must already be validated positive.
//
// TOPUP and SPEND are classic double entry: the two legs are
// polarity-opposite and amount-equal. BONUS intentionally credits BOTH
// wallets: the treasury leg records cumulative issuance rather than a debit.
// That asymmetry is part of the ledger design, not an error.
func applyRules(txType TransactionType, amount, userBalance, treasuryBalance int64) (balanceDelta, error) {
	switch txType {
	case TxTopup:
		if treasuryBalance < amount {
			return balanceDelta{}, ErrInsufficientTreasury
		}

		return balanceDelta{
			userAfter:     userBalance + amount,
			treasuryAfter: treasuryBalance - amount,
			userEntry:     EntryCredit,
			treasuryEntry: EntryDebit,
		}, nil

	case TxBonus:
		return balanceDelta{
			userAfter:     userBalance + amount,
			treasuryAfter: treasuryBalance + amount,
			userEntry:     EntryCredit,
			treasuryEntry: EntryCredit,
		}, nil

	case TxSpend:
		if userBalance < amount {
			return balanceDelta{}, ErrInsufficientFunds
		}

		return balanceDelta{
			userAfter:     userBalance - amount,
			treasuryAfter: treasuryBalance + amount,
			userEntry:     EntryDebit,
			treasuryEntry: EntryCredit,
		}, nil

	default:
		return balanceDelta{}, ErrInvalidTransactionType
	}
}
