package ledger

// Withdraw burns share pool shares held by the account and pays out
// the pro-rata portion of both reserves into its free balances.
// Shares are burned from the withdrawing account as well as the total,
// keeping the sum of account shares equal to the total supply.
func (l *Ledger) Withdraw(name string, share uint64) (amountA, amountB uint64, err error) {
	rec := l.lookup(name)
	if err := validAmount("share", share, rec.shares); err != nil {
		return 0, 0, err
	}

	// The account check above already bounds share by the account's
	// holding; the quote re-checks it against the total supply.
	amountA, amountB, err = l.PoolInfo().WithdrawAmounts(share)
	if err != nil {
		return 0, 0, err
	}

	newReserveA, err := safeSub(l.reserveA, amountA)
	if err != nil {
		return 0, 0, err
	}
	newReserveB, err := safeSub(l.reserveB, amountB)
	if err != nil {
		return 0, 0, err
	}
	newTotalShares, err := safeSub(l.totalShares, share)
	if err != nil {
		return 0, 0, err
	}
	newBalanceA, err := safeAdd(rec.balanceA, amountA)
	if err != nil {
		return 0, 0, err
	}
	newBalanceB, err := safeAdd(rec.balanceB, amountB)
	if err != nil {
		return 0, 0, err
	}

	acct := l.getOrCreate(name)
	acct.shares -= share
	acct.balanceA = newBalanceA
	acct.balanceB = newBalanceB
	l.reserveA = newReserveA
	l.reserveB = newReserveB
	l.totalShares = newTotalShares

	l.logger.Debug("liquidity withdrawn",
		"account", name,
		"shares", share,
		"amount_a", amountA,
		"amount_b", amountB,
	)
	if l.metrics != nil {
		l.metrics.LiquidityRemoved.WithLabelValues("a").Add(float64(amountA))
		l.metrics.LiquidityRemoved.WithLabelValues("b").Add(float64(amountB))
		l.metrics.observePool(l.PoolInfo())
	}

	return amountA, amountB, nil
}
