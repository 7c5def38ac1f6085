package ledger

// Deposit moves amountA and amountB from the account's free balances
// into the pool reserves and mints the matching shares. The first
// successful deposit activates the pool and mints the fixed bootstrap
// amount; later deposits must match the reserve ratio exactly.
//
// All validation and share computation happens before any field is
// written: on error the ledger is unchanged.
func (l *Ledger) Deposit(name string, amountA, amountB uint64) (uint64, error) {
	rec := l.lookup(name)
	if err := validAmount("token A", amountA, rec.balanceA); err != nil {
		return 0, err
	}
	if err := validAmount("token B", amountB, rec.balanceB); err != nil {
		return 0, err
	}

	shares, err := l.PoolInfo().DepositShares(amountA, amountB)
	if err != nil {
		return 0, err
	}

	newReserveA, err := safeAdd(l.reserveA, amountA)
	if err != nil {
		return 0, err
	}
	newReserveB, err := safeAdd(l.reserveB, amountB)
	if err != nil {
		return 0, err
	}
	newTotalShares, err := safeAdd(l.totalShares, shares)
	if err != nil {
		return 0, err
	}
	newAccountShares, err := safeAdd(rec.shares, shares)
	if err != nil {
		return 0, err
	}

	acct := l.getOrCreate(name)
	acct.balanceA -= amountA
	acct.balanceB -= amountB
	acct.shares = newAccountShares
	l.reserveA = newReserveA
	l.reserveB = newReserveB
	l.totalShares = newTotalShares

	l.logger.Debug("liquidity deposited",
		"account", name,
		"amount_a", amountA,
		"amount_b", amountB,
		"shares", shares,
	)
	if l.metrics != nil {
		l.metrics.LiquidityAdded.WithLabelValues("a").Add(float64(amountA))
		l.metrics.LiquidityAdded.WithLabelValues("b").Add(float64(amountB))
		l.metrics.observePool(l.PoolInfo())
	}

	return shares, nil
}
