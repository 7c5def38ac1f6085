package ledger

import (
	"github.com/paw-chain/amm/types"
)

// SwapAForB sells amountA of token A for token B. The full input
// amount enters reserve A (the fee stays in the pool); reserve B pays
// out the fee-discounted curve output. minB is the caller's slippage
// bound: a computed output below it fails without touching state.
func (l *Ledger) SwapAForB(name string, amountA, minB uint64) (uint64, error) {
	rec := l.lookup(name)
	if err := validAmount("token A", amountA, rec.balanceA); err != nil {
		return 0, err
	}

	out, err := l.PoolInfo().SwapAmountBOut(amountA)
	if err != nil {
		return 0, err
	}
	if out < minB {
		return 0, types.ErrSlippageExceeded.Wrapf("minimum %d, computed %d", minB, out)
	}

	newReserveA, err := safeAdd(l.reserveA, amountA)
	if err != nil {
		return 0, err
	}
	newReserveB, err := safeSub(l.reserveB, out)
	if err != nil {
		return 0, err
	}
	newBalanceB, err := safeAdd(rec.balanceB, out)
	if err != nil {
		return 0, err
	}

	acct := l.getOrCreate(name)
	acct.balanceA -= amountA
	acct.balanceB = newBalanceB
	l.reserveA = newReserveA
	l.reserveB = newReserveB

	l.logger.Debug("swap executed",
		"account", name,
		"direction", "a_for_b",
		"amount_in", amountA,
		"amount_out", out,
	)
	if l.metrics != nil {
		l.metrics.SwapsTotal.WithLabelValues("a_for_b").Inc()
		l.metrics.SwapVolume.WithLabelValues("a").Add(float64(amountA))
		l.metrics.observePool(l.PoolInfo())
	}

	return out, nil
}

// SwapBForA sells amountB of token B for token A. minA is the caller's
// slippage bound. The output in this direction is the grossed-up quote
// from QuoteSwapBForA; the asymmetry with the A-to-B direction is
// deliberate.
func (l *Ledger) SwapBForA(name string, amountB, minA uint64) (uint64, error) {
	rec := l.lookup(name)
	if err := validAmount("token B", amountB, rec.balanceB); err != nil {
		return 0, err
	}

	out, err := l.PoolInfo().SwapAmountAOut(amountB)
	if err != nil {
		return 0, err
	}
	if out < minA {
		return 0, types.ErrSlippageExceeded.Wrapf("minimum %d, computed %d", minA, out)
	}

	newReserveB, err := safeAdd(l.reserveB, amountB)
	if err != nil {
		return 0, err
	}
	newReserveA, err := safeSub(l.reserveA, out)
	if err != nil {
		return 0, err
	}
	newBalanceA, err := safeAdd(rec.balanceA, out)
	if err != nil {
		return 0, err
	}

	acct := l.getOrCreate(name)
	acct.balanceB -= amountB
	acct.balanceA = newBalanceA
	l.reserveA = newReserveA
	l.reserveB = newReserveB

	l.logger.Debug("swap executed",
		"account", name,
		"direction", "b_for_a",
		"amount_in", amountB,
		"amount_out", out,
	)
	if l.metrics != nil {
		l.metrics.SwapsTotal.WithLabelValues("b_for_a").Inc()
		l.metrics.SwapVolume.WithLabelValues("b").Add(float64(amountB))
		l.metrics.observePool(l.PoolInfo())
	}

	return out, nil
}
