package types

import (
	"cosmossdk.io/math"
)

// Ledger state is bounded unsigned (uint64), but every reserve-scale
// product is computed in arbitrary-width space before narrowing back.
// wide/narrow are the two ends of that bridge; narrowing a value that
// no longer fits uint64 fails with ErrOverflow instead of wrapping.

func wide(v uint64) math.Int {
	return math.NewIntFromUint64(v)
}

func narrow(v math.Int) (uint64, error) {
	if !v.IsUint64() {
		return 0, ErrOverflow.Wrapf("value %s exceeds uint64 range", v)
	}
	return v.Uint64(), nil
}

// mulDiv computes a*b/c without intermediate truncation. c must be
// nonzero; callers guard it via the activity check.
func mulDiv(a, b, c uint64) (uint64, error) {
	return narrow(wide(a).Mul(wide(b)).Quo(wide(c)))
}

// Active reports whether the pool holds live liquidity. Reserves are
// either both zero (inactive) or both positive (active); the product
// form mirrors the reserve_a * reserve_b > 0 activity check, computed
// in wide space so large reserves cannot wrap it to zero.
func (p Pool) Active() bool {
	return wide(p.ReserveA).Mul(wide(p.ReserveB)).IsPositive()
}

// SpotAOut returns the token A amount matching amountB at the current
// reserve ratio. This is an informational spot quote: it ignores fees
// and price impact.
func (p Pool) SpotAOut(amountB uint64) (uint64, error) {
	if !p.Active() {
		return 0, ErrZeroLiquidity
	}
	return mulDiv(p.ReserveA, amountB, p.ReserveB)
}

// SpotBOut returns the token B amount matching amountA at the current
// reserve ratio, ignoring fees and price impact.
func (p Pool) SpotBOut(amountA uint64) (uint64, error) {
	if !p.Active() {
		return 0, ErrZeroLiquidity
	}
	return mulDiv(p.ReserveB, amountA, p.ReserveA)
}

// WithdrawAmounts returns the pro-rata portion of both reserves that
// redeeming share pool shares is worth. Integer division rounds down,
// so redemption may come out strictly below the exact share.
func (p Pool) WithdrawAmounts(share uint64) (amountA, amountB uint64, err error) {
	if !p.Active() {
		return 0, 0, ErrZeroLiquidity
	}
	if share > p.TotalShares {
		return 0, 0, ErrInvalidShare.Wrapf("share %d exceeds total shares %d", share, p.TotalShares)
	}

	amountA, err = mulDiv(p.ReserveA, share, p.TotalShares)
	if err != nil {
		return 0, 0, err
	}
	amountB, err = mulDiv(p.ReserveB, share, p.TotalShares)
	if err != nil {
		return 0, 0, err
	}
	return amountA, amountB, nil
}

// DepositShares returns the share amount minted for contributing
// amountA and amountB. The first deposit into an empty pool mints the
// fixed bootstrap amount regardless of the deposited quantities; every
// later deposit must match the current reserve ratio exactly under
// integer division or it is rejected, so deposits never move the price.
func (p Pool) DepositShares(amountA, amountB uint64) (uint64, error) {
	if p.TotalShares == 0 {
		return BootstrapShares, nil
	}
	if p.ReserveA == 0 || p.ReserveB == 0 {
		return 0, ErrZeroLiquidity.Wrap("pool has shares but an empty reserve")
	}

	shareA, err := mulDiv(p.TotalShares, amountA, p.ReserveA)
	if err != nil {
		return 0, err
	}
	shareB, err := mulDiv(p.TotalShares, amountB, p.ReserveB)
	if err != nil {
		return 0, err
	}
	if shareA != shareB {
		return 0, ErrNonEquivalentValue.Wrapf("token A is worth %d shares, token B %d", shareA, shareB)
	}
	if shareA == 0 {
		return 0, ErrThresholdNotReached
	}
	return shareA, nil
}

// SwapAmountBOut returns the token B output for swapping in amountA of
// token A. The fee is taken off the input, then the output follows the
// constant-product curve: newReserveB = k / (reserveA + effectiveIn).
// When truncation leaves the implied reserve unmoved the output is
// decremented by one unit so a swap can never come out free; with
// checked arithmetic that decrement of a zero output fails as
// ErrOverflow rather than wrapping.
func (p Pool) SwapAmountBOut(amountA uint64) (uint64, error) {
	if !p.Active() {
		return 0, ErrZeroLiquidity
	}

	effectiveIn, err := mulDiv(FeeDenominator-p.FeeRate, amountA, FeeDenominator)
	if err != nil {
		return 0, err
	}

	k := wide(p.ReserveA).Mul(wide(p.ReserveB))
	newReserveB := k.Quo(wide(p.ReserveA).Add(wide(effectiveIn)))
	out := wide(p.ReserveB).Sub(newReserveB)
	if newReserveB.Equal(wide(p.ReserveB)) {
		out = out.SubRaw(1)
	}
	if !out.IsPositive() {
		return 0, ErrOverflow.Wrapf("swap of %d moves no reserves", amountA)
	}
	return narrow(out)
}

// SwapAmountAOut returns the token A output for swapping in amountB of
// token B. This direction solves for the nominal input needed to drain
// amountB from reserve B, so the curve output is grossed back up by
// FeeDenominator/(FeeDenominator-fee); no one-unit rounding adjustment
// is applied here, unlike the A-to-B direction.
func (p Pool) SwapAmountAOut(amountB uint64) (uint64, error) {
	if !p.Active() {
		return 0, ErrZeroLiquidity
	}
	// Draining reserve B entirely needs unbounded input, so consuming
	// the full reserve is rejected along with anything above it.
	if amountB >= p.ReserveB {
		return 0, ErrInsufficientLiquidity.Wrapf("amount %d exceeds available reserve %d", amountB, p.ReserveB)
	}

	k := wide(p.ReserveA).Mul(wide(p.ReserveB))
	newReserveA := k.Quo(wide(p.ReserveB).Sub(wide(amountB)))
	out := newReserveA.Sub(wide(p.ReserveA)).
		Mul(wide(FeeDenominator)).
		Quo(wide(FeeDenominator - p.FeeRate))
	return narrow(out)
}
