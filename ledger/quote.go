package ledger

// Quote methods snapshot pool state and delegate to the pure math on
// types.Pool. They read, never mutate, and are the same computations
// the mutation operations commit against.

// QuoteSpotAOut returns the token A amount matching amountB at the
// current reserve ratio, ignoring fees.
func (l *Ledger) QuoteSpotAOut(amountB uint64) (uint64, error) {
	return l.PoolInfo().SpotAOut(amountB)
}

// QuoteSpotBOut returns the token B amount matching amountA at the
// current reserve ratio, ignoring fees.
func (l *Ledger) QuoteSpotBOut(amountA uint64) (uint64, error) {
	return l.PoolInfo().SpotBOut(amountA)
}

// QuoteWithdraw returns the token amounts redeeming share pool shares
// is currently worth.
func (l *Ledger) QuoteWithdraw(share uint64) (amountA, amountB uint64, err error) {
	return l.PoolInfo().WithdrawAmounts(share)
}

// QuoteSwapAForB returns the fee-discounted token B output for a swap
// of amountA token A.
func (l *Ledger) QuoteSwapAForB(amountA uint64) (uint64, error) {
	return l.PoolInfo().SwapAmountBOut(amountA)
}

// QuoteSwapBForA returns the token A output for a swap of amountB
// token B, fee grossed back onto the input side.
func (l *Ledger) QuoteSwapBForA(amountB uint64) (uint64, error) {
	return l.PoolInfo().SwapAmountAOut(amountB)
}
