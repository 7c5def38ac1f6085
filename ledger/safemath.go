package ledger

import (
	stdmath "math"

	"github.com/paw-chain/amm/types"
)

// Checked uint64 arithmetic for state commits. Mutation operations
// compute every post-state value through these before writing a single
// field, so a failed check leaves the ledger untouched.

// safeAdd adds two uint64 values, failing with ErrOverflow instead of
// wrapping.
func safeAdd(a, b uint64) (uint64, error) {
	if a > stdmath.MaxUint64-b {
		return 0, types.ErrOverflow.Wrapf("%d + %d exceeds uint64 range", a, b)
	}
	return a + b, nil
}

// safeSub subtracts b from a, failing with ErrOverflow on underflow.
func safeSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, types.ErrOverflow.Wrapf("%d - %d underflows", a, b)
	}
	return a - b, nil
}
