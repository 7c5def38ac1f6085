package ledger

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/paw-chain/amm/types"
)

// Ledger invariants. Each returns a human-readable message and whether
// the invariant is broken, so hosts and tests can assert consistency
// after mutation sequences.

// SharesInvariant checks that outstanding account shares sum exactly
// to the pool's total share supply.
func (l *Ledger) SharesInvariant() (string, bool) {
	sum := math.ZeroInt()
	for _, rec := range l.accounts {
		sum = sum.Add(math.NewIntFromUint64(rec.shares))
	}

	if !sum.Equal(math.NewIntFromUint64(l.totalShares)) {
		return fmt.Sprintf("account shares sum to %s, total shares are %d", sum, l.totalShares), true
	}
	return "", false
}

// ReservesInvariant checks that share supply and reserves agree (no
// shares against a fully empty pool, no reserves without owners) and
// that the fee rate is inside its range. A single empty reserve with
// shares outstanding is a legal state: a swap can drain one side.
func (l *Ledger) ReservesInvariant() (string, bool) {
	if l.totalShares == 0 && (l.reserveA != 0 || l.reserveB != 0) {
		return fmt.Sprintf("reserves a=%d b=%d held with no shares outstanding", l.reserveA, l.reserveB), true
	}
	if l.totalShares != 0 && l.reserveA == 0 && l.reserveB == 0 {
		return fmt.Sprintf("%d shares outstanding against empty reserves", l.totalShares), true
	}
	if l.params.FeeRate >= types.FeeDenominator {
		return fmt.Sprintf("fee rate %d out of range [0, %d)", l.params.FeeRate, types.FeeDenominator), true
	}
	return "", false
}

// AllInvariants runs every ledger invariant, stopping at the first
// broken one.
func (l *Ledger) AllInvariants() (string, bool) {
	if msg, broken := l.SharesInvariant(); broken {
		return msg, broken
	}
	return l.ReservesInvariant()
}
