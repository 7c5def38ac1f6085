package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func healthyLedger(t *testing.T) *Ledger {
	t.Helper()
	l := New(3)
	l.FundAccount("alice", 1_000, 2_000)
	_, err := l.Deposit("alice", 1_000, 2_000)
	require.NoError(t, err)
	return l
}

func TestInvariantsHoldOnHealthyLedger(t *testing.T) {
	l := healthyLedger(t)

	msg, broken := l.AllInvariants()
	require.False(t, broken, msg)

	// Still holds on a ledger that has never seen a deposit.
	msg, broken = New(0).AllInvariants()
	require.False(t, broken, msg)
}

func TestSharesInvariantDetectsDrift(t *testing.T) {
	l := healthyLedger(t)

	l.totalShares++

	msg, broken := l.SharesInvariant()
	require.True(t, broken)
	require.Contains(t, msg, "total shares")
}

func TestReservesInvariantDetectsOrphanedState(t *testing.T) {
	t.Run("shares against empty reserves", func(t *testing.T) {
		l := healthyLedger(t)
		l.reserveA = 0
		l.reserveB = 0

		_, broken := l.ReservesInvariant()
		require.True(t, broken)
	})

	t.Run("reserves with no shares", func(t *testing.T) {
		l := New(0)
		l.reserveA = 5

		_, broken := l.ReservesInvariant()
		require.True(t, broken)
	})

	t.Run("one drained reserve is legal", func(t *testing.T) {
		l := healthyLedger(t)
		l.reserveA = 0

		msg, broken := l.ReservesInvariant()
		require.False(t, broken, msg)
	})
}

func TestInvariantsHoldAcrossOperations(t *testing.T) {
	l := New(3)
	l.FundAccount("alice", 10_000, 20_000)
	l.FundAccount("bob", 5_000, 5_000)

	_, err := l.Deposit("alice", 10_000, 20_000)
	require.NoError(t, err)
	_, err = l.SwapAForB("bob", 1_000, 0)
	require.NoError(t, err)
	_, err = l.SwapBForA("bob", 500, 0)
	require.NoError(t, err)
	_, _, err = l.Withdraw("alice", 25_000_000)
	require.NoError(t, err)

	msg, broken := l.AllInvariants()
	require.False(t, broken, msg)
}
