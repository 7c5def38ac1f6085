package ledger_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/ledger"
	"github.com/paw-chain/amm/types"
)

func TestSwapAForB(t *testing.T) {
	l := ledger.New(0)
	l.FundAccount("alice", 50, 100)
	l.FundAccount("bob", 50, 0)

	_, err := l.Deposit("alice", 50, 100)
	require.NoError(t, err)

	out, err := l.SwapAForB("bob", 50, 50)
	require.NoError(t, err)
	require.Equal(t, uint64(50), out)

	pool := l.PoolInfo()
	require.Equal(t, uint64(100), pool.ReserveA)
	require.Equal(t, uint64(50), pool.ReserveB)
	require.Equal(t, types.BootstrapShares, pool.TotalShares)

	acct := l.AccountBalance("bob")
	require.Equal(t, uint64(0), acct.BalanceA)
	require.Equal(t, uint64(50), acct.BalanceB)
}

func TestSwapBForA(t *testing.T) {
	l := ledger.New(0)
	l.FundAccount("alice", 100, 100)
	l.FundAccount("bob", 0, 50)

	_, err := l.Deposit("alice", 100, 100)
	require.NoError(t, err)

	out, err := l.SwapBForA("bob", 50, 100)
	require.NoError(t, err)
	require.Equal(t, uint64(100), out)

	pool := l.PoolInfo()
	require.Equal(t, uint64(0), pool.ReserveA)
	require.Equal(t, uint64(150), pool.ReserveB)

	acct := l.AccountBalance("bob")
	require.Equal(t, uint64(100), acct.BalanceA)
	require.Equal(t, uint64(0), acct.BalanceB)
}

func TestSwapSlippageProtection(t *testing.T) {
	l := ledger.New(0)
	l.FundAccount("alice", 50, 100)
	l.FundAccount("bob", 50, 50)

	_, err := l.Deposit("alice", 50, 100)
	require.NoError(t, err)
	before := l.PoolInfo()

	_, err = l.SwapAForB("bob", 50, 51)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
	require.Equal(t, before, l.PoolInfo())

	bobBefore := l.AccountBalance("bob")
	_, err = l.SwapBForA("bob", 50, 1_000_000)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
	require.Equal(t, before, l.PoolInfo())
	require.Equal(t, bobBefore, l.AccountBalance("bob"))
}

func TestSwapFeeReducesOutput(t *testing.T) {
	feeFree := ledger.New(0)
	feeFree.FundAccount("alice", 1_000, 2_000)
	feeFree.FundAccount("bob", 100, 0)
	_, err := feeFree.Deposit("alice", 1_000, 2_000)
	require.NoError(t, err)

	charged := ledger.New(100)
	charged.FundAccount("alice", 1_000, 2_000)
	charged.FundAccount("bob", 100, 0)
	_, err = charged.Deposit("alice", 1_000, 2_000)
	require.NoError(t, err)

	freeOut, err := feeFree.SwapAForB("bob", 100, 0)
	require.NoError(t, err)
	feeOut, err := charged.SwapAForB("bob", 100, 0)
	require.NoError(t, err)

	require.Less(t, feeOut, freeOut)

	// The fee stays in the pool: the full input entered reserve A.
	require.Equal(t, charged.PoolInfo().ReserveA, feeFree.PoolInfo().ReserveA)
}

func TestSwapValidation(t *testing.T) {
	l := ledger.New(0)
	l.FundAccount("alice", 50, 100)
	l.FundAccount("bob", 10, 10)

	_, err := l.Deposit("alice", 50, 100)
	require.NoError(t, err)

	_, err = l.SwapAForB("bob", 0, 0)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = l.SwapAForB("bob", 11, 0)
	require.ErrorIs(t, err, types.ErrInsufficientAmount)

	_, err = l.SwapBForA("bob", 0, 0)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = l.SwapBForA("bob", 11, 0)
	require.ErrorIs(t, err, types.ErrInsufficientAmount)
}

func TestSwapBForAAgainstFullReserve(t *testing.T) {
	l := ledger.New(0)
	l.FundAccount("alice", 100, 100)
	l.FundAccount("bob", 0, 100)

	_, err := l.Deposit("alice", 100, 100)
	require.NoError(t, err)

	_, err = l.SwapBForA("bob", 100, 0)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestSwapMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := ledger.NewMetrics(reg)

	l := ledger.New(0, ledger.WithMetrics(metrics))
	l.FundAccount("alice", 50, 100)
	l.FundAccount("bob", 50, 0)

	_, err := l.Deposit("alice", 50, 100)
	require.NoError(t, err)

	_, err = l.SwapAForB("bob", 50, 0)
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.SwapsTotal.WithLabelValues("a_for_b")))
	require.Equal(t, 50.0, testutil.ToFloat64(metrics.SwapVolume.WithLabelValues("a")))
	require.Equal(t, 50.0, testutil.ToFloat64(metrics.LiquidityAdded.WithLabelValues("a")))
	require.Equal(t, 100.0, testutil.ToFloat64(metrics.PoolReserves.WithLabelValues("a")))
	require.Equal(t, 50.0, testutil.ToFloat64(metrics.PoolReserves.WithLabelValues("b")))

	// Failed swaps leave the counters alone.
	_, err = l.SwapAForB("bob", 1, 0)
	require.ErrorIs(t, err, types.ErrInsufficientAmount)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.SwapsTotal.WithLabelValues("a_for_b")))
}
