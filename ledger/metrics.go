package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paw-chain/amm/types"
)

// Metrics holds the Prometheus instruments for one ledger. Counters
// track flow through the pool; gauges mirror the current pool state.
type Metrics struct {
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	ShareSupply      prometheus.Gauge
}

// NewMetrics creates and registers the ledger instruments on reg. Each
// ledger needs its own registerer; attaching one Metrics value to two
// ledgers mixes their series.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SwapsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "amm",
				Subsystem: "pool",
				Name:      "swaps_total",
				Help:      "Total number of swaps executed",
			},
			[]string{"direction"},
		),
		SwapVolume: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "amm",
				Subsystem: "pool",
				Name:      "swap_volume_total",
				Help:      "Total swap input volume in base units",
			},
			[]string{"token"},
		),
		LiquidityAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "amm",
				Subsystem: "pool",
				Name:      "liquidity_added_total",
				Help:      "Total liquidity deposited into the pool",
			},
			[]string{"token"},
		),
		LiquidityRemoved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "amm",
				Subsystem: "pool",
				Name:      "liquidity_removed_total",
				Help:      "Total liquidity withdrawn from the pool",
			},
			[]string{"token"},
		),
		PoolReserves: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "amm",
				Subsystem: "pool",
				Name:      "pool_reserves",
				Help:      "Current pool reserves",
			},
			[]string{"token"},
		),
		ShareSupply: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "amm",
				Subsystem: "pool",
				Name:      "share_supply",
				Help:      "Outstanding pool shares",
			},
		),
	}
}

// observePool refreshes the pool-level gauges from a snapshot.
func (m *Metrics) observePool(p types.Pool) {
	m.PoolReserves.WithLabelValues("a").Set(float64(p.ReserveA))
	m.PoolReserves.WithLabelValues("b").Set(float64(p.ReserveB))
	m.ShareSupply.Set(float64(p.TotalShares))
}
