package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/amm/ledger"
	"github.com/paw-chain/amm/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "ammcli",
		Short: "Interactive constant-product pool terminal",
		Long: `Launch an interactive terminal driving an in-memory liquidity pool.

Features:
- Menu-driven navigation
- Pool and account inspection
- Guided deposits, withdrawals and swaps
- Fee-aware and spot price quotes

Example:
  $ ammcli --fee-rate 3 --account alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewLogger(os.Stderr)

			opts := []ledger.Option{ledger.WithLogger(logger)}
			if addr := v.GetString("metrics-addr"); addr != "" {
				reg := prometheus.NewRegistry()
				opts = append(opts, ledger.WithMetrics(ledger.NewMetrics(reg)))
				startMetricsServer(addr, reg, logger)
			}

			l := ledger.New(v.GetUint64("fee-rate"), opts...)

			terminal := NewTerminal(l, v.GetString("account"))
			return terminal.Run()
		},
	}

	cmd.Flags().Uint64("fee-rate", types.DefaultFeeRate, "swap fee in parts per thousand (values >= 1000 disable the fee)")
	cmd.Flags().String("account", "trader", "account name to operate as")
	cmd.Flags().String("metrics-addr", "", "listen address for Prometheus metrics (empty disables)")

	v.SetEnvPrefix("AMM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

// startMetricsServer exposes the registry on /metrics in a background
// goroutine. Errors after startup (like port in use) are logged but not fatal.
func startMetricsServer(addr string, reg *prometheus.Registry, logger log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "err", err)
		}
	}()

	logger.Info("serving metrics", "addr", fmt.Sprintf("http://%s/metrics", addr))
}
