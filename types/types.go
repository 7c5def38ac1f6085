package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// Precision is the fixed-point scale for pool shares.
	Precision uint64 = 1_000_000

	// BootstrapShares is the share amount minted by the first deposit
	// into an empty pool, independent of the deposited amounts. It sets
	// the initial share-to-reserve exchange rate.
	BootstrapShares uint64 = 100 * Precision

	// FeeDenominator is the scale for fee rates: a fee rate is a value
	// in [0, FeeDenominator) charged in parts per thousand on swap
	// input amounts.
	FeeDenominator uint64 = 1000
)

// Account is a snapshot of one account's holdings: free balances of
// both tokens plus pool shares. Accounts the ledger has never seen
// read as the zero value.
type Account struct {
	BalanceA uint64
	BalanceB uint64
	Shares   uint64
}

// Pool is a snapshot of pool-level state. Quote math lives as methods
// on this type; quotes are pure and never mutate the snapshot.
type Pool struct {
	ReserveA    uint64
	ReserveB    uint64
	TotalShares uint64
	FeeRate     uint64
}
