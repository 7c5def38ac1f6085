package ledger

import (
	"cosmossdk.io/log"

	"github.com/paw-chain/amm/types"
)

// account is the mutable per-account record. Accounts are created on
// first use and never removed; anything absent from the map reads as
// the zero value.
type account struct {
	balanceA uint64
	balanceB uint64
	shares   uint64
}

// Ledger is a single constant-product pool together with the free
// account balances it settles against. Each Ledger owns its own
// account map, so independent pools coexist without interference.
//
// The Ledger has no internal locking and no suspension points: every
// operation runs to completion synchronously. Callers exposing one
// instance to concurrent writers must serialize mutations themselves;
// read accessors may interleave with each other but not with a
// mutation in progress.
type Ledger struct {
	params      types.Params
	reserveA    uint64
	reserveB    uint64
	totalShares uint64
	accounts    map[string]*account

	logger  log.Logger
	metrics *Metrics
}

// Option configures a Ledger at construction time.
type Option func(*Ledger)

// WithLogger attaches a logger. Successful mutations log at debug
// level; errors are returned to the caller, never logged.
func WithLogger(logger log.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithMetrics attaches prometheus instrumentation, updated on the
// success path of every mutation.
func WithMetrics(m *Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// New creates an empty, inactive ledger. Fee rates of 1000 per mille
// or more are remapped to zero by the params constructor.
func New(feeRate uint64, opts ...Option) *Ledger {
	l := &Ledger{
		params:   types.NewParams(feeRate),
		accounts: make(map[string]*account),
		logger:   log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FundAccount credits free token balances to an account. It is a
// bootstrap helper for hosts and tests: no validation, no effect on
// reserves, never fails.
func (l *Ledger) FundAccount(name string, amountA, amountB uint64) {
	rec := l.getOrCreate(name)
	rec.balanceA += amountA
	rec.balanceB += amountB

	l.logger.Debug("account funded",
		"account", name,
		"amount_a", amountA,
		"amount_b", amountB,
	)
}

// AccountBalance returns the account's free balances and shares,
// zero-valued for accounts the ledger has never seen.
func (l *Ledger) AccountBalance(name string) types.Account {
	rec := l.lookup(name)
	return types.Account{
		BalanceA: rec.balanceA,
		BalanceB: rec.balanceB,
		Shares:   rec.shares,
	}
}

// PoolInfo returns a snapshot of pool-level state.
func (l *Ledger) PoolInfo() types.Pool {
	return types.Pool{
		ReserveA:    l.reserveA,
		ReserveB:    l.reserveB,
		TotalShares: l.totalShares,
		FeeRate:     l.params.FeeRate,
	}
}

// Params returns the pool configuration.
func (l *Ledger) Params() types.Params {
	return l.params
}

// lookup reads an account record by value without inserting it.
func (l *Ledger) lookup(name string) account {
	if rec, ok := l.accounts[name]; ok {
		return *rec
	}
	return account{}
}

func (l *Ledger) getOrCreate(name string) *account {
	rec, ok := l.accounts[name]
	if !ok {
		rec = &account{}
		l.accounts[name] = rec
	}
	return rec
}

// validAmount rejects zero amounts and debits larger than the held
// balance. denom names the debited asset in the error context.
func validAmount(denom string, amount, balance uint64) error {
	if amount == 0 {
		return types.ErrZeroAmount.Wrapf("%s amount", denom)
	}
	if amount > balance {
		return types.ErrInsufficientAmount.Wrapf("%s: have %d, need %d", denom, balance, amount)
	}
	return nil
}
