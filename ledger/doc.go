// Package ledger implements a single-pool constant-product AMM ledger.
//
// A Ledger tracks reserves of two fungible tokens, per-account free
// balances, and proportional ownership shares. It is the functional
// core only: no network surface, no persistence, no custody beyond its
// own balance maps.
//
// # Core Functionality
//
// Deposits mint shares against balanced contributions of both tokens;
// the first deposit activates the pool and mints a fixed bootstrap
// amount. Withdrawals burn shares and redeem a pro-rata slice of both
// reserves. Swaps in either direction price against the
// constant-product curve (x * y = k) with a parts-per-thousand fee on
// the input side and a caller-supplied slippage bound.
//
// Every mutation validates and quotes before writing state, so a
// failed operation leaves the ledger exactly as it was. Errors are
// registered sentinels from the types package and are returned, never
// logged.
package ledger
