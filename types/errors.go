package types

import (
	"cosmossdk.io/errors"
)

// Pool ledger sentinel errors
var (
	ErrInvalidShare          = errors.Register(ModuleName, 1, "share exceeds total pool shares")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 2, "insufficient liquidity in pool")
	ErrInsufficientAmount    = errors.Register(ModuleName, 3, "insufficient account balance")
	ErrNonEquivalentValue    = errors.Register(ModuleName, 4, "token amounts are not of equivalent value")
	ErrSlippageExceeded      = errors.Register(ModuleName, 5, "slippage tolerance exceeded")
	ErrThresholdNotReached   = errors.Register(ModuleName, 6, "contribution below minimum share threshold")
	ErrZeroAmount            = errors.Register(ModuleName, 7, "amount cannot be zero")
	ErrZeroLiquidity         = errors.Register(ModuleName, 8, "pool has no liquidity")
	ErrOverflow              = errors.Register(ModuleName, 9, "arithmetic overflow")
)
