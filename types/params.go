package types

import "fmt"

// DefaultFeeRate is the default swap fee in parts per thousand (0.3%).
const DefaultFeeRate uint64 = 3

// Params holds the pool configuration.
type Params struct {
	// FeeRate is the swap fee in parts per thousand, always in
	// [0, FeeDenominator).
	FeeRate uint64
}

// NewParams builds Params from a caller-supplied fee rate. Rates of
// FeeDenominator or more are remapped to zero rather than rejected;
// this is a default-substitution rule, not a validation error.
func NewParams(feeRate uint64) Params {
	if feeRate >= FeeDenominator {
		feeRate = 0
	}
	return Params{FeeRate: feeRate}
}

// DefaultParams returns the default pool parameters.
func DefaultParams() Params {
	return NewParams(DefaultFeeRate)
}

// Validate checks that hand-built Params stay inside the fee range the
// constructor guarantees.
func (p Params) Validate() error {
	if p.FeeRate >= FeeDenominator {
		return fmt.Errorf("fee rate %d out of range [0, %d)", p.FeeRate, FeeDenominator)
	}
	return nil
}
