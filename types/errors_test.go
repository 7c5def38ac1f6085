package types

import (
	"errors"
	"testing"

	sdkerrors "cosmossdk.io/errors"
)

func TestErrorDefinitions(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  uint32
		wantSpace string
	}{
		{"ErrInvalidShare", ErrInvalidShare, 1, ModuleName},
		{"ErrInsufficientLiquidity", ErrInsufficientLiquidity, 2, ModuleName},
		{"ErrInsufficientAmount", ErrInsufficientAmount, 3, ModuleName},
		{"ErrNonEquivalentValue", ErrNonEquivalentValue, 4, ModuleName},
		{"ErrSlippageExceeded", ErrSlippageExceeded, 5, ModuleName},
		{"ErrThresholdNotReached", ErrThresholdNotReached, 6, ModuleName},
		{"ErrZeroAmount", ErrZeroAmount, 7, ModuleName},
		{"ErrZeroLiquidity", ErrZeroLiquidity, 8, ModuleName},
		{"ErrOverflow", ErrOverflow, 9, ModuleName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sdkErr *sdkerrors.Error
			if !errors.As(tt.err, &sdkErr) {
				t.Fatalf("Error is not an sdkerrors.Error")
			}

			if sdkErr.ABCICode() != tt.wantCode {
				t.Errorf("Expected code %d, got %d", tt.wantCode, sdkErr.ABCICode())
			}

			if sdkErr.Codespace() != tt.wantSpace {
				t.Errorf("Expected codespace %s, got %s", tt.wantSpace, sdkErr.Codespace())
			}

			if tt.err.Error() == "" {
				t.Error("Error message is empty")
			}
		})
	}
}

func TestErrorWrappingPreservesIdentity(t *testing.T) {
	wrapped := ErrInsufficientAmount.Wrapf("token A: have %d, need %d", 5, 10)

	if !errors.Is(wrapped, ErrInsufficientAmount) {
		t.Error("wrapped error lost its sentinel identity")
	}
	if errors.Is(wrapped, ErrZeroAmount) {
		t.Error("wrapped error matches the wrong sentinel")
	}
}
