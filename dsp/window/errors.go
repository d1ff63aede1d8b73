package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType indicates a window name that does not map to a Type.
	ErrUnknownType = errors.New("window: unknown type")

	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}

	return nil
}
