package math

import (
	"errors"
	"fmt"
)

// ErrSingularMatrix is reported by the strict inversion variants when the
// determinant is zero.
var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

// SliceLengthError reports a fixed-size construction from a wrongly sized
// slice. It carries both lengths so the caller can decide how to recover.
type SliceLengthError struct {
	Expected int
	Actual   int
}

func (e *SliceLengthError) Error() string {
	return fmt.Sprintf("expected a slice of length %d, got %d", e.Expected, e.Actual)
}

func checkSliceLength[T any](expected int, s []T) error {
	if len(s) != expected {
		return &SliceLengthError{Expected: expected, Actual: len(s)}
	}
	return nil
}
