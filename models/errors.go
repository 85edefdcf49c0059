package models

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when the price series is empty. Any
// non-empty valid series produces a signal, however degraded.
var ErrInsufficientData = errors.New("insufficient data: price series is empty")

// InvalidBarError reports a bar that violates the OHLCV invariants.
type InvalidBarError struct {
	Index  int
	Reason string
}

func (e *InvalidBarError) Error() string {
	return fmt.Sprintf("invalid bar at index %d: %s", e.Index, e.Reason)
}
