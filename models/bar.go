package models

import (
	"fmt"
	"math"
	"time"
)

// Bar represents a single OHLCV observation for one instrument.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Validate checks the OHLCV invariants:
// high >= max(open, close), min(open, close) >= low, low >= 0, volume >= 0.
func (b Bar) Validate() error {
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite value")
		}
	}
	if b.Low < 0 {
		return fmt.Errorf("negative low %.4f", b.Low)
	}
	if b.Volume < 0 {
		return fmt.Errorf("negative volume %.4f", b.Volume)
	}
	if b.High < b.Open {
		return fmt.Errorf("high %.4f below open %.4f", b.High, b.Open)
	}
	if b.High < b.Close {
		return fmt.Errorf("high %.4f below close %.4f", b.High, b.Close)
	}
	if b.Low > b.Open {
		return fmt.Errorf("low %.4f above open %.4f", b.Low, b.Open)
	}
	if b.Low > b.Close {
		return fmt.Errorf("low %.4f above close %.4f", b.Low, b.Close)
	}
	return nil
}

// ValidateSeries checks every bar of a series. It returns
// ErrInsufficientData for an empty series and an *InvalidBarError for
// the first bar that violates the OHLCV invariants. Bad data is
// rejected, never silently corrected.
func ValidateSeries(bars []Bar) error {
	if len(bars) == 0 {
		return ErrInsufficientData
	}
	for i, b := range bars {
		if err := b.Validate(); err != nil {
			return &InvalidBarError{Index: i, Reason: err.Error()}
		}
	}
	return nil
}
