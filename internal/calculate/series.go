// Package calculate implements the technical indicators behind the
// signal engine as pure functions over chronological (oldest-first)
// value slices. Every function returns one output per input position;
// positions that need more history than the series provides are NaN,
// and a NaN anywhere in a rolling window makes that window's output
// NaN. Callers must treat NaN as "undefined", never as zero.
package calculate

import "math"

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// SMA returns the simple moving average over a trailing window.
func SMA(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period < 1 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(period)
	}
	return out
}

// RollingStd returns the sample standard deviation (n-1 divisor) over a
// trailing window.
func RollingStd(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period < 2 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		mean := sum / float64(period)
		var variance float64
		for j := i - period + 1; j <= i; j++ {
			d := values[j] - mean
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(period-1))
	}
	return out
}

// PctChange returns the percentage change from the previous value,
// scaled to percent. The first position has no predecessor and is NaN.
func PctChange(values []float64) []float64 {
	out := nanSlice(len(values))
	for i := 1; i < len(values); i++ {
		out[i] = (values[i] - values[i-1]) / values[i-1] * 100
	}
	return out
}
