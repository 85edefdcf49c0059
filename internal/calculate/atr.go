package calculate

import "math"

// TrueRange returns the true range for each bar: the greatest of
// high-low, |high-prevClose| and |low-prevClose|. The first bar has no
// previous close, so its true range is just high-low.
func TrueRange(highs, lows, closes []float64) []float64 {
	n := len(highs)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	out[0] = highs[0] - lows[0]
	for i := 1; i < n; i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		out[i] = math.Max(hl, math.Max(hc, lc))
	}
	return out
}

// ATR returns the average true range: a rolling mean of TrueRange.
func ATR(highs, lows, closes []float64, period int) []float64 {
	return SMA(TrueRange(highs, lows, closes), period)
}
