package calculate

import "math"

// Stochastic returns the stochastic oscillator: %K locates the close
// inside the trailing kPeriod high-low range, %D smooths %K with
// SMA(dPeriod). A zero-width range makes %K NaN for that position.
func Stochastic(highs, lows, closes []float64, kPeriod, dPeriod int) (k, d []float64) {
	n := len(closes)
	k = nanSlice(n)
	if kPeriod >= 1 && n >= kPeriod {
		for i := kPeriod - 1; i < n; i++ {
			hh := highs[i-kPeriod+1]
			ll := lows[i-kPeriod+1]
			for j := i - kPeriod + 2; j <= i; j++ {
				hh = math.Max(hh, highs[j])
				ll = math.Min(ll, lows[j])
			}
			k[i] = 100 * (closes[i] - ll) / (hh - ll)
		}
	}
	d = SMA(k, dPeriod)
	return k, d
}
