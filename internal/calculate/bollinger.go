package calculate

// Bollinger returns the upper, middle and lower Bollinger Bands: the
// middle band is SMA(period), the outer bands sit stdDev sample
// standard deviations away from it.
func Bollinger(closes []float64, period int, stdDev float64) (upper, middle, lower []float64) {
	middle = SMA(closes, period)
	sd := RollingStd(closes, period)

	upper = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range closes {
		upper[i] = middle[i] + sd[i]*stdDev
		lower[i] = middle[i] - sd[i]*stdDev
	}
	return upper, middle, lower
}
