package calculate

// RSI returns the relative strength index: 100 - 100/(1+RS) where RS is
// the ratio of average gain to average loss over the trailing period.
// The first position has no close-to-close change; its gain and loss
// both count as zero, so the output is defined from index period-1.
// IEEE division gives the edge cases for free: a zero average loss with
// positive gains makes RS infinite and RSI exactly 100, and a 0/0 ratio
// stays NaN (undefined).
func RSI(closes []float64, period int) []float64 {
	n := len(closes)
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	avgGain := SMA(gains, period)
	avgLoss := SMA(losses, period)

	out := nanSlice(n)
	for i := 0; i < n; i++ {
		rs := avgGain[i] / avgLoss[i]
		out[i] = 100 - 100/(1+rs)
	}
	return out
}
