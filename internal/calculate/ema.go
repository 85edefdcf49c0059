package calculate

// EMA returns the exponential moving average with smoothing factor
// alpha = 2/(period+1). The fold is seeded with the first value, so the
// output is defined from index 0.
func EMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(period+1)
	ema := values[0]
	out[0] = ema
	for i := 1; i < len(values); i++ {
		ema = alpha*values[i] + (1-alpha)*ema
		out[i] = ema
	}
	return out
}
