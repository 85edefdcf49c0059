package calculate

import "math"

// ADX returns the average directional index together with the +DI and
// -DI lines. Directional movement at the first position clamps to zero
// (no previous bar). The -DM clamp compares against the already-clamped
// +DM, so a tie between equal positive up and down moves counts as -DM.
// DI lines are 100 * SMA(DM)/SMA(TR); DX is NaN when both DI lines are
// zero, and ADX, a rolling mean of DX, is first defined at index
// 2*period-2.
func ADX(highs, lows, closes []float64, period int) (adx, plusDI, minusDI []float64) {
	n := len(highs)
	tr := TrueRange(highs, lows, closes)

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > plusDM[i] && down > 0 {
			minusDM[i] = down
		}
	}

	atr := SMA(tr, period)
	avgPlusDM := SMA(plusDM, period)
	avgMinusDM := SMA(minusDM, period)

	plusDI = make([]float64, n)
	minusDI = make([]float64, n)
	dx := make([]float64, n)
	for i := 0; i < n; i++ {
		plusDI[i] = 100 * avgPlusDM[i] / atr[i]
		minusDI[i] = 100 * avgMinusDM[i] / atr[i]
		dx[i] = 100 * math.Abs(plusDI[i]-minusDI[i]) / (plusDI[i] + minusDI[i])
	}

	adx = SMA(dx, period)
	return adx, plusDI, minusDI
}
