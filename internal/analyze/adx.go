package analyze

import (
	"fmt"
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// analyzeADX votes on trend strength. Below 20 there is no trend to
// follow; between 20 and the configured threshold the DI comparison
// gives a tentative vote; above it the vote firms up, turning strong
// past an ADX of 40.
func analyzeADX(row models.IndicatorRow, cfg models.Config) models.SignalComponent {
	component := models.SignalComponent{
		Name:      "ADX",
		Weight:    cfg.Signals.Weights.ADX,
		Threshold: fmt.Sprintf("trend threshold %g", cfg.ADX.TrendThreshold),
	}

	if math.IsNaN(row.ADX) {
		component.Signal = models.Neutral
		component.Value = 20
		component.Rationale = "insufficient data"
		return component
	}

	component.Value = row.ADX
	switch {
	case row.ADX < 20:
		component.Signal = models.Neutral
		component.Rationale = fmt.Sprintf("no clear trend (ADX=%.1f)", row.ADX)
	case row.ADX < cfg.ADX.TrendThreshold:
		if row.PlusDI > row.MinusDI {
			component.Signal = models.Buy
			component.Rationale = fmt.Sprintf("uptrend forming (ADX=%.1f, +DI>-DI)", row.ADX)
		} else {
			component.Signal = models.Sell
			component.Rationale = fmt.Sprintf("downtrend forming (ADX=%.1f, -DI>+DI)", row.ADX)
		}
	default:
		if row.PlusDI > row.MinusDI {
			component.Signal = models.Buy
			if row.ADX > 40 {
				component.Signal = models.StrongBuy
			}
			component.Rationale = fmt.Sprintf("strong uptrend (ADX=%.1f, +DI=%.1f)", row.ADX, row.PlusDI)
		} else {
			component.Signal = models.Sell
			if row.ADX > 40 {
				component.Signal = models.StrongSell
			}
			component.Rationale = fmt.Sprintf("strong downtrend (ADX=%.1f, -DI=%.1f)", row.ADX, row.MinusDI)
		}
	}
	return component
}
