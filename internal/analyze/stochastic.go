package analyze

import (
	"fmt"
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// analyzeStochastic votes on %K/%D. Strong votes need both lines beyond
// the configured extremes; the milder votes fire on %K alone at the
// fixed 30/70 near-levels.
func analyzeStochastic(row models.IndicatorRow, cfg models.Config) models.SignalComponent {
	oversold := cfg.Stochastic.Oversold
	overbought := cfg.Stochastic.Overbought
	component := models.SignalComponent{
		Name:      "Stochastic",
		Weight:    cfg.Signals.Weights.Stochastic,
		Threshold: fmt.Sprintf("%g/%g", oversold, overbought),
	}

	if math.IsNaN(row.StochK) || math.IsNaN(row.StochD) {
		component.Signal = models.Neutral
		component.Value = 50
		component.Rationale = "insufficient data"
		return component
	}

	component.Value = row.StochK
	switch {
	case row.StochK < oversold && row.StochD < oversold:
		component.Signal = models.StrongBuy
		component.Rationale = fmt.Sprintf("oversold (%%K=%.1f, %%D=%.1f)", row.StochK, row.StochD)
	case row.StochK < 30:
		component.Signal = models.Buy
		component.Rationale = fmt.Sprintf("approaching oversold (%%K=%.1f)", row.StochK)
	case row.StochK > overbought && row.StochD > overbought:
		component.Signal = models.StrongSell
		component.Rationale = fmt.Sprintf("overbought (%%K=%.1f, %%D=%.1f)", row.StochK, row.StochD)
	case row.StochK > 70:
		component.Signal = models.Sell
		component.Rationale = fmt.Sprintf("approaching overbought (%%K=%.1f)", row.StochK)
	default:
		component.Signal = models.Neutral
		component.Rationale = fmt.Sprintf("neutral zone (%%K=%.1f)", row.StochK)
	}
	return component
}
