package analyze

import (
	"fmt"
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// analyzeRSI votes on the relative strength index. The oversold and
// overbought bounds are exclusive, so an RSI sitting exactly on the
// oversold level classifies as the milder BUY, not STRONG_BUY.
func analyzeRSI(row models.IndicatorRow, cfg models.Config) models.SignalComponent {
	oversold := cfg.RSI.Oversold
	overbought := cfg.RSI.Overbought
	component := models.SignalComponent{
		Name:      "RSI",
		Weight:    cfg.Signals.Weights.RSI,
		Threshold: fmt.Sprintf("%g/%g", oversold, overbought),
	}

	if math.IsNaN(row.RSI) {
		component.Signal = models.Neutral
		component.Value = 50
		component.Rationale = "insufficient data"
		return component
	}

	component.Value = row.RSI
	switch {
	case row.RSI < oversold:
		component.Signal = models.StrongBuy
		component.Rationale = fmt.Sprintf("oversold (%.1f < %g)", row.RSI, oversold)
	case row.RSI < 40:
		component.Signal = models.Buy
		component.Rationale = fmt.Sprintf("approaching oversold (%.1f)", row.RSI)
	case row.RSI > overbought:
		component.Signal = models.StrongSell
		component.Rationale = fmt.Sprintf("overbought (%.1f > %g)", row.RSI, overbought)
	case row.RSI > 60:
		component.Signal = models.Sell
		component.Rationale = fmt.Sprintf("approaching overbought (%.1f)", row.RSI)
	default:
		component.Signal = models.Neutral
		component.Rationale = fmt.Sprintf("neutral zone (%.1f)", row.RSI)
	}
	return component
}
