package analyze

import (
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// analyzeMACD votes on MACD momentum. A fresh crossover (the
// line/signal relation flipped since the previous row) upgrades the
// vote to STRONG_BUY or STRONG_SELL; without one, position relative to
// the signal line gives the plain BUY or SELL.
func analyzeMACD(row models.IndicatorRow, prev *models.IndicatorRow, cfg models.Config) models.SignalComponent {
	component := models.SignalComponent{
		Name:      "MACD",
		Weight:    cfg.Signals.Weights.MACD,
		Threshold: "crossover",
	}

	if math.IsNaN(row.MACD) || math.IsNaN(row.MACDSignal) {
		component.Signal = models.Neutral
		component.Value = 0
		component.Rationale = "insufficient data"
		return component
	}

	crossover := false
	if prev != nil && !math.IsNaN(prev.MACD) {
		prevAbove := prev.MACD > prev.MACDSignal
		currAbove := row.MACD > row.MACDSignal
		crossover = prevAbove != currAbove
	}

	component.Value = row.MACDHist
	switch {
	case row.MACD > row.MACDSignal && row.MACDHist > 0:
		if crossover {
			component.Signal = models.StrongBuy
			component.Rationale = "bullish crossover with positive momentum"
		} else {
			component.Signal = models.Buy
			component.Rationale = "MACD above signal line, positive momentum"
		}
	case row.MACD < row.MACDSignal && row.MACDHist < 0:
		if crossover {
			component.Signal = models.StrongSell
			component.Rationale = "bearish crossover with negative momentum"
		} else {
			component.Signal = models.Sell
			component.Rationale = "MACD below signal line, negative momentum"
		}
	default:
		component.Signal = models.Neutral
		component.Rationale = "mixed MACD signal"
	}
	return component
}
