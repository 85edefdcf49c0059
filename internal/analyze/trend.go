package analyze

import (
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// analyzeTrend votes on the moving-average stack. Each check adds +1
// when it holds and -1 when it fails: close above SMA20, close above
// SMA50, and, only when SMA200 exists, close above SMA200 and SMA50
// above SMA200. An undefined SMA200 shrinks the vote count rather than
// casting neutral votes, so short series top out at a score of +-2.
func analyzeTrend(row models.IndicatorRow, cfg models.Config) models.SignalComponent {
	component := models.SignalComponent{
		Name:      "Trend",
		Weight:    cfg.Signals.Weights.Trend,
		Threshold: "MA cross",
	}

	if math.IsNaN(row.SMA20) || math.IsNaN(row.SMA50) {
		component.Signal = models.Neutral
		component.Value = 0
		component.Rationale = "insufficient data"
		return component
	}

	bullish := 0
	bearish := 0

	if row.Close > row.SMA20 {
		bullish++
	} else {
		bearish++
	}
	if row.Close > row.SMA50 {
		bullish++
	} else {
		bearish++
	}
	if !math.IsNaN(row.SMA200) {
		if row.Close > row.SMA200 {
			bullish++
		} else {
			bearish++
		}
		if row.SMA50 > row.SMA200 {
			bullish++
		} else {
			bearish++
		}
	}

	score := bullish - bearish
	component.Value = float64(score)
	switch {
	case score >= 3:
		component.Signal = models.StrongBuy
		component.Rationale = "strong uptrend: price above all moving averages"
	case score >= 1:
		component.Signal = models.Buy
		component.Rationale = "uptrend: price above key moving averages"
	case score <= -3:
		component.Signal = models.StrongSell
		component.Rationale = "strong downtrend: price below all moving averages"
	case score <= -1:
		component.Signal = models.Sell
		component.Rationale = "downtrend: price below key moving averages"
	default:
		component.Signal = models.Neutral
		component.Rationale = "mixed trend signals"
	}
	return component
}
