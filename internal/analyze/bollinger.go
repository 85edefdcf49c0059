package analyze

import (
	"fmt"
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// analyzeBollinger votes on %B, the close's position inside the bands.
// %B runs below 0 or above 1 when price breaches a band, which is where
// the strong votes live.
func analyzeBollinger(row models.IndicatorRow, cfg models.Config) models.SignalComponent {
	component := models.SignalComponent{
		Name:      "Bollinger",
		Weight:    cfg.Signals.Weights.Bollinger,
		Threshold: "0.0/1.0",
	}

	if math.IsNaN(row.BBPct) {
		component.Signal = models.Neutral
		component.Value = 0.5
		component.Rationale = "insufficient data"
		return component
	}

	component.Value = row.BBPct
	switch {
	case row.BBPct < 0:
		component.Signal = models.StrongBuy
		component.Rationale = fmt.Sprintf("price below lower band (%.2f < %.2f)", row.Close, row.BBLower)
	case row.BBPct < 0.2:
		component.Signal = models.Buy
		component.Rationale = fmt.Sprintf("near lower band (%%B = %.2f)", row.BBPct)
	case row.BBPct > 1:
		component.Signal = models.StrongSell
		component.Rationale = fmt.Sprintf("price above upper band (%.2f > %.2f)", row.Close, row.BBUpper)
	case row.BBPct > 0.8:
		component.Signal = models.Sell
		component.Rationale = fmt.Sprintf("near upper band (%%B = %.2f)", row.BBPct)
	default:
		component.Signal = models.Neutral
		component.Rationale = fmt.Sprintf("inside the bands (%%B = %.2f)", row.BBPct)
	}
	return component
}
