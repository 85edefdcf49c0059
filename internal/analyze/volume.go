package analyze

import (
	"fmt"
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// analyzeVolume votes on the volume ratio against the 20-bar average.
// Elevated volume amplifies whichever way the day moved; an undefined
// day change fails the >0 test and counts as the falling side.
func analyzeVolume(row models.IndicatorRow, cfg models.Config) models.SignalComponent {
	component := models.SignalComponent{
		Name:      "Volume",
		Weight:    cfg.Signals.Weights.Volume,
		Threshold: "1.5x average",
	}

	if math.IsNaN(row.VolumeRatio) {
		component.Signal = models.Neutral
		component.Value = 1.0
		component.Rationale = "insufficient data"
		return component
	}

	component.Value = row.VolumeRatio
	change := row.Change1D
	switch {
	case row.VolumeRatio > 2.0:
		if change > 0 {
			component.Signal = models.StrongBuy
			component.Rationale = fmt.Sprintf("volume surge (%.1fx) on rising price", row.VolumeRatio)
		} else {
			component.Signal = models.StrongSell
			component.Rationale = fmt.Sprintf("volume surge (%.1fx) on falling price", row.VolumeRatio)
		}
	case row.VolumeRatio > 1.5:
		if change > 0 {
			component.Signal = models.Buy
			component.Rationale = fmt.Sprintf("elevated volume (%.1fx) with price up", row.VolumeRatio)
		} else {
			component.Signal = models.Sell
			component.Rationale = fmt.Sprintf("elevated volume (%.1fx) with price down", row.VolumeRatio)
		}
	default:
		component.Signal = models.Neutral
		component.Rationale = fmt.Sprintf("normal volume (%.1fx average)", row.VolumeRatio)
	}
	return component
}
