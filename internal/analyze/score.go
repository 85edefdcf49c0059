package analyze

import (
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// weightedScore fuses the component votes into one score in [-2, 2].
// The weight total is validated positive before any analysis runs.
func weightedScore(components []models.SignalComponent) float64 {
	var sum, total float64
	for _, c := range components {
		sum += float64(c.Signal.Score()) * c.Weight
		total += c.Weight
	}
	return sum / total
}

// scoreToSignal maps a score back onto the five signal levels with the
// same 0.5/1.5 boundaries the per-component scores use.
func scoreToSignal(score float64) models.SignalType {
	switch {
	case score >= 1.5:
		return models.StrongBuy
	case score >= 0.5:
		return models.Buy
	case score <= -1.5:
		return models.StrongSell
	case score <= -0.5:
		return models.Sell
	default:
		return models.Neutral
	}
}

// confidence blends how much the components agree with how far the
// fused score sits from neutral, on a 0-100 scale. Agreement comes from
// the population standard deviation of the signed votes.
func confidence(components []models.SignalComponent, weighted float64) float64 {
	mean := 0.0
	for _, c := range components {
		mean += float64(c.Signal.Score())
	}
	mean /= float64(len(components))

	variance := 0.0
	for _, c := range components {
		d := float64(c.Signal.Score()) - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(components)))

	agreement := clamp(1-std/2, 0, 1)
	strength := math.Abs(weighted) / 2
	return clamp((agreement*0.5+strength*0.5)*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
