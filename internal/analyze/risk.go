package analyze

import (
	"math"

	"github.com/Alias1177/StockSignal/models"
)

// riskLevels derives stop-loss and take-profit from volatility. A
// NEUTRAL composite carries no levels, and an undefined ATR leaves them
// nil rather than synthesizing levels from a made-up range.
func riskLevels(signal models.SignalType, price, atr float64, risk models.RiskConfig) (stopLoss, takeProfit, riskReward *float64) {
	if signal == models.Neutral || math.IsNaN(atr) {
		return nil, nil, nil
	}

	direction := 1.0
	if signal == models.Sell || signal == models.StrongSell {
		direction = -1.0
	}

	stop := price - direction*atr*risk.ATRMultiplier
	take := price + direction*atr*risk.ATRMultiplier*risk.RiskRewardTarget
	target := risk.RiskRewardTarget
	return &stop, &take, &target
}
