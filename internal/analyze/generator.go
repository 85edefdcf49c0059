// Package analyze fuses the indicator battery into one explainable
// trade signal: seven independent rule engines vote on the latest
// indicator row, the votes combine through configurable weights, and
// volatility sets the stop-loss and take-profit levels.
package analyze

import (
	"fmt"
	"sort"

	"github.com/Alias1177/StockSignal/internal/calculate"
	"github.com/Alias1177/StockSignal/models"
)

// Generator runs the full analysis pipeline for one instrument at a
// time. It holds only the validated configuration, so a single
// Generator is safe for concurrent use across goroutines.
type Generator struct {
	cfg models.Config
}

// NewGenerator validates the configuration and returns a Generator.
func NewGenerator(cfg models.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Generator{cfg: cfg}, nil
}

// Config returns the configuration the Generator was built with.
func (g *Generator) Config() models.Config {
	return g.cfg
}

// Generate produces the composite trade signal for a bar series. The
// series may arrive in either chronological direction; it is copied and
// sorted internally, never mutated. An empty series returns
// ErrInsufficientData and a bar violating the OHLCV invariants returns
// an *InvalidBarError; every other data shortage only degrades
// individual components to NEUTRAL.
func (g *Generator) Generate(symbol string, bars []models.Bar) (*models.TradeSignal, error) {
	if err := models.ValidateSeries(bars); err != nil {
		return nil, err
	}

	series := make([]models.Bar, len(bars))
	copy(series, bars)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})

	rows := calculate.BuildIndicatorRows(series, g.cfg)
	latest := rows[0]
	var prev *models.IndicatorRow
	if len(rows) > 1 {
		prev = &rows[1]
	}

	components := []models.SignalComponent{
		analyzeRSI(latest, g.cfg),
		analyzeMACD(latest, prev, g.cfg),
		analyzeBollinger(latest, g.cfg),
		analyzeTrend(latest, g.cfg),
		analyzeVolume(latest, g.cfg),
		analyzeStochastic(latest, g.cfg),
		analyzeADX(latest, g.cfg),
	}

	weighted := weightedScore(components)
	composite := scoreToSignal(weighted)
	stopLoss, takeProfit, riskReward := riskLevels(composite, latest.Close, latest.ATR, g.cfg.Signals.Risk)

	return &models.TradeSignal{
		Symbol:     symbol,
		Timestamp:  latest.Timestamp,
		Signal:     composite,
		Confidence: confidence(components, weighted),
		Price:      latest.Close,
		StopLoss:   stopLoss,
		TakeProfit: takeProfit,
		RiskReward: riskReward,
		Components: components,
	}, nil
}
