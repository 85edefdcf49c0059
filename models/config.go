package models

import "fmt"

// Config holds every tunable parameter of the signal engine: indicator
// periods, analyzer thresholds, component weights and risk multipliers.
// Zero value is not usable; start from DefaultConfig and override the
// fields you need.
type Config struct {
	RSI        RSIConfig        `yaml:"rsi"`
	MACD       MACDConfig       `yaml:"macd"`
	Bollinger  BollingerConfig  `yaml:"bollinger"`
	Stochastic StochasticConfig `yaml:"stochastic"`
	ATR        ATRConfig        `yaml:"atr"`
	ADX        ADXConfig        `yaml:"adx"`
	Signals    SignalsConfig    `yaml:"signals"`
}

type RSIConfig struct {
	Period     int     `yaml:"period"`
	Oversold   float64 `yaml:"oversold"`
	Overbought float64 `yaml:"overbought"`
}

type MACDConfig struct {
	Fast   int `yaml:"fast"`
	Slow   int `yaml:"slow"`
	Signal int `yaml:"signal"`
}

type BollingerConfig struct {
	Period int     `yaml:"period"`
	StdDev float64 `yaml:"std_dev"`
}

type StochasticConfig struct {
	KPeriod    int     `yaml:"k_period"`
	DPeriod    int     `yaml:"d_period"`
	Oversold   float64 `yaml:"oversold"`
	Overbought float64 `yaml:"overbought"`
}

type ATRConfig struct {
	Period int `yaml:"period"`
}

type ADXConfig struct {
	Period         int     `yaml:"period"`
	TrendThreshold float64 `yaml:"trend_threshold"`
}

type SignalsConfig struct {
	Weights Weights    `yaml:"weights"`
	Risk    RiskConfig `yaml:"risk"`
}

// Weights are the per-component weights used by the aggregator. They
// must be non-negative and sum to a positive total.
type Weights struct {
	RSI        float64 `yaml:"rsi"`
	MACD       float64 `yaml:"macd"`
	Bollinger  float64 `yaml:"bollinger"`
	Trend      float64 `yaml:"trend"`
	Volume     float64 `yaml:"volume"`
	Stochastic float64 `yaml:"stochastic"`
	ADX        float64 `yaml:"adx"`
}

type RiskConfig struct {
	ATRMultiplier    float64 `yaml:"atr_multiplier"`
	RiskRewardTarget float64 `yaml:"risk_reward_target"`
}

// DefaultConfig returns the documented default parameters.
func DefaultConfig() Config {
	return Config{
		RSI:        RSIConfig{Period: 14, Oversold: 30, Overbought: 70},
		MACD:       MACDConfig{Fast: 12, Slow: 26, Signal: 9},
		Bollinger:  BollingerConfig{Period: 20, StdDev: 2.0},
		Stochastic: StochasticConfig{KPeriod: 14, DPeriod: 3, Oversold: 20, Overbought: 80},
		ATR:        ATRConfig{Period: 14},
		ADX:        ADXConfig{Period: 14, TrendThreshold: 25},
		Signals: SignalsConfig{
			Weights: Weights{
				RSI:        1.0,
				MACD:       1.0,
				Bollinger:  1.0,
				Trend:      1.0,
				Volume:     0.5,
				Stochastic: 0.5,
				ADX:        0.5,
			},
			Risk: RiskConfig{ATRMultiplier: 2.0, RiskRewardTarget: 2.0},
		},
	}
}

// Validate checks that the configuration can drive an analysis.
func (c Config) Validate() error {
	periods := []struct {
		name  string
		value int
	}{
		{"rsi.period", c.RSI.Period},
		{"macd.fast", c.MACD.Fast},
		{"macd.slow", c.MACD.Slow},
		{"macd.signal", c.MACD.Signal},
		{"bollinger.period", c.Bollinger.Period},
		{"stochastic.k_period", c.Stochastic.KPeriod},
		{"stochastic.d_period", c.Stochastic.DPeriod},
		{"atr.period", c.ATR.Period},
		{"adx.period", c.ADX.Period},
	}
	for _, p := range periods {
		if p.value < 1 {
			return fmt.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}
	if c.MACD.Fast >= c.MACD.Slow {
		return fmt.Errorf("macd.fast (%d) must be below macd.slow (%d)", c.MACD.Fast, c.MACD.Slow)
	}
	if c.Bollinger.StdDev <= 0 {
		return fmt.Errorf("bollinger.std_dev must be positive, got %g", c.Bollinger.StdDev)
	}
	if c.RSI.Oversold >= c.RSI.Overbought {
		return fmt.Errorf("rsi.oversold (%g) must be below rsi.overbought (%g)", c.RSI.Oversold, c.RSI.Overbought)
	}
	if c.Stochastic.Oversold >= c.Stochastic.Overbought {
		return fmt.Errorf("stochastic.oversold (%g) must be below stochastic.overbought (%g)",
			c.Stochastic.Oversold, c.Stochastic.Overbought)
	}
	w := c.Signals.Weights
	var total float64
	for _, pair := range []struct {
		name  string
		value float64
	}{
		{"rsi", w.RSI},
		{"macd", w.MACD},
		{"bollinger", w.Bollinger},
		{"trend", w.Trend},
		{"volume", w.Volume},
		{"stochastic", w.Stochastic},
		{"adx", w.ADX},
	} {
		if pair.value < 0 {
			return fmt.Errorf("signals.weights.%s must not be negative, got %g", pair.name, pair.value)
		}
		total += pair.value
	}
	if total <= 0 {
		return fmt.Errorf("signals.weights must sum to a positive total")
	}
	if c.Signals.Risk.ATRMultiplier <= 0 {
		return fmt.Errorf("signals.risk.atr_multiplier must be positive, got %g", c.Signals.Risk.ATRMultiplier)
	}
	if c.Signals.Risk.RiskRewardTarget <= 0 {
		return fmt.Errorf("signals.risk.risk_reward_target must be positive, got %g", c.Signals.Risk.RiskRewardTarget)
	}
	return nil
}
