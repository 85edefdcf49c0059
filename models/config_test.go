package models

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"zero value rejected", func(c *Config) { *c = Config{} }, "rsi.period"},
		{"fast period must stay below slow", func(c *Config) { c.MACD.Fast = 26 }, "macd.fast"},
		{"zero stddev", func(c *Config) { c.Bollinger.StdDev = 0 }, "bollinger.std_dev"},
		{"inverted rsi bounds", func(c *Config) { c.RSI.Oversold = 80 }, "rsi.oversold"},
		{"inverted stochastic bounds", func(c *Config) { c.Stochastic.Overbought = 10 }, "stochastic.oversold"},
		{"negative weight", func(c *Config) { c.Signals.Weights.Volume = -0.5 }, "signals.weights.volume"},
		{"all weights zero", func(c *Config) { c.Signals.Weights = Weights{} }, "positive total"},
		{"zero atr multiplier", func(c *Config) { c.Signals.Risk.ATRMultiplier = 0 }, "atr_multiplier"},
		{"zero risk reward", func(c *Config) { c.Signals.Risk.RiskRewardTarget = 0 }, "risk_reward_target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
