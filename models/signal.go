package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SignalType is the five-level directional signal. The integer values
// are the scores the aggregator sums, so the ordering StrongSell <
// Sell < Neutral < Buy < StrongBuy must not change.
type SignalType int

const (
	StrongSell SignalType = iota - 2
	Sell
	Neutral
	Buy
	StrongBuy
)

// Score returns the signed score of the signal (-2..+2).
func (s SignalType) Score() int {
	return int(s)
}

func (s SignalType) String() string {
	switch s {
	case StrongSell:
		return "STRONG_SELL"
	case Sell:
		return "SELL"
	case Buy:
		return "BUY"
	case StrongBuy:
		return "STRONG_BUY"
	default:
		return "NEUTRAL"
	}
}

// ParseSignalType converts a signal token such as "STRONG_BUY" back to
// its SignalType.
func ParseSignalType(s string) (SignalType, error) {
	switch s {
	case "STRONG_SELL":
		return StrongSell, nil
	case "SELL":
		return Sell, nil
	case "NEUTRAL":
		return Neutral, nil
	case "BUY":
		return Buy, nil
	case "STRONG_BUY":
		return StrongBuy, nil
	}
	return Neutral, fmt.Errorf("unknown signal type %q", s)
}

func (s SignalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SignalType) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	parsed, err := ParseSignalType(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SignalComponent is one indicator's contribution to the composite
// signal: its directional vote, the weight it carries in the fusion,
// the observed indicator value and a human-readable rationale.
type SignalComponent struct {
	Name      string     `json:"name"`
	Signal    SignalType `json:"signal"`
	Weight    float64    `json:"weight"`
	Value     float64    `json:"value"`
	Threshold string     `json:"threshold"`
	Rationale string     `json:"rationale"`
}

// TradeSignal is the composite recommendation for one instrument at one
// point in time. StopLoss, TakeProfit and RiskReward are nil when the
// composite signal is NEUTRAL or when ATR is undefined; they serialize
// as JSON null in that case.
type TradeSignal struct {
	Symbol     string            `json:"symbol"`
	Timestamp  time.Time         `json:"timestamp"`
	Signal     SignalType        `json:"signal"`
	Confidence float64           `json:"confidence"`
	Price      float64           `json:"price"`
	StopLoss   *float64          `json:"stop_loss"`
	TakeProfit *float64          `json:"take_profit"`
	RiskReward *float64          `json:"risk_reward"`
	Components []SignalComponent `json:"components"`
}
