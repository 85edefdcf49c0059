package models

import "time"

// IndicatorRow holds the bar values and every computed indicator for
// one position in the series. Values that need more history than the
// series provides are NaN, and consumers must treat NaN as "undefined",
// never as zero.
type IndicatorRow struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64

	SMA20  float64
	SMA50  float64
	SMA200 float64

	RSI float64

	MACD       float64
	MACDSignal float64
	MACDHist   float64

	BBUpper  float64
	BBMiddle float64
	BBLower  float64
	BBWidth  float64
	BBPct    float64

	ATR    float64
	ATRPct float64

	StochK float64
	StochD float64

	VolumeSMA   float64
	VolumeRatio float64

	ADX     float64
	PlusDI  float64
	MinusDI float64

	Change1D float64
}
