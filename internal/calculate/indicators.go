package calculate

import (
	"github.com/Alias1177/StockSignal/models"
)

// BuildIndicatorRows computes the full indicator battery over a
// chronological (oldest-first) series and returns one row per bar,
// newest first, so rows[0] always describes the latest bar. The input
// slice is only read; the trend SMAs (20/50/200) and the 20-bar volume
// average are fixed windows, everything else takes its period from cfg.
func BuildIndicatorRows(bars []models.Bar, cfg models.Config) []models.IndicatorRow {
	n := len(bars)
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	volumes := make([]float64, n)
	for i, b := range bars {
		highs[i] = b.High
		lows[i] = b.Low
		closes[i] = b.Close
		volumes[i] = b.Volume
	}

	sma20 := SMA(closes, 20)
	sma50 := SMA(closes, 50)
	sma200 := SMA(closes, 200)

	rsi := RSI(closes, cfg.RSI.Period)
	macd, macdSignal, macdHist := MACD(closes, cfg.MACD.Fast, cfg.MACD.Slow, cfg.MACD.Signal)
	bbUpper, bbMiddle, bbLower := Bollinger(closes, cfg.Bollinger.Period, cfg.Bollinger.StdDev)
	atr := ATR(highs, lows, closes, cfg.ATR.Period)
	stochK, stochD := Stochastic(highs, lows, closes, cfg.Stochastic.KPeriod, cfg.Stochastic.DPeriod)
	adx, plusDI, minusDI := ADX(highs, lows, closes, cfg.ADX.Period)

	volumeSMA := SMA(volumes, 20)
	change := PctChange(closes)

	rows := make([]models.IndicatorRow, n)
	for i, b := range bars {
		row := models.IndicatorRow{
			Timestamp: b.Timestamp,
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    b.Volume,

			SMA20:  sma20[i],
			SMA50:  sma50[i],
			SMA200: sma200[i],

			RSI: rsi[i],

			MACD:       macd[i],
			MACDSignal: macdSignal[i],
			MACDHist:   macdHist[i],

			BBUpper:  bbUpper[i],
			BBMiddle: bbMiddle[i],
			BBLower:  bbLower[i],
			BBWidth:  (bbUpper[i] - bbLower[i]) / bbMiddle[i],
			BBPct:    (b.Close - bbLower[i]) / (bbUpper[i] - bbLower[i]),

			ATR:    atr[i],
			ATRPct: atr[i] / b.Close * 100,

			StochK: stochK[i],
			StochD: stochD[i],

			VolumeSMA:   volumeSMA[i],
			VolumeRatio: b.Volume / volumeSMA[i],

			ADX:     adx[i],
			PlusDI:  plusDI[i],
			MinusDI: minusDI[i],

			Change1D: change[i],
		}
		rows[n-1-i] = row
	}
	return rows
}
