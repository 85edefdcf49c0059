package calculate

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/Alias1177/StockSignal/models"
)

func almostEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) < 1e-9
}

func checkSeries(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s returned %d values, want %d", name, len(got), len(want))
	}
	for i := range got {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestSMA(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name   string
		values []float64
		period int
		want   []float64
	}{
		{
			name:   "window of three",
			values: []float64{1, 2, 3, 4, 5},
			period: 3,
			want:   []float64{nan, nan, 2, 3, 4},
		},
		{
			name:   "period longer than series",
			values: []float64{1, 2},
			period: 3,
			want:   []float64{nan, nan},
		},
		{
			name:   "NaN poisons every window containing it",
			values: []float64{1, nan, 3, 4, 5},
			period: 3,
			want:   []float64{nan, nan, nan, nan, 4},
		},
		{
			name:   "period one copies the series",
			values: []float64{2, 4},
			period: 1,
			want:   []float64{2, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSeries(t, "SMA()", SMA(tt.values, tt.period), tt.want)
		})
	}
}

func TestRollingStd(t *testing.T) {
	nan := math.NaN()
	got := RollingStd([]float64{1, 2, 3, 4}, 3)
	checkSeries(t, "RollingStd()", got, []float64{nan, nan, 1, 1})

	short := RollingStd([]float64{1, 2, 3}, 1)
	checkSeries(t, "RollingStd(period=1)", short, []float64{nan, nan, nan})
}

func TestEMA(t *testing.T) {
	got := EMA([]float64{2, 4, 6}, 2)
	checkSeries(t, "EMA()", got, []float64{2, 10.0 / 3.0, 46.0 / 9.0})

	if out := EMA(nil, 3); len(out) != 0 {
		t.Errorf("EMA(nil) returned %d values, want 0", len(out))
	}
}

func TestPctChange(t *testing.T) {
	got := PctChange([]float64{100, 110, 99})
	checkSeries(t, "PctChange()", got, []float64{math.NaN(), 10, -10})
}

func TestRSI(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name   string
		closes []float64
		period int
		want   []float64
	}{
		{
			name:   "uninterrupted rise saturates at 100",
			closes: []float64{1, 2, 3, 4, 5},
			period: 3,
			want:   []float64{nan, nan, 100, 100, 100},
		},
		{
			name:   "flat series has no relative strength",
			closes: []float64{5, 5, 5, 5},
			period: 3,
			want:   []float64{nan, nan, nan, nan},
		},
		{
			name:   "mixed gains and losses",
			closes: []float64{10, 11, 10, 12},
			period: 3,
			want:   []float64{nan, nan, 50, 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSeries(t, "RSI()", RSI(tt.closes, tt.period), tt.want)
		})
	}
}

func TestMACD(t *testing.T) {
	line, signal, hist := MACD([]float64{2, 4}, 1, 2, 2)
	checkSeries(t, "MACD() line", line, []float64{0, 2.0 / 3.0})
	checkSeries(t, "MACD() signal", signal, []float64{0, 4.0 / 9.0})
	checkSeries(t, "MACD() histogram", hist, []float64{0, 2.0 / 9.0})
}

func TestBollinger(t *testing.T) {
	nan := math.NaN()
	upper, middle, lower := Bollinger([]float64{1, 2, 3, 4}, 3, 2)
	checkSeries(t, "Bollinger() upper", upper, []float64{nan, nan, 4, 5})
	checkSeries(t, "Bollinger() middle", middle, []float64{nan, nan, 2, 3})
	checkSeries(t, "Bollinger() lower", lower, []float64{nan, nan, 0, 1})
}

func TestTrueRange(t *testing.T) {
	tests := []struct {
		name                string
		highs, lows, closes []float64
		want                []float64
	}{
		{
			name:  "first bar uses its own range",
			highs: []float64{10, 12}, lows: []float64{8, 9}, closes: []float64{9, 11},
			want: []float64{2, 3},
		},
		{
			name:  "gap from previous close dominates",
			highs: []float64{10, 20}, lows: []float64{8, 18}, closes: []float64{9, 19},
			want: []float64{2, 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSeries(t, "TrueRange()", TrueRange(tt.highs, tt.lows, tt.closes), tt.want)
		})
	}
}

func TestATR(t *testing.T) {
	got := ATR([]float64{10, 12}, []float64{8, 9}, []float64{9, 11}, 2)
	checkSeries(t, "ATR()", got, []float64{math.NaN(), 2.5})
}

func TestStochastic(t *testing.T) {
	nan := math.NaN()
	k, d := Stochastic(
		[]float64{10, 10, 10, 10},
		[]float64{0, 0, 0, 0},
		[]float64{5, 5, 8, 2},
		3, 2,
	)
	checkSeries(t, "Stochastic() %K", k, []float64{nan, nan, 80, 20})
	checkSeries(t, "Stochastic() %D", d, []float64{nan, nan, nan, 50})

	k, d = Stochastic(
		[]float64{5, 5, 5},
		[]float64{5, 5, 5},
		[]float64{5, 5, 5},
		3, 2,
	)
	checkSeries(t, "Stochastic() zero range %K", k, []float64{nan, nan, nan})
	checkSeries(t, "Stochastic() zero range %D", d, []float64{nan, nan, nan})
}

func TestADX(t *testing.T) {
	nan := math.NaN()

	t.Run("steady rise", func(t *testing.T) {
		adx, plusDI, minusDI := ADX(
			[]float64{1, 2, 3, 4},
			[]float64{0.5, 1.5, 2.5, 3.5},
			[]float64{0.8, 1.8, 2.8, 3.8},
			2,
		)
		checkSeries(t, "ADX()", adx, []float64{nan, nan, 100, 100})
		checkSeries(t, "ADX() +DI", plusDI, []float64{nan, 100 * 0.5 / 0.85, 100 / 1.2, 100 / 1.2})
		checkSeries(t, "ADX() -DI", minusDI, []float64{nan, 0, 0, 0})
	})

	t.Run("equal expansion counts as downward movement", func(t *testing.T) {
		// high rises by 2 while low falls by 2; the clamp resolves the
		// tie to -DM
		adx, plusDI, minusDI := ADX(
			[]float64{10, 12},
			[]float64{10, 8},
			[]float64{10, 10},
			1,
		)
		if !almostEqual(plusDI[1], 0) {
			t.Errorf("ADX() +DI[1] = %v, want 0", plusDI[1])
		}
		if !almostEqual(minusDI[1], 50) {
			t.Errorf("ADX() -DI[1] = %v, want 50", minusDI[1])
		}
		if !almostEqual(adx[1], 100) {
			t.Errorf("ADX()[1] = %v, want 100", adx[1])
		}
	})
}

func testBars(closes []float64) []models.Bar {
	base := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    10,
		}
	}
	return bars
}

func TestBuildIndicatorRows(t *testing.T) {
	t.Run("rows come back newest first", func(t *testing.T) {
		bars := testBars([]float64{1, 2, 3})
		rows := BuildIndicatorRows(bars, models.DefaultConfig())
		if len(rows) != 3 {
			t.Fatalf("BuildIndicatorRows() returned %d rows, want 3", len(rows))
		}
		if !rows[0].Timestamp.Equal(bars[2].Timestamp) {
			t.Errorf("rows[0].Timestamp = %v, want %v", rows[0].Timestamp, bars[2].Timestamp)
		}
		if rows[2].Close != bars[0].Close {
			t.Errorf("rows[2].Close = %v, want %v", rows[2].Close, bars[0].Close)
		}
	})

	t.Run("derived ratios on the latest row", func(t *testing.T) {
		cfg := models.DefaultConfig()
		cfg.RSI.Period = 2
		cfg.Bollinger.Period = 3
		cfg.ATR.Period = 2

		rows := BuildIndicatorRows(testBars([]float64{1, 2, 3, 4}), cfg)
		latest := rows[0]

		checks := []struct {
			name string
			got  float64
			want float64
		}{
			{"BBUpper", latest.BBUpper, 5},
			{"BBMiddle", latest.BBMiddle, 3},
			{"BBLower", latest.BBLower, 1},
			{"BBWidth", latest.BBWidth, 4.0 / 3.0},
			{"BBPct", latest.BBPct, 0.75},
			{"ATR", latest.ATR, 1},
			{"ATRPct", latest.ATRPct, 25},
			{"RSI", latest.RSI, 100},
			{"Change1D", latest.Change1D, 100.0 / 3.0},
		}
		for _, c := range checks {
			if !almostEqual(c.got, c.want) {
				t.Errorf("latest.%s = %v, want %v", c.name, c.got, c.want)
			}
		}
		if !math.IsNaN(latest.SMA20) {
			t.Errorf("latest.SMA20 = %v, want NaN on a 4-bar series", latest.SMA20)
		}
		if !math.IsNaN(latest.VolumeRatio) {
			t.Errorf("latest.VolumeRatio = %v, want NaN on a 4-bar series", latest.VolumeRatio)
		}
	})

	t.Run("short series degrades to NaN, not zero", func(t *testing.T) {
		rows := BuildIndicatorRows(testBars([]float64{1, 2, 3}), models.DefaultConfig())
		latest := rows[0]
		if !math.IsNaN(latest.RSI) {
			t.Errorf("latest.RSI = %v, want NaN", latest.RSI)
		}
		if !math.IsNaN(latest.StochD) {
			t.Errorf("latest.StochD = %v, want NaN", latest.StochD)
		}
		if math.IsNaN(latest.MACD) {
			t.Error("latest.MACD is NaN, want a defined value from the seeded EMAs")
		}
	})

	t.Run("does not touch the input slice", func(t *testing.T) {
		bars := testBars([]float64{3, 1, 2})
		snapshot := make([]models.Bar, len(bars))
		copy(snapshot, bars)

		BuildIndicatorRows(bars, models.DefaultConfig())
		if !reflect.DeepEqual(bars, snapshot) {
			t.Error("BuildIndicatorRows() modified the input bars")
		}
	})
}
