package calculate

// MACD returns the MACD line (fast EMA minus slow EMA), its signal line
// (EMA of the MACD line) and the histogram (line minus signal). Because
// the EMAs are seeded from the first value, all three are defined from
// index 0.
func MACD(closes []float64, fast, slow, signal int) (line, signalLine, histogram []float64) {
	fastEMA := EMA(closes, fast)
	slowEMA := EMA(closes, slow)

	line = make([]float64, len(closes))
	for i := range closes {
		line[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine = EMA(line, signal)

	histogram = make([]float64, len(closes))
	for i := range closes {
		histogram[i] = line[i] - signalLine[i]
	}
	return line, signalLine, histogram
}
