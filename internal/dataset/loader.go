// Package dataset reads bar series from local CSV and JSON files so
// the CLI can feed the signal engine without any network surface.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/StockSignal/models"
)

// Loader reads bar series files.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a new bar series loader
func NewLoader() *Loader {
	return &Loader{
		logger: log.With().Str("component", "dataset").Logger(),
	}
}

// Load reads a bar series from path, dispatching on the file
// extension. CSV files need a header with the columns timestamp (or
// date), open, high, low, close, volume; JSON files hold an array of
// bar objects with RFC3339 timestamps.
func (l *Loader) Load(path string) ([]models.Bar, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return l.loadCSV(path)
	case ".json":
		return l.loadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported data file %q: want .csv or .json", path)
	}
}

func (l *Loader) loadCSV(path string) ([]models.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var bars []models.Bar
	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++
		bar, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		bars = append(bars, bar)
	}

	l.logger.Info().Str("path", path).Int("bars", len(bars)).Msg("Loaded bar series")
	return bars, nil
}

func (l *Loader) loadJSON(path string) ([]models.Bar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}

	var bars []models.Bar
	if err := json.Unmarshal(data, &bars); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	l.logger.Info().Str("path", path).Int("bars", len(bars)).Msg("Loaded bar series")
	return bars, nil
}

// columnMap holds the position of each required column in the CSV
// header.
type columnMap struct {
	timestamp, open, high, low, close, volume int
}

func mapColumns(header []string) (columnMap, error) {
	columns := columnMap{timestamp: -1, open: -1, high: -1, low: -1, close: -1, volume: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "timestamp", "date", "datetime":
			columns.timestamp = i
		case "open":
			columns.open = i
		case "high":
			columns.high = i
		case "low":
			columns.low = i
		case "close":
			columns.close = i
		case "volume":
			columns.volume = i
		}
	}
	for name, idx := range map[string]int{
		"timestamp": columns.timestamp,
		"open":      columns.open,
		"high":      columns.high,
		"low":       columns.low,
		"close":     columns.close,
		"volume":    columns.volume,
	} {
		if idx < 0 {
			return columnMap{}, fmt.Errorf("csv header is missing column %q", name)
		}
	}
	return columns, nil
}

// timestampLayouts are tried in order when parsing CSV timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseRecord(record []string, columns columnMap) (models.Bar, error) {
	get := func(idx int) (string, error) {
		if idx >= len(record) {
			return "", fmt.Errorf("record has %d fields, want at least %d", len(record), idx+1)
		}
		return strings.TrimSpace(record[idx]), nil
	}

	raw, err := get(columns.timestamp)
	if err != nil {
		return models.Bar{}, err
	}
	var ts time.Time
	parsed := false
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			ts = t
			parsed = true
			break
		}
	}
	if !parsed {
		return models.Bar{}, fmt.Errorf("unparseable timestamp %q", raw)
	}

	values := make(map[string]float64, 5)
	for name, idx := range map[string]int{
		"open":   columns.open,
		"high":   columns.high,
		"low":    columns.low,
		"close":  columns.close,
		"volume": columns.volume,
	} {
		raw, err := get(idx)
		if err != nil {
			return models.Bar{}, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Bar{}, fmt.Errorf("unparseable %s %q", name, raw)
		}
		values[name] = v
	}

	return models.Bar{
		Timestamp: ts,
		Open:      values["open"],
		High:      values["high"],
		Low:       values["low"],
		Close:     values["close"],
		Volume:    values["volume"],
	}, nil
}
