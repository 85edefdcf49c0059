package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/StockSignal/internal/analyze"
	"github.com/Alias1177/StockSignal/internal/config"
	"github.com/Alias1177/StockSignal/internal/dataset"
	"github.com/Alias1177/StockSignal/models"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)
	log.Info().Msg("Starting Stock Signal Analyzer")

	// 3. Load engine parameters (optional YAML overrides)
	engineCfg, err := config.LoadEngine(cfg.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load engine configuration")
	}
	printConfig(cfg, engineCfg)

	// 4. Load the bar series
	dataFile := cfg.DataFile
	if len(os.Args) > 1 {
		dataFile = os.Args[1]
	}
	bars, err := dataset.NewLoader().Load(dataFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load bar series")
	}

	// 5. Generate the trade signal
	generator, err := analyze.NewGenerator(engineCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build signal generator")
	}
	signal, err := generator.Generate(cfg.Symbol, bars)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate signal")
	}

	// 6. Emit the signal as JSON on stdout
	out, err := json.MarshalIndent(signal, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode signal")
	}
	fmt.Println(string(out))

	log.Info().
		Str("symbol", signal.Symbol).
		Str("signal", signal.Signal.String()).
		Float64("confidence", signal.Confidence).
		Float64("price", signal.Price).
		Msg("Signal generated")
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	// Set log level from config
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printConfig outputs the current configuration
func printConfig(cfg *config.Config, engine models.Config) {
	log.Info().
		Str("Symbol", cfg.Symbol).
		Str("DataFile", cfg.DataFile).
		Str("ConfigFile", cfg.ConfigFile).
		Int("RSIPeriod", engine.RSI.Period).
		Int("MACDFastPeriod", engine.MACD.Fast).
		Int("MACDSlowPeriod", engine.MACD.Slow).
		Int("BBPeriod", engine.Bollinger.Period).
		Float64("BBStdDev", engine.Bollinger.StdDev).
		Int("ADXPeriod", engine.ADX.Period).
		Int("ATRPeriod", engine.ATR.Period).
		Msg("Configuration loaded")
}
