package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/Alias1177/StockSignal/models"
)

// Config holds the application-level configuration.
type Config struct {
	Symbol     string `env:"SYMBOL" envDefault:"AAPL"`
	DataFile   string `env:"DATA_FILE" envDefault:"data/bars.csv"`
	ConfigFile string `env:"CONFIG_FILE" envDefault:""`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config
	cfg.Symbol = getEnvWithDefault("SYMBOL", "AAPL")
	cfg.DataFile = getEnvWithDefault("DATA_FILE", "data/bars.csv")
	cfg.ConfigFile = os.Getenv("CONFIG_FILE")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	return &cfg, nil
}

// LoadEngine builds the engine configuration: defaults first, then an
// optional YAML file layered over them. A partial file overrides only
// the fields it names. An unreadable or malformed file logs a warning
// and falls back to the defaults; a file that produces an invalid
// parameter set is an error.
func LoadEngine(path string) (models.Config, error) {
	cfg := models.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Engine config not readable, using defaults")
		return models.DefaultConfig(), nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Engine config not parseable, using defaults")
		return models.DefaultConfig(), nil
	}

	if err := cfg.Validate(); err != nil {
		return models.Config{}, fmt.Errorf("engine config %s: %w", path, err)
	}
	return cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
