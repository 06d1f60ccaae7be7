package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// External data sources
	CountryAPIURL string
	RateAPIURL    string
	// SourceTimeout bounds each external fetch (single attempt, no retries).
	SourceTimeout time.Duration

	// CacheDir is where the refresh summary artifact is written.
	CacheDir string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("COUNTRY_API_URL", "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies")
	viper.SetDefault("RATE_API_URL", "https://open.er-api.com/v6/latest/USD")
	viper.SetDefault("SOURCE_TIMEOUT", "5s")
	viper.SetDefault("CACHE_DIR", "cache")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		CountryAPIURL: viper.GetString("COUNTRY_API_URL"),
		RateAPIURL:    viper.GetString("RATE_API_URL"),
		CacheDir:      viper.GetString("CACHE_DIR"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	timeoutStr := viper.GetString("SOURCE_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for SOURCE_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.SourceTimeout = timeout

	return cfg, nil
}
