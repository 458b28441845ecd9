package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: HTTP server settings, the upstream market-data provider, and the
// watchlist of tracked companies.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	API_NINJAS_KEY=secret
//	API_NINJAS_BASE_URL=https://api.api-ninjas.com
//	REQUEST_TIMEOUT_SEC=10
//	GROUP_BY_INDUSTRY=true
//	WATCHLIST_FILE=./watchlist.yaml
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Upstream stock-data provider settings
	// Watchlist is the static set of tracked companies, optionally grouped
	// by industry. It is configuration, not runtime input.
	Watchlist Watchlist
	// GroupByIndustry selects the grouped response shape for the price
	// endpoint. When false the watchlist is served as a flat list.
	GroupByIndustry bool
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ProviderConfig defines how the backend reaches the API Ninjas stock-data API.
//
// Fields:
//   - APIKey: secret credential sent in the X-Api-Key header. It may be empty
//     at startup; endpoints then answer with a configuration error. The value
//     is never logged and never echoed in responses.
//   - BaseURL: scheme and host of the provider (overridable for tests).
//   - RequestTimeoutSec: per-request timeout for outbound lookups.
type ProviderConfig struct {
	APIKey            string
	BaseURL           string
	RequestTimeoutSec int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all non-secret fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Loads the tracked-company watchlist (compiled-in default, or the YAML
//     file named by WATCHLIST_FILE).
//   - Calls validateConfig() to ensure structurally required fields are set.
//
// Note: API_NINJAS_KEY is deliberately not validated here. A missing
// credential is a per-request configuration error (HTTP 500), not a startup
// failure, so the dashboard can still serve health probes and a usable error
// to the frontend.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("API_NINJAS_BASE_URL", "https://api.api-ninjas.com")
	viper.SetDefault("REQUEST_TIMEOUT_SEC", 10)
	viper.SetDefault("GROUP_BY_INDUSTRY", true)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			APIKey:            viper.GetString("API_NINJAS_KEY"),
			BaseURL:           viper.GetString("API_NINJAS_BASE_URL"),
			RequestTimeoutSec: viper.GetInt("REQUEST_TIMEOUT_SEC"),
		},
		GroupByIndustry: viper.GetBool("GROUP_BY_INDUSTRY"),
	}

	// Watchlist: compiled-in default, optionally replaced by WATCHLIST_FILE
	wl, err := LoadWatchlist(viper.GetString("WATCHLIST_FILE"))
	if err != nil {
		log.Fatalf("Invalid watchlist configuration: %v\n", err)
	}
	AppConfig.Watchlist = wl

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
// The provider API key is intentionally excluded; see LoadConfig.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "API_NINJAS_BASE_URL")
	}
	if AppConfig.Provider.RequestTimeoutSec <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT_SEC")
	}
	if len(AppConfig.Watchlist.Industries) == 0 {
		missing = append(missing, "WATCHLIST_FILE (watchlist is empty)")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required configuration: %v\n", missing)
	}
}
