package app

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/config"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/api"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/marketdata"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/service"
)

// clientCtor is an indirection for creating the provider client; tests can
// override this with a double.
var clientCtor = func(cfg config.ProviderConfig) marketdata.Client {
	return marketdata.New(cfg)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the API Ninjas provider client from configuration.
//   - Initializes the service layer (price aggregation, transcript fetch).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (HTTP client).
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream provider client (indirection for unit testing)
	client := clientCtor(cfg.Provider)

	// Initialize service layer (business logic)
	prices := service.NewPriceBoardService(client, cfg.Watchlist)
	transcripts := service.NewTranscriptService(client)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(prices, transcripts, cfg.GroupByIndustry)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes. Readiness degrades while the
	// provider credential is absent.
	healthHandler := api.NewHealthHandler(func() error {
		if !client.Configured() {
			return errors.New("provider credential is not configured")
		}
		return nil
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = client.Close()
	}

	return router, cleanup, nil
}
