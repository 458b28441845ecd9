package main

//
//  @title           MGIS Business Intelligence Dashboard API
//  @version         1.0
//  @description     JSON backend for the MGIS market dashboard: tracked stock prices and earnings-call transcripts proxied from API Ninjas.
//  @contact.name    API Support
//  @contact.url     https://github.com/mlombardo777/mgis-business-intelligence-dashboard
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        prices
//  @tag.description Aggregated watchlist stock prices
//
//  @tag.name        transcript
//  @tag.description Earnings-call transcripts
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/config"
	_ "github.com/mlombardo777/mgis-business-intelligence-dashboard/docs" // swagger docs
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/app"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., the provider HTTP client).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the dashboard backend.
//
// Flags:
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	logger.L().Info().
		Int("industries", len(config.AppConfig.Watchlist.Industries)).
		Int("companies", len(config.AppConfig.Watchlist.Flatten())).
		Bool("grouped", config.AppConfig.GroupByIndustry).
		Msg("starting API server")

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *port)
	gracefulShutdown(ctx, server, cleanup)
}
