package main

//
//  @title           amlich API
//  @version         1.0
//  @description     Vietnamese lunisolar calendar conversion service.
//  @termsOfService  https://github.com/vnlunar/amlich
//  @contact.name    API Support
//  @contact.url     https://github.com/vnlunar/amlich
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        convert
//  @tag.description Solar/lunar date conversion endpoints
//
//  @tag.name        almanac
//  @tag.description Day details, Can Chi names and solar terms
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

	"github.com/vnlunar/amlich/config"
	_ "github.com/vnlunar/amlich/docs" // swagger docs
	"github.com/vnlunar/amlich/internal/app"
	"github.com/vnlunar/amlich/internal/logger"
	"github.com/vnlunar/amlich/internal/validate"
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
		WriteTimeout:      30 * time.Second,
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
//   - cleanup (func()): Cleanup callback to release resources.
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

// main is the entry point of the amlich application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API exposing the calendar endpoints.
//   - validate: Sweeps the year-code table against the astronomical
//     algorithm over a range of years and exits non-zero on mismatch.
//
// Flags:
//   - --mode:     Execution mode ("api" or "validate"). Default: "api".
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --from:     First solar year to validate. Default: 1800.
//   - --to:       Last solar year to validate. Default: 2099.
//   - --parallel: How many years to validate concurrently (0=auto up to CPU).
//   - --tz:       Timezone offset for the astronomical tier. Defaults to config (TIMEZONE_OFFSET).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or validate")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	from := flag.Int("from", 1800, "First solar year to validate")
	to := flag.Int("to", 2099, "Last solar year to validate")
	parallel := flag.Int("parallel", 0, "How many years to validate concurrently (0=auto)")
	tz := flag.Float64("tz", config.AppConfig.Calendar.Timezone, "Timezone offset in hours")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "validate":
		// Validation mode: compare the two conversion tiers day by day
		logger.L().Info().Msg("running validation")

		if err := validate.Run(ctx, *from, *to, *parallel, *tz); err != nil {
			logger.L().Fatal().Err(err).Msg("validation failed")
		}
		logger.L().Info().Msg("validation completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
