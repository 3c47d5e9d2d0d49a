package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/vnlunar/amlich/config"
	"github.com/vnlunar/amlich/internal/api"
	"github.com/vnlunar/amlich/internal/calendar"
	"github.com/vnlunar/amlich/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Runs the conversion engine self-check once at startup.
//   - Creates the almanac service with the configured timezone.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Fail fast if the engine cannot convert a known date
	if err := engineCheck(cfg.Calendar.Timezone); err != nil {
		return nil, nil, fmt.Errorf("engine self-check failed: %w", err)
	}

	// Initialize service layer (business logic)
	svc := service.NewAlmanacService(cfg.Calendar.Timezone)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		return engineCheck(cfg.Calendar.Timezone)
	})
	healthHandler.Register(router)

	// No external resources to release; kept for symmetry with main
	cleanup := func() {}

	return router, cleanup, nil
}

// engineCheck converts a fixed reference date and verifies the result.
// Tết Giáp Thìn (10 Feb 2024) must map to lunar 1/1/2024.
func engineCheck(timezone float64) error {
	lunar, err := calendar.SolarToLunar(10, 2, 2024, timezone)
	if err != nil {
		return err
	}
	want := calendar.LunarDate{Day: 1, Month: 1, Year: 2024}
	if lunar != want {
		return fmt.Errorf("reference conversion returned %v, want %v", lunar, want)
	}
	return nil
}
