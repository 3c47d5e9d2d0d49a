package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (runs an engine self-check).
type HealthHandler struct {
	engineCheck func() error // Function exercising the conversion engine
}

// NewHealthHandler constructs a HealthHandler with the provided
// engine self-check.
//
// Parameters:
//   - engineCheck (func() error): A function that converts a known date
//     and reports whether the engine produced the expected result.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(engineCheck func() error) *HealthHandler {
	return &HealthHandler{engineCheck: engineCheck}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the self-check passes, 503 otherwise.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the conversion engine)
	// @Summary      Readiness probe
	// @Description  Returns ready if the conversion engine self-check passes
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.engineCheck != nil && h.engineCheck() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
