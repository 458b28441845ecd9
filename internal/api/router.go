package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/dto"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS).
//   - Adds request timeout handling (30 seconds; the price fan-out waits for
//     the slowest outbound call).
//   - Answers non-GET verbs on API routes with 405 JSON.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Method not allowed ───────────────────────
	// CORS() already intercepted OPTIONS by the time this chain runs.
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed,
			dto.NewErrorResponse("Method not allowed", "only GET requests are supported", nil))
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/prices", handler.GetPrices)
		v1.GET("/transcript", handler.GetTranscript)
	}

	return router
}
