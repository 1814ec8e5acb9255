// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/salon-pulse/backend/internal/integration/entrypoint/controller"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	trendsController     *controller.TrendsController
	forecastController   *controller.ForecastController
	preferenceController *controller.PreferenceController
	digestController     *controller.DigestController
	forecastRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	trendsController *controller.TrendsController,
	forecastController *controller.ForecastController,
	preferenceController *controller.PreferenceController,
	digestController *controller.DigestController,
	forecastRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:     healthController,
		trendsController:     trendsController,
		forecastController:   forecastController,
		preferenceController: preferenceController,
		digestController:     digestController,
		forecastRateLimiter:  forecastRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Analytics routes
		if r.trendsController != nil {
			analytics := v1.Group("/analytics")
			{
				analytics.GET("/trends/comparison", r.trendsController.GetComparison)

				// The forecast endpoint can trigger insight generation, so it
				// carries a rate limit.
				if r.forecastController != nil {
					if r.forecastRateLimiter != nil {
						analytics.GET("/forecast", r.forecastRateLimiter.Middleware(), r.forecastController.GetForecast)
					} else {
						analytics.GET("/forecast", r.forecastController.GetForecast)
					}
				}
			}
		}

		// Preference routes
		if r.preferenceController != nil {
			preferences := v1.Group("/preferences")
			{
				preferences.GET("", r.preferenceController.GetPreferences)
				preferences.PUT("", r.preferenceController.UpdatePreferences)
			}
		}

		// Digest routes
		if r.digestController != nil {
			digests := v1.Group("/digests")
			{
				digests.POST("/weekly", r.digestController.QueueWeekly)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
