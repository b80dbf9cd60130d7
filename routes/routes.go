// File: routes/routes.go
package routes

import (
	"windward/config"
	"windward/handlers"
	"windward/middleware"
	"windward/services/ratelimit"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Scheduling   *handlers.SchedulingHandler
	Availability *handlers.AvailabilityHandler
	RateLimiter  *ratelimit.FixedWindowLimiter
}

// RegisterRoutes registers all endpoints. The slot query sits behind the
// fixed-window rate limiter; assignment and availability management sit
// behind the internal shared-secret boundary.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		api.GET("/slots", middleware.RateLimitMiddleware(h.RateLimiter), h.Scheduling.GetAvailableSlots)

		internal := api.Group("")
		internal.Use(middleware.InternalAuthMiddleware(config.AppConfig.InternalAPIKey))
		{
			internal.POST("/assign", h.Scheduling.AssignInstructor)
			internal.POST("/availability", h.Availability.CreateAvailability)
			internal.DELETE("/availability/:id", h.Availability.DeleteAvailability)
		}
	}
}
