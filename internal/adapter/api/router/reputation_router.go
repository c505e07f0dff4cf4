package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/handler"
	"lokapasar/internal/adapter/api/middleware"
)

func SetupReputationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reputationHandler := handler.GetReputationHandler()

	// Public routes
	leaderboards := e.Group("/v1/reputation")
	leaderboards.GET("/top-rated", reputationHandler.GetTopRated)
	leaderboards.GET("/trusted-sellers", reputationHandler.GetTrustedSellers)

	// Protected routes (require authentication)
	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.GET("/v1/users/:userId/reputation", reputationHandler.GetReputation)
	authenticated.POST("/v1/users/:userId/reputation/recalculate", reputationHandler.RecalculateReputation)

	// Admin routes
	admin := e.Group("/v1/admin/reputation")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("/recompute", reputationHandler.RecomputeAll)
}
