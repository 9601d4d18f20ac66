// Package router đăng ký các route thuộc domain analytics.
package router

import (
	"github.com/gofiber/fiber/v3"

	analyticshdl "salon_os/internal/api/analytics/handler"
	"salon_os/internal/api/middleware"
	apirouter "salon_os/internal/api/router"
)

// Register đăng ký tất cả route analytics lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	analyticsHandler := analyticshdl.NewAnalyticsHandler()

	authMiddleware := middleware.AuthMiddleware()
	ownerMiddleware := middleware.OwnerMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/summary", []fiber.Handler{authMiddleware}, analyticsHandler.HandleSummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/metrics", []fiber.Handler{authMiddleware, ownerMiddleware}, analyticsHandler.HandleFleetMetrics)

	return nil
}
