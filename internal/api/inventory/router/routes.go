// Package router đăng ký các route thuộc domain inventory.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	inventoryhdl "salon_os/internal/api/inventory/handler"
	"salon_os/internal/api/middleware"
	apirouter "salon_os/internal/api/router"
)

// Register đăng ký tất cả route inventory lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	inventoryHandler, err := inventoryhdl.NewInventoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create inventory handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/inventory", inventoryHandler, apirouter.ReadWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/inventory", "GET", "/low-stock", []fiber.Handler{authMiddleware}, inventoryHandler.HandleLowStock)
	apirouter.RegisterRouteWithMiddleware(v1, "/inventory", "PUT", "/adjust/:id", []fiber.Handler{authMiddleware}, inventoryHandler.HandleAdjustQuantity)

	return nil
}
