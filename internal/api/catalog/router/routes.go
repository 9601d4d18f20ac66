// Package router đăng ký các route thuộc domain catalog.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "salon_os/internal/api/catalog/handler"
	apirouter "salon_os/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	serviceHandler, err := cataloghdl.NewServiceHandler()
	if err != nil {
		return fmt.Errorf("failed to create service handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/catalog/services", serviceHandler, apirouter.ReadWriteConfig)
	return nil
}
