// Package router đăng ký các route thuộc domain payroll.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"salon_os/internal/api/middleware"
	payrollhdl "salon_os/internal/api/payroll/handler"
	apirouter "salon_os/internal/api/router"
)

// Register đăng ký tất cả route payroll lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	staffHandler, err := payrollhdl.NewStaffHandler()
	if err != nil {
		return fmt.Errorf("failed to create staff handler: %w", err)
	}
	payrollHandler, err := payrollhdl.NewPayrollHandler()
	if err != nil {
		return fmt.Errorf("failed to create payroll handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/payroll/staff", staffHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/payroll/entries", payrollHandler, apirouter.ReadWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/payroll/entries", "GET", "/by-month", []fiber.Handler{authMiddleware}, payrollHandler.HandleFindByMonth)

	return nil
}
