// Package router đăng ký các route thuộc domain booking.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	bookinghdl "salon_os/internal/api/booking/handler"
	"salon_os/internal/api/middleware"
	apirouter "salon_os/internal/api/router"
)

// Register đăng ký tất cả route booking lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	bookingHandler, err := bookinghdl.NewBookingHandler()
	if err != nil {
		return fmt.Errorf("failed to create booking handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/bookings", bookingHandler, apirouter.ReadWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/bookings", "PUT", "/status/:id", []fiber.Handler{authMiddleware}, bookingHandler.HandleUpdateStatus)

	return nil
}
