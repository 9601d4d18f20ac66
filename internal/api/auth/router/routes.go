// Package router đăng ký các route thuộc domain auth: OTP, onboarding, profile.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "salon_os/internal/api/auth/handler"
	"salon_os/internal/api/middleware"
	apirouter "salon_os/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %w", err)
	}

	// Các route public (chưa đăng nhập)
	v1.Post("/auth/otp/start", authHandler.HandleOTPStart)
	v1.Post("/auth/otp/verify", authHandler.HandleOTPVerify)
	v1.Post("/auth/onboarding", authHandler.HandleOnboarding)

	// Các route yêu cầu đăng nhập
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authMiddleware}, authHandler.HandleGetProfile)

	return nil
}
