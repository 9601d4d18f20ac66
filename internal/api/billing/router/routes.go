// Package router đăng ký các route thuộc domain billing.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	billinghdl "salon_os/internal/api/billing/handler"
	"salon_os/internal/api/middleware"
	apirouter "salon_os/internal/api/router"
)

// Register đăng ký tất cả route billing lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	transactionHandler, err := billinghdl.NewTransactionHandler()
	if err != nil {
		return fmt.Errorf("failed to create transaction handler: %w", err)
	}
	subscriptionHandler, err := billinghdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %w", err)
	}

	// Giao dịch chỉ cho phép đọc qua CRUD chung; ghi nhận và đổi trạng thái
	// đi qua route riêng để gán salonId và kiểm soát trạng thái.
	r.RegisterCRUDRoutes(v1, "/billing/transactions", transactionHandler, apirouter.ReadOnlyConfig)
	r.RegisterCRUDRoutes(v1, "/billing/subscriptions", subscriptionHandler, apirouter.ReadOnlyConfig)

	authMiddleware := middleware.AuthMiddleware()
	ownerMiddleware := middleware.OwnerMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/billing/transactions", "POST", "/record", []fiber.Handler{authMiddleware}, transactionHandler.HandleCreateTransaction)
	apirouter.RegisterRouteWithMiddleware(v1, "/billing/transactions", "PUT", "/status/:id", []fiber.Handler{authMiddleware, ownerMiddleware}, transactionHandler.HandleMarkStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/billing/subscriptions", "GET", "/me", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleMySubscription)
	apirouter.RegisterRouteWithMiddleware(v1, "/billing/subscriptions", "PUT", "/plan", []fiber.Handler{authMiddleware, ownerMiddleware}, subscriptionHandler.HandleChangePlan)

	return nil
}
