// Package router đăng ký các route thuộc domain CRM.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "salon_os/internal/api/crm/handler"
	apirouter "salon_os/internal/api/router"
)

// Register đăng ký tất cả route CRM lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	clientHandler, err := crmhdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("failed to create client handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/crm/clients", clientHandler, apirouter.ReadWriteConfig)
	return nil
}
