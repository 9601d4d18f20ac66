// Package crmhdl xử lý các request CRM.
package crmhdl

import (
	"fmt"

	crmdto "salon_os/internal/api/crm/dto"
	crmmodels "salon_os/internal/api/crm/models"
	crmsvc "salon_os/internal/api/crm/service"
	basehdl "salon_os/internal/api/base/handler"
)

// ClientHandler xử lý CRUD khách hàng qua BaseHandler.
type ClientHandler struct {
	*basehdl.BaseHandler[crmmodels.Client, crmdto.ClientCreateInput, crmdto.ClientUpdateInput]
	clientService *crmsvc.ClientService
}

// NewClientHandler tạo instance mới của ClientHandler
func NewClientHandler() (*ClientHandler, error) {
	clientService, err := crmsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("failed to create client service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[crmmodels.Client, crmdto.ClientCreateInput, crmdto.ClientUpdateInput](clientService)
	return &ClientHandler{
		BaseHandler:   baseHandler,
		clientService: clientService,
	}, nil
}
