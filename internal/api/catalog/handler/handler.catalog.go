// Package cataloghdl xử lý các request danh mục dịch vụ.
package cataloghdl

import (
	"fmt"

	catalogdto "salon_os/internal/api/catalog/dto"
	catalogmodels "salon_os/internal/api/catalog/models"
	catalogsvc "salon_os/internal/api/catalog/service"
	basehdl "salon_os/internal/api/base/handler"
)

// ServiceHandler xử lý CRUD dịch vụ qua BaseHandler.
type ServiceHandler struct {
	*basehdl.BaseHandler[catalogmodels.Service, catalogdto.ServiceCreateInput, catalogdto.ServiceUpdateInput]
	catalogService *catalogsvc.ServiceCatalogService
}

// NewServiceHandler tạo instance mới của ServiceHandler
func NewServiceHandler() (*ServiceHandler, error) {
	catalogService, err := catalogsvc.NewServiceCatalogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[catalogmodels.Service, catalogdto.ServiceCreateInput, catalogdto.ServiceUpdateInput](catalogService)
	return &ServiceHandler{
		BaseHandler:    baseHandler,
		catalogService: catalogService,
	}, nil
}
