// Package catalogsvc - Service danh mục dịch vụ của salon (catalog_services).
package catalogsvc

import (
	"fmt"

	catalogmodels "salon_os/internal/api/catalog/models"
	basesvc "salon_os/internal/api/base/service"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// ServiceCatalogService xử lý CRUD dịch vụ.
type ServiceCatalogService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Service]
}

// NewServiceCatalogService tạo ServiceCatalogService mới.
func NewServiceCatalogService() (*ServiceCatalogService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Services)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Services, common.ErrNotFound)
	}
	return &ServiceCatalogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Service](coll),
	}, nil
}
