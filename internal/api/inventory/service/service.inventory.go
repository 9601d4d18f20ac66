// Package inventorysvc - Service hàng tồn kho của salon (inventory_items).
package inventorysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	inventorymodels "salon_os/internal/api/inventory/models"
	basesvc "salon_os/internal/api/base/service"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// InventoryService xử lý CRUD hàng tồn kho.
type InventoryService struct {
	*basesvc.BaseServiceMongoImpl[inventorymodels.InventoryItem]
}

// NewInventoryService tạo InventoryService mới.
func NewInventoryService() (*InventoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.InventoryItems)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.InventoryItems, common.ErrNotFound)
	}
	return &InventoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[inventorymodels.InventoryItem](coll),
	}, nil
}

// FindLowStock trả về các mặt hàng có số lượng dưới hoặc bằng ngưỡng cảnh báo.
// So sánh 2 field trong cùng document nên phải dùng $expr.
func (s *InventoryService) FindLowStock(ctx context.Context, salonID primitive.ObjectID) ([]inventorymodels.InventoryItem, error) {
	filter := bson.M{
		"salonId": salonID,
		"$expr":   bson.M{"$lte": bson.A{"$quantity", "$lowStockThreshold"}},
	}
	return s.Find(ctx, filter, nil)
}

// AdjustQuantity cộng/trừ số lượng của mặt hàng (delta âm là xuất kho).
func (s *InventoryService) AdjustQuantity(ctx context.Context, itemID primitive.ObjectID, delta float64) (*inventorymodels.InventoryItem, error) {
	item, err := s.FindOneById(ctx, itemID)
	if err != nil {
		return nil, err
	}

	newQuantity := item.Quantity + delta
	if newQuantity < 0 {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			"Số lượng tồn kho không thể âm",
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateById(ctx, itemID, bson.M{"$set": bson.M{"quantity": newQuantity}})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
