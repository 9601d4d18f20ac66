// Package models - InventoryItem thuộc domain kho (inventory_items).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các đơn vị tính của hàng tồn kho.
const (
	UnitPcs = "pcs"
	UnitMl  = "ml"
	UnitG   = "g"
)

// InventoryItem lưu một mặt hàng trong kho của salon (inventory_items).
type InventoryItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SalonID primitive.ObjectID `json:"salonId" bson:"salonId"` // Salon sở hữu mặt hàng

	Sku   string `json:"sku,omitempty" bson:"sku,omitempty"`     // Mã hàng
	Name  string `json:"name" bson:"name"`                       // Tên mặt hàng
	Brand string `json:"brand,omitempty" bson:"brand,omitempty"` // Thương hiệu

	Quantity          float64 `json:"quantity" bson:"quantity"`                   // Số lượng hiện có
	Unit              string  `json:"unit" bson:"unit"`                           // pcs | ml | g
	LowStockThreshold float64 `json:"lowStockThreshold" bson:"lowStockThreshold"` // Ngưỡng cảnh báo sắp hết hàng
	CostPrice         float64 `json:"costPrice" bson:"costPrice"`                 // Giá nhập
	SalePrice         float64 `json:"salePrice" bson:"salePrice"`                 // Giá bán

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
