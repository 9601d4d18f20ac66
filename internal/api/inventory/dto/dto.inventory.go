package inventorydto

// InventoryItemCreateInput đầu vào khi tạo mặt hàng mới.
type InventoryItemCreateInput struct {
	Sku               string  `json:"sku,omitempty" bson:"sku,omitempty"`
	Name              string  `json:"name" bson:"name" validate:"required,no_xss"`
	Brand             string  `json:"brand,omitempty" bson:"brand,omitempty" validate:"omitempty,no_xss"`
	Quantity          float64 `json:"quantity,omitempty" bson:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit              string  `json:"unit,omitempty" bson:"unit,omitempty" validate:"omitempty,oneof=pcs ml g"`
	LowStockThreshold float64 `json:"lowStockThreshold,omitempty" bson:"lowStockThreshold,omitempty" validate:"omitempty,gte=0"`
	CostPrice         float64 `json:"costPrice,omitempty" bson:"costPrice,omitempty" validate:"omitempty,gte=0"`
	SalePrice         float64 `json:"salePrice,omitempty" bson:"salePrice,omitempty" validate:"omitempty,gte=0"`
}

// InventoryItemUpdateInput đầu vào khi cập nhật mặt hàng.
type InventoryItemUpdateInput struct {
	Sku               string  `json:"sku,omitempty" bson:"sku,omitempty"`
	Name              string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Brand             string  `json:"brand,omitempty" bson:"brand,omitempty" validate:"omitempty,no_xss"`
	Quantity          float64 `json:"quantity,omitempty" bson:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit              string  `json:"unit,omitempty" bson:"unit,omitempty" validate:"omitempty,oneof=pcs ml g"`
	LowStockThreshold float64 `json:"lowStockThreshold,omitempty" bson:"lowStockThreshold,omitempty" validate:"omitempty,gte=0"`
	CostPrice         float64 `json:"costPrice,omitempty" bson:"costPrice,omitempty" validate:"omitempty,gte=0"`
	SalePrice         float64 `json:"salePrice,omitempty" bson:"salePrice,omitempty" validate:"omitempty,gte=0"`
}
