// Package models - Service (dịch vụ) thuộc domain catalog (catalog_services).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service lưu một dịch vụ mà salon cung cấp (catalog_services).
type Service struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SalonID primitive.ObjectID `json:"salonId" bson:"salonId"` // Salon sở hữu dịch vụ

	Name        string  `json:"name" bson:"name"`                             // Tên dịch vụ
	Category    string  `json:"category,omitempty" bson:"category,omitempty"` // Nhóm dịch vụ
	DurationMin int     `json:"durationMin" bson:"durationMin"`               // Thời lượng (phút), 5-600
	Price       float64 `json:"price" bson:"price"`                           // Giá niêm yết

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
