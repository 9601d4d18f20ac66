// Package models - Client thuộc domain CRM (crm_clients).
// Lưu khách hàng của salon, nguồn chính cho phân tích khách mới/khách quay lại.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client lưu khách hàng của một salon (crm_clients).
type Client struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SalonID primitive.ObjectID `json:"salonId" bson:"salonId"` // Salon sở hữu khách hàng

	Name  string   `json:"name" bson:"name"`                       // Tên khách
	Phone string   `json:"phone,omitempty" bson:"phone,omitempty"` // Số điện thoại
	Email string   `json:"email,omitempty" bson:"email,omitempty"` // Email
	Tags  []string `json:"tags,omitempty" bson:"tags,omitempty"`   // Nhãn phân loại khách
	Notes string   `json:"notes,omitempty" bson:"notes,omitempty"` // Ghi chú

	LastVisit int64  `json:"lastVisit,omitempty" bson:"lastVisit,omitempty"` // Unix ms — lần ghé gần nhất
	Source    string `json:"source,omitempty" bson:"source,omitempty"`       // Nguồn khách (walk-in, Instagram...)

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
