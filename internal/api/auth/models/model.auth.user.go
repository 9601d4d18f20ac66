// Package models - User thuộc auth domain (users).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User lưu người dùng của hệ thống (users).
// Mỗi user thuộc về một salon và có vai trò owner/manager/staff.
type User struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Role    string             `json:"role" bson:"role"`                           // owner | manager | staff
	Name    string             `json:"name" bson:"name"`                           // Tên người dùng
	Email   string             `json:"email,omitempty" bson:"email,omitempty"`     // Email (không bắt buộc)
	Phone   string             `json:"phone" bson:"phone"`                         // Số điện thoại đăng nhập
	SalonID primitive.ObjectID `json:"salonId,omitempty" bson:"salonId,omitempty"` // Salon mà user thuộc về

	IsActive bool `json:"isActive" bson:"isActive"` // Tài khoản còn hoạt động hay không

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
