// Package models - Salon là tenant gốc của hệ thống (salons).
// Mọi dữ liệu nghiệp vụ (khách, lịch hẹn, giao dịch...) đều tham chiếu về salon qua salonId.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Salon lưu thông tin salon/thương hiệu (salons).
type Salon struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name    string `json:"name" bson:"name"`                         // Tên salon/thương hiệu
	Phone   string `json:"phone" bson:"phone"`                       // Số điện thoại chính (E.164 hoặc local)
	City    string `json:"city,omitempty" bson:"city,omitempty"`     // Thành phố
	Address string `json:"address,omitempty" bson:"address,omitempty"` // Địa chỉ
	Country string `json:"country" bson:"country"`                   // Mã quốc gia (ISO2)

	Plan           string `json:"plan" bson:"plan"`                     // Gói hiện tại: trial | starter | pro | enterprise
	OnboardingDone bool   `json:"onboardingDone" bson:"onboardingDone"` // Đã hoàn tất onboarding hay chưa

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
