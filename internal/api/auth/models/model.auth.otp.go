// Package models - OTP, VerificationToken và Session cho luồng đăng nhập bằng số điện thoại.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTP lưu mã xác thực gửi về số điện thoại (auth_otps).
type OTP struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Phone     string `json:"phone" bson:"phone"`         // Số điện thoại nhận mã
	Code      string `json:"code" bson:"code"`           // Mã OTP
	ExpiresAt int64  `json:"expiresAt" bson:"expiresAt"` // Unix ms — thời điểm hết hạn
	Used      bool   `json:"used" bson:"used"`           // Đã dùng hay chưa

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}

// VerificationToken lưu token trung gian sau khi verify OTP thành công (auth_verification_tokens).
// Token này được dùng một lần trong bước onboarding để tạo salon + user.
type VerificationToken struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Phone     string `json:"phone" bson:"phone"`         // Số điện thoại đã verify
	Token     string `json:"token" bson:"token"`         // Token xác thực
	ExpiresAt int64  `json:"expiresAt" bson:"expiresAt"` // Unix ms — thời điểm hết hạn

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}

// Session lưu phiên đăng nhập (auth_sessions).
type Session struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	UserID    primitive.ObjectID `json:"userId" bson:"userId"`                       // User sở hữu phiên
	SalonID   primitive.ObjectID `json:"salonId,omitempty" bson:"salonId,omitempty"` // Salon đang làm việc
	Token     string             `json:"token" bson:"token"`                         // Session token (Bearer)
	ExpiresAt int64              `json:"expiresAt" bson:"expiresAt"`                 // Unix ms — thời điểm hết hạn

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
