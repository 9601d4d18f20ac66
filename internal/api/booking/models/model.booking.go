// Package models - Booking thuộc domain đặt lịch (bookings).
// Booking là nguồn dữ liệu cho phân tích: tổng lịch hẹn, khách quay lại, salon hoạt động.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của lịch hẹn.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusNoShow    = "no_show"
)

// Các trạng thái thanh toán của lịch hẹn.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusPartial  = "partial"
	PaymentStatusRefunded = "refunded"
)

// Booking lưu một lịch hẹn của khách (bookings).
type Booking struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SalonID  primitive.ObjectID `json:"salonId" bson:"salonId"`                       // Salon nhận lịch hẹn
	ClientID primitive.ObjectID `json:"clientId,omitempty" bson:"clientId,omitempty"` // Khách đặt lịch (có thể trống với walk-in)
	StaffID  primitive.ObjectID `json:"staffId,omitempty" bson:"staffId,omitempty"`   // Nhân viên phục vụ

	Services []string `json:"services,omitempty" bson:"services,omitempty"` // Danh sách tên hoặc id dịch vụ

	StartTime int64  `json:"startTime" bson:"startTime"`             // Unix ms — giờ bắt đầu
	EndTime   int64  `json:"endTime" bson:"endTime"`                 // Unix ms — giờ kết thúc
	Status    string `json:"status" bson:"status"`                   // pending | confirmed | completed | cancelled | no_show
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"` // Ghi chú

	Amount        float64 `json:"amount" bson:"amount"`               // Tổng tiền dịch vụ
	PaymentStatus string  `json:"paymentStatus" bson:"paymentStatus"` // unpaid | paid | partial | refunded

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
