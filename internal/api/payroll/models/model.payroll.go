// Package models - Staff và PayrollEntry thuộc domain nhân sự/lương (payroll).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái chi trả của bảng lương.
const (
	PayoutStatusPending    = "pending"
	PayoutStatusProcessing = "processing"
	PayoutStatusPaid       = "paid"
)

// Staff lưu nhân viên của salon (payroll_staff).
type Staff struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SalonID primitive.ObjectID `json:"salonId" bson:"salonId"` // Salon sử dụng nhân viên

	Name          string  `json:"name" bson:"name"`                       // Tên nhân viên
	Phone         string  `json:"phone,omitempty" bson:"phone,omitempty"` // Số điện thoại
	Role          string  `json:"role,omitempty" bson:"role,omitempty"`   // Vị trí (stylist, therapist...)
	CommissionPct float64 `json:"commissionPct" bson:"commissionPct"`     // Phần trăm hoa hồng, 0-100

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}

// PayrollEntry lưu bảng lương một tháng của nhân viên (payroll_entries).
type PayrollEntry struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SalonID primitive.ObjectID `json:"salonId" bson:"salonId"` // Salon chi trả
	StaffID primitive.ObjectID `json:"staffId" bson:"staffId"` // Nhân viên nhận lương

	Month string `json:"month" bson:"month"` // Tháng chi trả, định dạng YYYY-MM

	BaseSalary  float64 `json:"baseSalary" bson:"baseSalary"`   // Lương cơ bản
	Commissions float64 `json:"commissions" bson:"commissions"` // Hoa hồng
	Bonuses     float64 `json:"bonuses" bson:"bonuses"`         // Thưởng
	Deductions  float64 `json:"deductions" bson:"deductions"`   // Khấu trừ

	PayoutStatus string `json:"payoutStatus" bson:"payoutStatus"` // pending | processing | paid

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}

// NetPay tính lương thực nhận của bảng lương.
func (p *PayrollEntry) NetPay() float64 {
	return p.BaseSalary + p.Commissions + p.Bonuses - p.Deductions
}
