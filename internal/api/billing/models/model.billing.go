// Package models - Billing domain: giao dịch thanh toán và gói thuê bao của salon.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của giao dịch thanh toán.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusSucceeded = "succeeded"
	TransactionStatusFailed    = "failed"
	TransactionStatusRefunded  = "refunded"
)

// Các mục đích của giao dịch.
const (
	TransactionPurposeSubscription = "subscription"
	TransactionPurposeAddon        = "addon"
	TransactionPurposePos          = "pos"
)

// Các trạng thái của gói thuê bao.
const (
	SubscriptionStatusTrial    = "trial"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
)

// Transaction lưu giao dịch thanh toán (billing_transactions).
// Trường Timestamp là thời điểm phát sinh giao dịch, tách biệt với createdAt của hệ thống.
type Transaction struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SalonID   primitive.ObjectID `json:"salonId" bson:"salonId"`     // Salon phát sinh giao dịch
	Amount    float64            `json:"amount" bson:"amount"`       // Số tiền
	Currency  string             `json:"currency" bson:"currency"`   // Mã tiền tệ (INR)
	Purpose   string             `json:"purpose" bson:"purpose"`     // subscription | addon | pos
	Status    string             `json:"status" bson:"status"`       // pending | succeeded | failed | refunded
	Timestamp int64              `json:"timestamp" bson:"timestamp"` // Unix ms — thời điểm giao dịch

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}

// Subscription lưu gói thuê bao của salon (billing_subscriptions).
type Subscription struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	SalonID   primitive.ObjectID `json:"salonId" bson:"salonId"`                     // Salon sở hữu gói
	Plan      string             `json:"plan" bson:"plan"`                           // trial | starter | pro | enterprise
	Status    string             `json:"status" bson:"status"`                       // trial | active | past_due | canceled
	StartDate int64              `json:"startDate" bson:"startDate"`                 // Unix ms
	EndDate   int64              `json:"endDate,omitempty" bson:"endDate,omitempty"` // Unix ms — 0 nếu chưa có
	Mrr       float64            `json:"mrr" bson:"mrr"`                             // Doanh thu định kỳ hàng tháng của gói

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
