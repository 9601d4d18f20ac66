// Package billingsvc - Service giao dịch thanh toán và gói thuê bao.
package billingsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "salon_os/internal/api/base/service"
	billingmodels "salon_os/internal/api/billing/models"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// TransactionService xử lý CRUD giao dịch thanh toán.
type TransactionService struct {
	*basesvc.BaseServiceMongoImpl[billingmodels.Transaction]
}

// NewTransactionService tạo TransactionService mới.
func NewTransactionService() (*TransactionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Transactions, common.ErrNotFound)
	}
	return &TransactionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[billingmodels.Transaction](coll),
	}, nil
}

// CreateTransaction ghi nhận giao dịch, bổ sung các giá trị mặc định.
// Timestamp bằng 0 sẽ được gán thời điểm hiện tại (Unix ms).
func (s *TransactionService) CreateTransaction(ctx context.Context, tx billingmodels.Transaction) (billingmodels.Transaction, error) {
	if tx.Timestamp == 0 {
		tx.Timestamp = time.Now().UnixMilli()
	}
	if tx.Currency == "" {
		tx.Currency = "INR"
	}
	if tx.Purpose == "" {
		tx.Purpose = billingmodels.TransactionPurposeSubscription
	}
	if tx.Status == "" {
		tx.Status = billingmodels.TransactionStatusPending
	}
	return s.InsertOne(ctx, tx)
}

// MarkStatus chuyển trạng thái giao dịch.
func (s *TransactionService) MarkStatus(ctx context.Context, id primitive.ObjectID, status string) (*billingmodels.Transaction, error) {
	switch status {
	case billingmodels.TransactionStatusPending,
		billingmodels.TransactionStatusSucceeded,
		billingmodels.TransactionStatusFailed,
		billingmodels.TransactionStatusRefunded:
	default:
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái giao dịch không hợp lệ: %s", status),
			common.StatusBadRequest,
			nil,
		)
	}

	tx, err := s.UpdateById(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// SubscriptionService xử lý CRUD gói thuê bao.
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[billingmodels.Subscription]
}

// NewSubscriptionService tạo SubscriptionService mới.
func NewSubscriptionService() (*SubscriptionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Subscriptions, common.ErrNotFound)
	}
	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[billingmodels.Subscription](coll),
	}, nil
}

// FindBySalon trả về gói thuê bao hiện tại của salon.
func (s *SubscriptionService) FindBySalon(ctx context.Context, salonID primitive.ObjectID) (billingmodels.Subscription, error) {
	return s.FindOne(ctx, bson.M{"salonId": salonID}, nil)
}

// ChangePlan đổi gói thuê bao của salon và cập nhật MRR tương ứng.
// Gói trial luôn có MRR bằng 0.
func (s *SubscriptionService) ChangePlan(ctx context.Context, salonID primitive.ObjectID, plan string, mrr float64) (*billingmodels.Subscription, error) {
	status := billingmodels.SubscriptionStatusActive
	if plan == "trial" {
		status = billingmodels.SubscriptionStatusTrial
		mrr = 0
	}

	sub, err := s.FindBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, sub.ID, bson.M{"$set": bson.M{
		"plan":   plan,
		"status": status,
		"mrr":    mrr,
	}})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
