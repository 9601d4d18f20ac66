// Package payrollsvc - Service nhân viên và bảng lương (payroll_staff, payroll_entries).
package payrollsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	payrollmodels "salon_os/internal/api/payroll/models"
	basesvc "salon_os/internal/api/base/service"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// StaffService xử lý CRUD nhân viên.
type StaffService struct {
	*basesvc.BaseServiceMongoImpl[payrollmodels.Staff]
}

// NewStaffService tạo StaffService mới.
func NewStaffService() (*StaffService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Staff)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Staff, common.ErrNotFound)
	}
	return &StaffService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[payrollmodels.Staff](coll),
	}, nil
}

// PayrollService xử lý CRUD bảng lương.
type PayrollService struct {
	*basesvc.BaseServiceMongoImpl[payrollmodels.PayrollEntry]
}

// NewPayrollService tạo PayrollService mới.
func NewPayrollService() (*PayrollService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PayrollEntries)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.PayrollEntries, common.ErrNotFound)
	}
	return &PayrollService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[payrollmodels.PayrollEntry](coll),
	}, nil
}

// FindByMonth trả về bảng lương của salon trong một tháng (YYYY-MM).
func (s *PayrollService) FindByMonth(ctx context.Context, salonID primitive.ObjectID, month string) ([]payrollmodels.PayrollEntry, error) {
	filter := bson.M{"salonId": salonID}
	if month != "" {
		filter["month"] = month
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "month", Value: -1}})
	return s.Find(ctx, filter, opts)
}
