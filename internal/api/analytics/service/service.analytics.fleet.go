package analyticssvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	billingmodels "salon_os/internal/api/billing/models"
	"salon_os/internal/global"
)

// FleetMetrics số liệu vận hành toàn hệ thống.
type FleetMetrics struct {
	TotalSalons       int64
	ActivePaidSalons  int64
	TrialSalons       int64
	Mrr               float64
	Arr               float64
	Revenue30d        float64
	DailyActiveSalons int64
}

// FleetService tính số liệu toàn hệ thống cho quản trị.
type FleetService struct {
	store Store
	now   func() time.Time
}

// NewFleetService tạo FleetService đọc trực tiếp từ MongoDB.
func NewFleetService() *FleetService {
	return NewFleetServiceWithStore(NewMongoStore())
}

// NewFleetServiceWithStore tạo FleetService với store tùy chọn.
func NewFleetServiceWithStore(store Store) *FleetService {
	return &FleetService{
		store: store,
		now:   time.Now,
	}
}

// Metrics tổng hợp số liệu toàn hệ thống.
//
// Salon trả phí gồm các gói active và past_due; past_due vẫn tính vào MRR vì
// hợp đồng chưa chấm dứt. ARR bằng MRR nhân 12. Salon hoạt động trong ngày là
// salon có lịch hẹn được tạo trong 24 giờ qua.
func (s *FleetService) Metrics(ctx context.Context) (*FleetMetrics, error) {
	now := s.now().UTC()
	metrics := &FleetMetrics{}

	var err error
	metrics.TotalSalons, err = s.store.CountDocuments(ctx, global.MongoDB_ColNames.Salons, bson.M{})
	if err != nil {
		return nil, err
	}

	paidStatuses := bson.M{"status": bson.M{"$in": []string{
		billingmodels.SubscriptionStatusActive,
		billingmodels.SubscriptionStatusPastDue,
	}}}

	metrics.ActivePaidSalons, err = s.store.CountDocuments(ctx, global.MongoDB_ColNames.Subscriptions, paidStatuses)
	if err != nil {
		return nil, err
	}

	metrics.TrialSalons, err = s.store.CountDocuments(ctx, global.MongoDB_ColNames.Subscriptions, bson.M{
		"status": billingmodels.SubscriptionStatusTrial,
	})
	if err != nil {
		return nil, err
	}

	subscriptions, err := s.store.Find(ctx, global.MongoDB_ColNames.Subscriptions, paidStatuses)
	if err != nil {
		return nil, err
	}
	for _, sub := range subscriptions {
		metrics.Mrr += asFloat(sub["mrr"])
	}
	metrics.Arr = metrics.Mrr * 12

	revenueStart := now.AddDate(0, 0, -30).UnixMilli()
	transactions, err := s.store.Find(ctx, global.MongoDB_ColNames.Transactions, bson.M{
		"timestamp": bson.M{"$gte": revenueStart},
		"status":    billingmodels.TransactionStatusSucceeded,
	})
	if err != nil {
		return nil, err
	}
	for _, tx := range transactions {
		metrics.Revenue30d += asFloat(tx["amount"])
	}

	dayStart := now.Add(-24 * time.Hour).UnixMilli()
	activeSalonIDs, err := s.store.Distinct(ctx, global.MongoDB_ColNames.Bookings, "salonId", bson.M{
		"createdAt": bson.M{"$gte": dayStart},
	})
	if err != nil {
		return nil, err
	}
	metrics.DailyActiveSalons = int64(len(activeSalonIDs))

	return metrics, nil
}
