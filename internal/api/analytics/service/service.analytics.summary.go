package analyticssvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	billingmodels "salon_os/internal/api/billing/models"
	"salon_os/internal/global"
	"salon_os/internal/logger"
)

// Summary số liệu tổng hợp của một salon (hoặc toàn hệ thống) trong kỳ.
// Degraded bật lên khi pipeline khách quay lại thất bại và bị quy về 0.
type Summary struct {
	Period           string
	TotalRevenue     float64
	TotalBookings    int64
	NewClients       int64
	ReturningClients int64
	Degraded         bool
}

// SummaryService tính số liệu tổng hợp theo kỳ báo cáo.
type SummaryService struct {
	store Store
	now   func() time.Time
}

// NewSummaryService tạo SummaryService đọc trực tiếp từ MongoDB.
func NewSummaryService() *SummaryService {
	return NewSummaryServiceWithStore(NewMongoStore())
}

// NewSummaryServiceWithStore tạo SummaryService với store tùy chọn.
func NewSummaryServiceWithStore(store Store) *SummaryService {
	return &SummaryService{
		store: store,
		now:   time.Now,
	}
}

// scopedFilter tạo filter theo mốc thời gian, thêm salonId nếu có.
func scopedFilter(timeField string, start int64, salonID *primitive.ObjectID) bson.M {
	filter := bson.M{timeField: bson.M{"$gte": start}}
	if salonID != nil {
		filter["salonId"] = *salonID
	}
	return filter
}

// Summarize tính số liệu trong kỳ. salonID nil nghĩa là tính trên toàn hệ thống.
//
// Doanh thu cộng dồn các giao dịch succeeded có timestamp trong kỳ. Lịch hẹn và
// khách mới đếm theo thời điểm tạo (createdAt). Khách quay lại là khách có nhiều
// hơn một lịch hẹn bắt đầu trong kỳ.
func (s *SummaryService) Summarize(ctx context.Context, salonID *primitive.ObjectID, period string) (*Summary, error) {
	start, err := ResolveWindowStart(period, s.now())
	if err != nil {
		return nil, err
	}

	summary := &Summary{Period: period}

	transactions, err := s.store.Find(ctx, global.MongoDB_ColNames.Transactions, scopedFilter("timestamp", start, salonID))
	if err != nil {
		return nil, err
	}
	for _, tx := range transactions {
		if status, _ := tx["status"].(string); status != billingmodels.TransactionStatusSucceeded {
			continue
		}
		summary.TotalRevenue += asFloat(tx["amount"])
	}

	summary.TotalBookings, err = s.store.CountDocuments(ctx, global.MongoDB_ColNames.Bookings, scopedFilter("createdAt", start, salonID))
	if err != nil {
		return nil, err
	}

	summary.NewClients, err = s.store.CountDocuments(ctx, global.MongoDB_ColNames.Clients, scopedFilter("createdAt", start, salonID))
	if err != nil {
		return nil, err
	}

	summary.ReturningClients, summary.Degraded = s.countReturningClients(ctx, start, salonID)

	return summary, nil
}

// countReturningClients đếm khách có nhiều hơn một lịch hẹn bắt đầu trong kỳ.
// Lỗi pipeline không làm hỏng cả báo cáo: kết quả quy về 0 và đánh dấu degraded.
func (s *SummaryService) countReturningClients(ctx context.Context, start int64, salonID *primitive.ObjectID) (int64, bool) {
	match := scopedFilter("startTime", start, salonID)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$clientId",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": 1}}}},
		{{Key: "$count", Value: "returningClients"}},
	}

	results, err := s.store.Aggregate(ctx, global.MongoDB_ColNames.Bookings, pipeline)
	if err != nil {
		logger.WithModule("analytics").WithError(err).Warn("Pipeline đếm khách quay lại thất bại, quy về 0")
		return 0, true
	}

	if len(results) == 0 {
		return 0, false
	}
	return asInt64(results[0]["returningClients"]), false
}
