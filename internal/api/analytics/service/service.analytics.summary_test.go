// Package analyticssvc - Test tổng hợp số liệu theo kỳ với store giả lập.
package analyticssvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"salon_os/internal/global"
)

// fakeStore trả về dữ liệu cài sẵn theo tên collection và ghi lại filter nhận được.
type fakeStore struct {
	findResults map[string][]bson.M
	counts      map[string]int64
	distincts   map[string][]interface{}
	aggResults  []bson.M
	aggErr      error

	findFilters  map[string]bson.M
	countFilters map[string]bson.M
	aggPipeline  mongo.Pipeline
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		findResults:  map[string][]bson.M{},
		counts:       map[string]int64{},
		distincts:    map[string][]interface{}{},
		findFilters:  map[string]bson.M{},
		countFilters: map[string]bson.M{},
	}
}

func (f *fakeStore) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	f.findFilters[collection] = filter
	return f.findResults[collection], nil
}

func (f *fakeStore) CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	f.countFilters[collection] = filter
	return f.counts[collection], nil
}

func (f *fakeStore) Distinct(ctx context.Context, collection string, field string, filter bson.M) ([]interface{}, error) {
	return f.distincts[collection], nil
}

func (f *fakeStore) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error) {
	f.aggPipeline = pipeline
	if f.aggErr != nil {
		return nil, f.aggErr
	}
	return f.aggResults, nil
}

func setupColNames() {
	global.MongoDB_ColNames.Salons = "salons"
	global.MongoDB_ColNames.Clients = "crm_clients"
	global.MongoDB_ColNames.Bookings = "bookings"
	global.MongoDB_ColNames.Subscriptions = "billing_subscriptions"
	global.MongoDB_ColNames.Transactions = "billing_transactions"
}

func TestSummarize_SumsSucceededOnly(t *testing.T) {
	setupColNames()
	store := newFakeStore()
	store.findResults["billing_transactions"] = []bson.M{
		{"status": "succeeded", "amount": float64(300)},
		{"status": "failed", "amount": float64(999)},
		{"status": "pending", "amount": float64(50)},
		{"status": "succeeded", "amount": int32(200)},
	}
	store.counts["bookings"] = 4
	store.counts["crm_clients"] = 3
	store.aggResults = []bson.M{{"returningClients": int32(2)}}

	svc := NewSummaryServiceWithStore(store)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	salonID := primitive.NewObjectID()
	summary, err := svc.Summarize(context.Background(), &salonID, Period7d)
	if err != nil {
		t.Fatalf("Summarize trả về lỗi: %v", err)
	}

	if summary.TotalRevenue != 500 {
		t.Errorf("TotalRevenue = %v, muốn 500 (chỉ cộng giao dịch succeeded)", summary.TotalRevenue)
	}
	if summary.TotalBookings != 4 {
		t.Errorf("TotalBookings = %d, muốn 4", summary.TotalBookings)
	}
	if summary.NewClients != 3 {
		t.Errorf("NewClients = %d, muốn 3", summary.NewClients)
	}
	if summary.ReturningClients != 2 {
		t.Errorf("ReturningClients = %d, muốn 2", summary.ReturningClients)
	}
	if summary.Degraded {
		t.Error("Degraded phải là false khi pipeline chạy thành công")
	}
}

func TestSummarize_ScopesFiltersBySalon(t *testing.T) {
	setupColNames()
	store := newFakeStore()
	svc := NewSummaryServiceWithStore(store)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	salonID := primitive.NewObjectID()
	if _, err := svc.Summarize(context.Background(), &salonID, Period30d); err != nil {
		t.Fatalf("Summarize trả về lỗi: %v", err)
	}

	wantStart := now.AddDate(0, 0, -30).UnixMilli()

	txFilter := store.findFilters["billing_transactions"]
	if txFilter["salonId"] != salonID {
		t.Errorf("Filter giao dịch thiếu salonId: %v", txFilter)
	}
	if ts, _ := txFilter["timestamp"].(bson.M); ts["$gte"] != wantStart {
		t.Errorf("Filter giao dịch phải chặn theo timestamp >= %d, có: %v", wantStart, txFilter)
	}

	bookingFilter := store.countFilters["bookings"]
	if created, _ := bookingFilter["createdAt"].(bson.M); created["$gte"] != wantStart {
		t.Errorf("Lịch hẹn phải đếm theo createdAt, có filter: %v", bookingFilter)
	}

	clientFilter := store.countFilters["crm_clients"]
	if created, _ := clientFilter["createdAt"].(bson.M); created["$gte"] != wantStart {
		t.Errorf("Khách mới phải đếm theo createdAt, có filter: %v", clientFilter)
	}

	// Pipeline khách quay lại phải match theo startTime
	if len(store.aggPipeline) != 4 {
		t.Fatalf("Pipeline khách quay lại phải có 4 stage, có %d", len(store.aggPipeline))
	}
	match, _ := store.aggPipeline[0][0].Value.(bson.M)
	if _, ok := match["startTime"]; !ok {
		t.Errorf("Stage $match phải chặn theo startTime, có: %v", match)
	}
	if match["salonId"] != salonID {
		t.Errorf("Stage $match thiếu salonId: %v", match)
	}
}

func TestSummarize_SystemWideOmitsSalonFilter(t *testing.T) {
	setupColNames()
	store := newFakeStore()
	svc := NewSummaryServiceWithStore(store)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	if _, err := svc.Summarize(context.Background(), nil, Period7d); err != nil {
		t.Fatalf("Summarize trả về lỗi: %v", err)
	}

	if _, ok := store.findFilters["billing_transactions"]["salonId"]; ok {
		t.Error("Báo cáo toàn hệ thống không được chặn theo salonId")
	}
}

func TestSummarize_EmptyAggregateMeansZeroReturning(t *testing.T) {
	setupColNames()
	store := newFakeStore()
	store.aggResults = nil

	svc := NewSummaryServiceWithStore(store)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	summary, err := svc.Summarize(context.Background(), nil, Period7d)
	if err != nil {
		t.Fatalf("Summarize trả về lỗi: %v", err)
	}
	if summary.ReturningClients != 0 {
		t.Errorf("ReturningClients = %d, muốn 0 khi $count không trả document", summary.ReturningClients)
	}
	if summary.Degraded {
		t.Error("Kết quả rỗng không phải degraded")
	}
}

func TestSummarize_AggregateErrorDegradesToZero(t *testing.T) {
	setupColNames()
	store := newFakeStore()
	store.counts["bookings"] = 7
	store.aggErr = errors.New("pipeline bị từ chối")

	svc := NewSummaryServiceWithStore(store)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	summary, err := svc.Summarize(context.Background(), nil, Period7d)
	if err != nil {
		t.Fatalf("Lỗi pipeline không được làm hỏng cả báo cáo: %v", err)
	}
	if summary.ReturningClients != 0 {
		t.Errorf("ReturningClients = %d, muốn 0 khi pipeline lỗi", summary.ReturningClients)
	}
	if !summary.Degraded {
		t.Error("Degraded phải là true khi pipeline lỗi")
	}
	if summary.TotalBookings != 7 {
		t.Errorf("Các số liệu khác phải giữ nguyên, TotalBookings = %d muốn 7", summary.TotalBookings)
	}
}

func TestSummarize_InvalidPeriodRejected(t *testing.T) {
	setupColNames()
	svc := NewSummaryServiceWithStore(newFakeStore())

	if _, err := svc.Summarize(context.Background(), nil, "14d"); err == nil {
		t.Fatal("Summarize phải từ chối kỳ báo cáo không hợp lệ")
	}
}
