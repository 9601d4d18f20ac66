// Package analyticssvc - Test số liệu toàn hệ thống với store giả lập.
package analyticssvc

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFleetMetrics_Computation(t *testing.T) {
	setupColNames()
	store := newFakeStore()
	store.counts["salons"] = 10
	store.counts["billing_subscriptions"] = 4 // cả hai count subscription dùng chung fake
	store.findResults["billing_subscriptions"] = []bson.M{
		{"mrr": float64(999)},
		{"mrr": float64(1999)},
		{"mrr": int32(500)},
	}
	store.findResults["billing_transactions"] = []bson.M{
		{"amount": float64(1200)},
		{"amount": float64(800)},
	}
	store.distincts["bookings"] = []interface{}{
		primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(),
	}

	svc := NewFleetServiceWithStore(store)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	metrics, err := svc.Metrics(context.Background())
	if err != nil {
		t.Fatalf("Metrics trả về lỗi: %v", err)
	}

	if metrics.TotalSalons != 10 {
		t.Errorf("TotalSalons = %d, muốn 10", metrics.TotalSalons)
	}
	if metrics.Mrr != 3498 {
		t.Errorf("Mrr = %v, muốn 3498", metrics.Mrr)
	}
	if metrics.Arr != 3498*12 {
		t.Errorf("Arr = %v, muốn Mrr x 12 = %v", metrics.Arr, 3498.0*12)
	}
	if metrics.Revenue30d != 2000 {
		t.Errorf("Revenue30d = %v, muốn 2000", metrics.Revenue30d)
	}
	if metrics.DailyActiveSalons != 3 {
		t.Errorf("DailyActiveSalons = %d, muốn 3", metrics.DailyActiveSalons)
	}
}

func TestFleetMetrics_PaidSubscriptionFilter(t *testing.T) {
	setupColNames()
	store := newFakeStore()

	svc := NewFleetServiceWithStore(store)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if _, err := svc.Metrics(context.Background()); err != nil {
		t.Fatalf("Metrics trả về lỗi: %v", err)
	}

	// MRR chỉ cộng các gói active và past_due
	subFilter := store.findFilters["billing_subscriptions"]
	statusCond, _ := subFilter["status"].(bson.M)
	statuses, _ := statusCond["$in"].([]string)
	if len(statuses) != 2 || statuses[0] != "active" || statuses[1] != "past_due" {
		t.Errorf("MRR phải tính trên gói active và past_due, có filter: %v", subFilter)
	}

	// Doanh thu 30 ngày chỉ tính giao dịch succeeded
	txFilter := store.findFilters["billing_transactions"]
	if txFilter["status"] != "succeeded" {
		t.Errorf("Revenue30d phải chặn status succeeded, có filter: %v", txFilter)
	}
	wantStart := now.AddDate(0, 0, -30).UnixMilli()
	if ts, _ := txFilter["timestamp"].(bson.M); ts["$gte"] != wantStart {
		t.Errorf("Revenue30d phải chặn timestamp >= %d, có: %v", wantStart, txFilter)
	}
}

func TestFleetMetrics_NoPaidSalons(t *testing.T) {
	setupColNames()
	store := newFakeStore()
	store.counts["salons"] = 2

	svc := NewFleetServiceWithStore(store)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	metrics, err := svc.Metrics(context.Background())
	if err != nil {
		t.Fatalf("Metrics trả về lỗi: %v", err)
	}
	if metrics.Mrr != 0 || metrics.Arr != 0 {
		t.Errorf("Không có gói trả phí thì Mrr/Arr phải bằng 0, có %v/%v", metrics.Mrr, metrics.Arr)
	}
	if metrics.DailyActiveSalons != 0 {
		t.Errorf("DailyActiveSalons = %d, muốn 0", metrics.DailyActiveSalons)
	}
}
