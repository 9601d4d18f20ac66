// Package analyticssvc - Test quy đổi kỳ báo cáo thành mốc bắt đầu.
package analyticssvc

import (
	"testing"
	"time"

	"salon_os/internal/common"
)

func TestResolveWindowStart_FixedDays(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		period string
		days   int
	}{
		{Period7d, 7},
		{Period30d, 30},
		{Period90d, 90},
	}

	for _, tc := range cases {
		start, err := ResolveWindowStart(tc.period, now)
		if err != nil {
			t.Fatalf("ResolveWindowStart(%s) trả về lỗi: %v", tc.period, err)
		}
		want := now.AddDate(0, 0, -tc.days).UnixMilli()
		if start != want {
			t.Errorf("ResolveWindowStart(%s) = %d, muốn %d", tc.period, start, want)
		}
	}
}

func TestResolveWindowStart_MonthToDate(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	start, err := ResolveWindowStart(PeriodMtd, now)
	if err != nil {
		t.Fatalf("ResolveWindowStart(mtd) trả về lỗi: %v", err)
	}

	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if start != want {
		t.Errorf("ResolveWindowStart(mtd) = %d, muốn đầu tháng %d", start, want)
	}
}

func TestResolveWindowStart_MtdNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// 05:00 ngày 1/8 tại UTC+7 vẫn là ngày 31/7 theo UTC
	now := time.Date(2026, 8, 1, 5, 0, 0, 0, loc)

	start, err := ResolveWindowStart(PeriodMtd, now)
	if err != nil {
		t.Fatalf("ResolveWindowStart(mtd) trả về lỗi: %v", err)
	}

	want := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if start != want {
		t.Errorf("ResolveWindowStart(mtd) phải tính theo tháng UTC: có %d, muốn %d", start, want)
	}
}

func TestResolveWindowStart_InvalidPeriod(t *testing.T) {
	for _, period := range []string{"", "1d", "365d", "MTD", "7D"} {
		if _, err := ResolveWindowStart(period, time.Now()); err != common.ErrInvalidPeriod {
			t.Errorf("ResolveWindowStart(%q) phải trả về ErrInvalidPeriod, có: %v", period, err)
		}
	}
}
