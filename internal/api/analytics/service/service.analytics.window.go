package analyticssvc

import (
	"time"

	"salon_os/internal/common"
)

// Các kỳ báo cáo được hỗ trợ.
const (
	Period7d  = "7d"
	Period30d = "30d"
	Period90d = "90d"
	PeriodMtd = "mtd"
)

// ResolveWindowStart quy đổi kỳ báo cáo thành mốc bắt đầu (Unix ms, UTC).
// mtd tính từ 00:00:00 UTC ngày đầu tháng hiện tại; các kỳ Nd lùi đúng N ngày
// so với thời điểm now.
func ResolveWindowStart(period string, now time.Time) (int64, error) {
	now = now.UTC()

	switch period {
	case Period7d:
		return now.AddDate(0, 0, -7).UnixMilli(), nil
	case Period30d:
		return now.AddDate(0, 0, -30).UnixMilli(), nil
	case Period90d:
		return now.AddDate(0, 0, -90).UnixMilli(), nil
	case PeriodMtd:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).UnixMilli(), nil
	default:
		return 0, common.ErrInvalidPeriod
	}
}
