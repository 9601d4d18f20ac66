package analyticsdto

// SummaryResponse kết quả tổng hợp số liệu của salon trong một kỳ báo cáo.
// Tên field giữ dạng snake_case để tương thích với các dashboard đang dùng API này.
type SummaryResponse struct {
	Period           string  `json:"period"`            // Kỳ báo cáo: 7d | 30d | 90d | mtd
	TotalRevenue     float64 `json:"total_revenue"`     // Tổng doanh thu các giao dịch succeeded trong kỳ
	TotalBookings    int64   `json:"total_bookings"`    // Số lịch hẹn tạo mới trong kỳ
	NewClients       int64   `json:"new_clients"`       // Số khách hàng tạo mới trong kỳ
	ReturningClients int64   `json:"returning_clients"` // Số khách có nhiều hơn một lịch hẹn trong kỳ
}

// FleetMetricsResponse số liệu vận hành toàn hệ thống, dành cho quản trị.
type FleetMetricsResponse struct {
	TotalSalons       int64   `json:"total_salons"`        // Tổng số salon đã đăng ký
	ActivePaidSalons  int64   `json:"active_paid_salons"`  // Số salon trả phí (active hoặc past_due)
	TrialSalons       int64   `json:"trial_salons"`        // Số salon đang dùng thử
	Mrr               float64 `json:"mrr"`                 // Doanh thu định kỳ hàng tháng
	Arr               float64 `json:"arr"`                 // Doanh thu định kỳ hàng năm (mrr x 12)
	Revenue30d        float64 `json:"revenue_30d"`         // Doanh thu succeeded trong 30 ngày gần nhất
	DailyActiveSalons int64   `json:"daily_active_salons"` // Số salon có lịch hẹn tạo trong 24 giờ qua
}
