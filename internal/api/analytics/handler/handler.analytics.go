// Package analyticshdl xử lý các request báo cáo số liệu.
package analyticshdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	analyticsdto "salon_os/internal/api/analytics/dto"
	analyticssvc "salon_os/internal/api/analytics/service"
	basehdl "salon_os/internal/api/base/handler"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// AnalyticsHandler xử lý báo cáo theo salon và báo cáo toàn hệ thống.
type AnalyticsHandler struct {
	summaryService *analyticssvc.SummaryService
	fleetService   *analyticssvc.FleetService
}

// NewAnalyticsHandler tạo instance mới của AnalyticsHandler
func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{
		summaryService: analyticssvc.NewSummaryService(),
		fleetService:   analyticssvc.NewFleetService(),
	}
}

// resolveSalonScope xác định phạm vi salon của báo cáo.
// Người dùng thuộc salon luôn bị giới hạn vào salon của mình; chỉ khi không có
// salon trong phiên thì mới dùng tham số salonId (hoặc toàn hệ thống nếu bỏ trống).
func resolveSalonScope(c fiber.Ctx) (*primitive.ObjectID, error) {
	if salonIDStr, ok := c.Locals("salon_id").(string); ok && salonIDStr != "" {
		salonID, err := primitive.ObjectIDFromHex(salonIDStr)
		if err != nil {
			return nil, common.ErrTokenInvalid
		}
		return &salonID, nil
	}

	if query := c.Query("salon_id", ""); query != "" {
		salonID, err := primitive.ObjectIDFromHex(query)
		if err != nil {
			return nil, common.ErrInvalidInput
		}
		return &salonID, nil
	}

	return nil, nil
}

// HandleSummary trả về số liệu tổng hợp trong kỳ (GET /analytics/summary?period=7d)
func (h *AnalyticsHandler) HandleSummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		salonID, err := resolveSalonScope(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		period := c.Query("period", analyticssvc.Period30d)
		if err := global.Validate.Var(period, "period_token"); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidPeriod)
			return nil
		}

		summary, err := h.summaryService.Summarize(c.Context(), salonID, period)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, analyticsdto.SummaryResponse{
			Period:           summary.Period,
			TotalRevenue:     summary.TotalRevenue,
			TotalBookings:    summary.TotalBookings,
			NewClients:       summary.NewClients,
			ReturningClients: summary.ReturningClients,
		}, nil)
		return nil
	})
}

// HandleFleetMetrics trả về số liệu toàn hệ thống (GET /admin/metrics)
func (h *AnalyticsHandler) HandleFleetMetrics(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		metrics, err := h.fleetService.Metrics(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, analyticsdto.FleetMetricsResponse{
			TotalSalons:       metrics.TotalSalons,
			ActivePaidSalons:  metrics.ActivePaidSalons,
			TrialSalons:       metrics.TrialSalons,
			Mrr:               metrics.Mrr,
			Arr:               metrics.Arr,
			Revenue30d:        metrics.Revenue30d,
			DailyActiveSalons: metrics.DailyActiveSalons,
		}, nil)
		return nil
	})
}
