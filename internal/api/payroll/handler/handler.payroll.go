// Package payrollhdl xử lý các request nhân sự và bảng lương.
package payrollhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	payrolldto "salon_os/internal/api/payroll/dto"
	payrollmodels "salon_os/internal/api/payroll/models"
	payrollsvc "salon_os/internal/api/payroll/service"
	basehdl "salon_os/internal/api/base/handler"
	"salon_os/internal/common"
)

// StaffHandler xử lý CRUD nhân viên qua BaseHandler.
type StaffHandler struct {
	*basehdl.BaseHandler[payrollmodels.Staff, payrolldto.StaffCreateInput, payrolldto.StaffUpdateInput]
	staffService *payrollsvc.StaffService
}

// NewStaffHandler tạo instance mới của StaffHandler
func NewStaffHandler() (*StaffHandler, error) {
	staffService, err := payrollsvc.NewStaffService()
	if err != nil {
		return nil, fmt.Errorf("failed to create staff service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[payrollmodels.Staff, payrolldto.StaffCreateInput, payrolldto.StaffUpdateInput](staffService)
	return &StaffHandler{
		BaseHandler:  baseHandler,
		staffService: staffService,
	}, nil
}

// PayrollHandler xử lý CRUD bảng lương qua BaseHandler, kèm route lọc theo tháng.
type PayrollHandler struct {
	*basehdl.BaseHandler[payrollmodels.PayrollEntry, payrolldto.PayrollEntryCreateInput, payrolldto.PayrollEntryUpdateInput]
	payrollService *payrollsvc.PayrollService
}

// NewPayrollHandler tạo instance mới của PayrollHandler
func NewPayrollHandler() (*PayrollHandler, error) {
	payrollService, err := payrollsvc.NewPayrollService()
	if err != nil {
		return nil, fmt.Errorf("failed to create payroll service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[payrollmodels.PayrollEntry, payrolldto.PayrollEntryCreateInput, payrolldto.PayrollEntryUpdateInput](payrollService)
	return &PayrollHandler{
		BaseHandler:    baseHandler,
		payrollService: payrollService,
	}, nil
}

// HandleFindByMonth trả về bảng lương của salon trong tháng (GET /payroll/by-month?month=2026-08)
func (h *PayrollHandler) HandleFindByMonth(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		salonIDStr, ok := c.Locals("salon_id").(string)
		if !ok || salonIDStr == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		salonID, err := primitive.ObjectIDFromHex(salonIDStr)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		month := c.Query("month", "")
		entries, err := h.payrollService.FindByMonth(c.Context(), salonID, month)
		h.HandleResponse(c, entries, err)
		return nil
	})
}
