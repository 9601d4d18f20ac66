// Package bookinghdl xử lý các request đặt lịch.
package bookinghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingdto "salon_os/internal/api/booking/dto"
	bookingmodels "salon_os/internal/api/booking/models"
	bookingsvc "salon_os/internal/api/booking/service"
	basehdl "salon_os/internal/api/base/handler"
	"salon_os/internal/common"
)

// BookingHandler xử lý CRUD lịch hẹn qua BaseHandler, kèm route chuyển trạng thái.
type BookingHandler struct {
	*basehdl.BaseHandler[bookingmodels.Booking, bookingdto.BookingCreateInput, bookingdto.BookingUpdateInput]
	bookingService *bookingsvc.BookingService
}

// NewBookingHandler tạo instance mới của BookingHandler
func NewBookingHandler() (*BookingHandler, error) {
	bookingService, err := bookingsvc.NewBookingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[bookingmodels.Booking, bookingdto.BookingCreateInput, bookingdto.BookingUpdateInput](bookingService)
	return &BookingHandler{
		BaseHandler:    baseHandler,
		bookingService: bookingService,
	}, nil
}

// HandleUpdateStatus chuyển trạng thái lịch hẹn (PUT /bookings/status/:id?value=confirmed)
func (h *BookingHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		status := c.Query("value", "")
		if status == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tham số value (trạng thái mới) trong query string",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		booking, err := h.bookingService.UpdateStatus(c.Context(), objectID, status)
		h.HandleResponse(c, booking, err)
		return nil
	})
}
