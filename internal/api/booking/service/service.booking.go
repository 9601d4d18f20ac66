// Package bookingsvc - Service lịch hẹn của salon (bookings).
package bookingsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingmodels "salon_os/internal/api/booking/models"
	basesvc "salon_os/internal/api/base/service"
	crmsvc "salon_os/internal/api/crm/service"
	"salon_os/internal/common"
	"salon_os/internal/global"
	"salon_os/internal/logger"
)

// BookingService xử lý CRUD và chuyển trạng thái lịch hẹn.
type BookingService struct {
	*basesvc.BaseServiceMongoImpl[bookingmodels.Booking]
	clientService *crmsvc.ClientService
}

// NewBookingService tạo BookingService mới.
func NewBookingService() (*BookingService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Bookings)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Bookings, common.ErrNotFound)
	}

	clientService, err := crmsvc.NewClientService()
	if err != nil {
		return nil, err
	}

	return &BookingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bookingmodels.Booking](coll),
		clientService:        clientService,
	}, nil
}

// InsertOne gán trạng thái mặc định trước khi ghi: lịch mới là confirmed, chưa thanh toán.
func (s *BookingService) InsertOne(ctx context.Context, booking bookingmodels.Booking) (bookingmodels.Booking, error) {
	if booking.Status == "" {
		booking.Status = bookingmodels.BookingStatusConfirmed
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = bookingmodels.PaymentStatusUnpaid
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, booking)
}

// UpdateStatus chuyển trạng thái lịch hẹn.
// Khi chuyển sang completed, đồng thời cập nhật lastVisit của khách.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID primitive.ObjectID, status string) (*bookingmodels.Booking, error) {
	switch status {
	case bookingmodels.BookingStatusPending,
		bookingmodels.BookingStatusConfirmed,
		bookingmodels.BookingStatusCompleted,
		bookingmodels.BookingStatusCancelled,
		bookingmodels.BookingStatusNoShow:
	default:
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái lịch hẹn không hợp lệ: %s", status),
			common.StatusBadRequest,
			nil,
		)
	}

	booking, err := s.UpdateById(ctx, bookingID, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}

	if status == bookingmodels.BookingStatusCompleted && !booking.ClientID.IsZero() {
		if err := s.clientService.TouchLastVisit(ctx, booking.ClientID, booking.StartTime); err != nil {
			// Không chặn luồng chính khi cập nhật lastVisit thất bại
			logger.WithModule("booking").WithError(err).Warn("Không thể cập nhật lastVisit cho khách")
		}
	}

	return &booking, nil
}
