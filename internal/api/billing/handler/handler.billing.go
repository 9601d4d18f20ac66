// Package billinghdl xử lý các request thanh toán và thuê bao.
package billinghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "salon_os/internal/api/base/handler"
	billingdto "salon_os/internal/api/billing/dto"
	billingmodels "salon_os/internal/api/billing/models"
	billingsvc "salon_os/internal/api/billing/service"
	"salon_os/internal/common"
)

// TransactionHandler xử lý CRUD giao dịch qua BaseHandler, kèm route ghi nhận và đổi trạng thái.
type TransactionHandler struct {
	*basehdl.BaseHandler[billingmodels.Transaction, billingdto.TransactionCreateInput, billingdto.TransactionUpdateInput]
	transactionService *billingsvc.TransactionService
}

// NewTransactionHandler tạo instance mới của TransactionHandler
func NewTransactionHandler() (*TransactionHandler, error) {
	transactionService, err := billingsvc.NewTransactionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[billingmodels.Transaction, billingdto.TransactionCreateInput, billingdto.TransactionUpdateInput](transactionService)
	return &TransactionHandler{
		BaseHandler:        baseHandler,
		transactionService: transactionService,
	}, nil
}

// HandleCreateTransaction ghi nhận giao dịch mới cho salon hiện tại (POST /billing/transactions/record)
func (h *TransactionHandler) HandleCreateTransaction(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(billingdto.TransactionCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

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

		tx := billingmodels.Transaction{
			SalonID:   salonID,
			Amount:    input.Amount,
			Currency:  input.Currency,
			Purpose:   input.Purpose,
			Status:    input.Status,
			Timestamp: input.Timestamp,
		}

		created, err := h.transactionService.CreateTransaction(c.Context(), tx)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleMarkStatus chuyển trạng thái giao dịch (PUT /billing/transactions/status/:id?value=succeeded)
func (h *TransactionHandler) HandleMarkStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		status := c.Query("value", "")
		tx, err := h.transactionService.MarkStatus(c.Context(), id, status)
		h.HandleResponse(c, tx, err)
		return nil
	})
}

// SubscriptionHandler xử lý CRUD gói thuê bao qua BaseHandler.
type SubscriptionHandler struct {
	*basehdl.BaseHandler[billingmodels.Subscription, billingdto.SubscriptionCreateInput, billingdto.SubscriptionUpdateInput]
	subscriptionService *billingsvc.SubscriptionService
}

// NewSubscriptionHandler tạo instance mới của SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := billingsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[billingmodels.Subscription, billingdto.SubscriptionCreateInput, billingdto.SubscriptionUpdateInput](subscriptionService)
	return &SubscriptionHandler{
		BaseHandler:         baseHandler,
		subscriptionService: subscriptionService,
	}, nil
}

// HandleMySubscription trả về gói thuê bao của salon hiện tại (GET /billing/subscriptions/me)
func (h *SubscriptionHandler) HandleMySubscription(c fiber.Ctx) error {
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

		sub, err := h.subscriptionService.FindBySalon(c.Context(), salonID)
		h.HandleResponse(c, sub, err)
		return nil
	})
}

// HandleChangePlan đổi gói thuê bao của salon hiện tại (PUT /billing/subscriptions/plan)
func (h *SubscriptionHandler) HandleChangePlan(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(billingdto.SubscriptionUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if input.Plan == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

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

		sub, err := h.subscriptionService.ChangePlan(c.Context(), salonID, input.Plan, input.Mrr)
		h.HandleResponse(c, sub, err)
		return nil
	})
}
