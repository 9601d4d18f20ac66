// Package inventoryhdl xử lý các request kho hàng.
package inventoryhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	inventorydto "salon_os/internal/api/inventory/dto"
	inventorymodels "salon_os/internal/api/inventory/models"
	inventorysvc "salon_os/internal/api/inventory/service"
	basehdl "salon_os/internal/api/base/handler"
	"salon_os/internal/common"
)

// InventoryHandler xử lý CRUD kho hàng qua BaseHandler, kèm route low-stock và điều chỉnh số lượng.
type InventoryHandler struct {
	*basehdl.BaseHandler[inventorymodels.InventoryItem, inventorydto.InventoryItemCreateInput, inventorydto.InventoryItemUpdateInput]
	inventoryService *inventorysvc.InventoryService
}

// NewInventoryHandler tạo instance mới của InventoryHandler
func NewInventoryHandler() (*InventoryHandler, error) {
	inventoryService, err := inventorysvc.NewInventoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[inventorymodels.InventoryItem, inventorydto.InventoryItemCreateInput, inventorydto.InventoryItemUpdateInput](inventoryService)
	return &InventoryHandler{
		BaseHandler:      baseHandler,
		inventoryService: inventoryService,
	}, nil
}

// HandleLowStock trả về các mặt hàng sắp hết (quantity <= lowStockThreshold)
func (h *InventoryHandler) HandleLowStock(c fiber.Ctx) error {
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

		items, err := h.inventoryService.FindLowStock(c.Context(), salonID)
		h.HandleResponse(c, items, err)
		return nil
	})
}

// HandleAdjustQuantity điều chỉnh số lượng mặt hàng (PUT /inventory/adjust/:id?delta=-2)
func (h *InventoryHandler) HandleAdjustQuantity(c fiber.Ctx) error {
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

		delta, err := strconv.ParseFloat(c.Query("delta", ""), 64)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Tham số delta phải là một số",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		item, err := h.inventoryService.AdjustQuantity(c.Context(), objectID, delta)
		h.HandleResponse(c, item, err)
		return nil
	})
}
