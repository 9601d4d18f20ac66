// Package basehdl cung cấp base handler với các chức năng CRUD cơ bản
// và các tiện ích xử lý request/response cho các domain handler.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "salon_os/internal/api/base/service"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// FilterOptions cấu hình cho việc validate filter
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"key",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ValidateInput thực hiện validate dữ liệu đầu vào với validator toàn cục
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// TransformCreateInputToModel chuyển DTO tạo mới sang Model qua bson round-trip.
// Các field trùng tag bson giữa DTO và Model sẽ được map tự động.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	data, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}

	var model T
	if err := bson.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// ProcessFilter xử lý và validate filter từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Normalize filter: chuyển đổi các string ObjectId thành ObjectID
	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển các giá trị hex 24 ký tự của field _id hoặc *Id thành ObjectID
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	for key, value := range filter {
		isIDField := key == "_id" || len(key) > 2 && key[len(key)-2:] == "Id"
		if !isIDField {
			continue
		}
		if strVal, ok := value.(string); ok && primitive.IsValidObjectID(strVal) {
			if oid, err := primitive.ObjectIDFromHex(strVal); err == nil {
				filter[key] = oid
			}
		}
	}
	return filter
}

// validateFilter kiểm tra filter theo cấu hình FilterOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Filter vượt quá số lượng field cho phép (%d)", h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for key, value := range filter {
		for _, denied := range h.filterOptions.DeniedFields {
			if key == denied {
				return common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Không được phép filter theo trường %s", key),
					common.StatusBadRequest,
					nil,
				)
			}
		}

		// Kiểm tra operators lồng trong value
		if valueMap, ok := value.(map[string]interface{}); ok {
			for op := range valueMap {
				if len(op) > 0 && op[0] == '$' {
					allowed := false
					for _, allowedOp := range h.filterOptions.AllowedOperators {
						if op == allowedOp {
							allowed = true
							break
						}
					}
					if !allowed {
						return common.NewError(
							common.ErrCodeValidationInput,
							fmt.Sprintf("Operator %s không được phép sử dụng trong filter", op),
							common.StatusBadRequest,
							nil,
						)
					}
				}
			}
		}
	}

	return nil
}

// ProcessFindOptions parse options từ query string cho thao tác Find.
// Hỗ trợ sort, projection, limit, skip dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFindOptions(c fiber.Ctx) (*mongoopts.FindOptions, error) {
	optionsStr := c.Query("options", "{}")

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(optionsStr), &raw); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	opts := mongoopts.Find()
	if sortVal, ok := raw["sort"].(map[string]interface{}); ok {
		sort := bson.D{}
		for key, val := range sortVal {
			if num, ok := val.(float64); ok {
				sort = append(sort, bson.E{Key: key, Value: int(num)})
			}
		}
		opts.SetSort(sort)
	}
	if projVal, ok := raw["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projVal)
	}
	if limitVal, ok := raw["limit"].(float64); ok && limitVal > 0 {
		opts.SetLimit(int64(limitVal))
	}
	if skipVal, ok := raw["skip"].(float64); ok && skipVal >= 0 {
		opts.SetSkip(int64(skipVal))
	}

	return opts, nil
}

// ParsePagination lấy page và limit từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}

// hasSalonIDField kiểm tra model có field SalonID hay không (phân quyền dữ liệu theo salon)
func (h *BaseHandler[T, CreateInput, UpdateInput]) hasSalonIDField() bool {
	var model T
	t := reflect.TypeOf(model)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	_, found := t.FieldByName("SalonID")
	return found
}

// getActiveSalonID lấy salon id từ context (đã được middleware auth gắn vào Locals)
func (h *BaseHandler[T, CreateInput, UpdateInput]) getActiveSalonID(c fiber.Ctx) *primitive.ObjectID {
	salonIDStr, ok := c.Locals("salon_id").(string)
	if !ok || salonIDStr == "" {
		return nil
	}

	salonID, err := primitive.ObjectIDFromHex(salonIDStr)
	if err != nil {
		return nil
	}
	return &salonID
}

// applySalonFilter tự động thêm filter salonId nếu model có field SalonID.
// Đảm bảo mọi truy vấn CRUD chỉ thấy dữ liệu của salon đang đăng nhập.
func (h *BaseHandler[T, CreateInput, UpdateInput]) applySalonFilter(c fiber.Ctx, baseFilter map[string]interface{}) map[string]interface{} {
	if !h.hasSalonIDField() {
		return baseFilter
	}

	salonID := h.getActiveSalonID(c)
	if salonID == nil {
		return baseFilter
	}

	if baseFilter == nil {
		baseFilter = map[string]interface{}{}
	}
	baseFilter["salonId"] = *salonID
	return baseFilter
}

// setSalonID gán salon id vào model (nếu có field SalonID) trước khi insert
func (h *BaseHandler[T, CreateInput, UpdateInput]) setSalonID(model interface{}, salonID primitive.ObjectID) {
	val := reflect.ValueOf(model)
	if val.Kind() != reflect.Ptr {
		return
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return
	}

	field := val.FieldByName("SalonID")
	if !field.IsValid() || !field.CanSet() {
		return
	}
	if field.Type() == reflect.TypeOf(primitive.ObjectID{}) {
		field.Set(reflect.ValueOf(salonID))
	}
}
