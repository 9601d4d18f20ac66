// Package basehdl - Test filter validation và transform DTO sang Model.
package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type filterTestModel struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	SalonID primitive.ObjectID `bson:"salonId"`
	Name    string             `bson:"name"`
	Amount  float64            `bson:"amount"`
}

type filterTestInput struct {
	Name   string  `bson:"name"`
	Amount float64 `bson:"amount"`
}

type noSalonModel struct {
	Name string `bson:"name"`
}

func newTestHandler() *BaseHandler[filterTestModel, filterTestInput, filterTestInput] {
	return NewBaseHandler[filterTestModel, filterTestInput, filterTestInput](nil)
}

func TestNormalizeFilter_ConvertsHexToObjectID(t *testing.T) {
	h := newTestHandler()
	oid := primitive.NewObjectID()

	filter := h.normalizeFilter(map[string]interface{}{
		"_id":      oid.Hex(),
		"clientId": oid.Hex(),
		"name":     oid.Hex(), // không phải field id, giữ nguyên string
		"salonId":  "not-a-hex",
	})

	assert.Equal(t, oid, filter["_id"], "_id dạng hex phải được đổi thành ObjectID")
	assert.Equal(t, oid, filter["clientId"], "field *Id dạng hex phải được đổi thành ObjectID")
	assert.Equal(t, oid.Hex(), filter["name"], "field thường không được đổi kiểu")
	assert.Equal(t, "not-a-hex", filter["salonId"], "giá trị không phải hex phải giữ nguyên")
}

func TestValidateFilter_DeniedField(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{"password": "x"})
	require.Error(t, err, "filter theo trường password phải bị từ chối")
}

func TestValidateFilter_Operators(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{
		"amount": map[string]interface{}{"$gte": 100},
	})
	assert.NoError(t, err, "$gte là operator được phép")

	err = h.validateFilter(map[string]interface{}{
		"name": map[string]interface{}{"$where": "this.a == 1"},
	})
	require.Error(t, err, "$where phải bị chặn")
}

func TestValidateFilter_MaxFields(t *testing.T) {
	h := newTestHandler()

	filter := map[string]interface{}{}
	for i := 0; i < 11; i++ {
		filter[string(rune('a'+i))] = i
	}
	require.Error(t, h.validateFilter(filter), "filter quá 10 field phải bị từ chối")
}

func TestTransformCreateInputToModel(t *testing.T) {
	h := newTestHandler()

	input := filterTestInput{Name: "Gội đầu dưỡng sinh", Amount: 150}
	model, err := h.TransformCreateInputToModel(&input)
	require.NoError(t, err)

	assert.Equal(t, "Gội đầu dưỡng sinh", model.Name)
	assert.Equal(t, float64(150), model.Amount)
	assert.True(t, model.SalonID.IsZero(), "SalonID phải để trống, middleware sẽ gán sau")
}

func TestHasSalonIDField(t *testing.T) {
	withSalon := newTestHandler()
	assert.True(t, withSalon.hasSalonIDField())

	withoutSalon := NewBaseHandler[noSalonModel, filterTestInput, filterTestInput](nil)
	assert.False(t, withoutSalon.hasSalonIDField())
}
