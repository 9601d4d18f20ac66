package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// CustomBson dùng để thực hiện các thao tác bson tùy chỉnh
// như set, push, unset bằng cách sử dụng các struct.
type CustomBson struct{}

// BsonWrapper chứa các thao tác bson cơ bản ($set, $unset, $push, $addToSet).
type BsonWrapper struct {
	// Set sẽ đặt dữ liệu trong db.
	// Sau khi mã hóa thành bson, nó sẽ như { $set : {name : "Jack"}}
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset xóa một trường cụ thể. Nếu trường không tồn tại thì không làm gì cả.
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`

	// Push thêm một giá trị vào một mảng.
	Push interface{} `json:"$push,omitempty" bson:"$push,omitempty"`

	// AddToSet thêm một giá trị vào mảng trừ khi giá trị đã tồn tại.
	AddToSet interface{} `json:"$addToSet,omitempty" bson:"$addToSet,omitempty"`
}

// ToMap chuyển đổi một struct thành map thông qua bson marshal/unmarshal.
// Giữ nguyên tên trường theo tag bson của struct.
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, err
	}

	result := map[string]interface{}{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Set trả về bản đồ { $set: data } dùng cho update
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{Set: data})
}

// Push trả về bản đồ { $push: data } dùng cho update
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{Push: data})
}

// Unset trả về bản đồ { $unset: data } dùng cho update
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{Unset: data})
}

// AddToSet trả về bản đồ { $addToSet: data } dùng cho update
func (customBson *CustomBson) AddToSet(data interface{}) (map[string]interface{}, error) {
	return ToMap(BsonWrapper{AddToSet: data})
}
