// Package analyticssvc tổng hợp số liệu báo cáo cho salon và cho quản trị hệ thống.
//
// Service trong package này chỉ đọc dữ liệu, không ghi. Mọi truy cập MongoDB đi
// qua interface Store để có thể thay bằng store giả lập khi test.
package analyticssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salon_os/internal/common"
	"salon_os/internal/global"
)

// Store là cổng đọc dữ liệu của analytics, trỏ tới collection theo tên.
type Store interface {
	// Find trả về toàn bộ document khớp filter.
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)

	// CountDocuments đếm số document khớp filter.
	CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error)

	// Distinct trả về các giá trị khác nhau của field trong các document khớp filter.
	Distinct(ctx context.Context, collection string, field string, filter bson.M) ([]interface{}, error)

	// Aggregate chạy pipeline và trả về toàn bộ kết quả.
	Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error)
}

// mongoStore là implementation mặc định của Store, đọc qua RegistryCollections.
type mongoStore struct{}

// NewMongoStore tạo Store đọc trực tiếp từ MongoDB.
func NewMongoStore() Store {
	return &mongoStore{}
}

func (s *mongoStore) resolve(name string) (*mongo.Collection, error) {
	coll, exist := global.RegistryCollections.Get(name)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", name, common.ErrNotFound)
	}
	return coll, nil
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	coll, err := s.resolve(collection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

func (s *mongoStore) CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	coll, err := s.resolve(collection)
	if err != nil {
		return 0, err
	}

	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

func (s *mongoStore) Distinct(ctx context.Context, collection string, field string, filter bson.M) ([]interface{}, error) {
	coll, err := s.resolve(collection)
	if err != nil {
		return nil, err
	}

	values, err := coll.Distinct(ctx, field, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

func (s *mongoStore) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error) {
	coll, err := s.resolve(collection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// asFloat ép giá trị số từ bson.M về float64.
// MongoDB có thể trả về int32/int64/float64 tùy cách dữ liệu được ghi.
func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

// asInt64 ép giá trị số từ bson.M về int64.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
