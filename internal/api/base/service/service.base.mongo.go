// package basesvc cung cấp các service cơ bản cho việc tương tác với MongoDB
package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cwc_water/internal/common"
)

// ====================================
// INTERFACE VÀ STRUCT
// ====================================

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc tương tác với MongoDB
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongo[Model any] interface {
	// 1.1 Thao tác Insert
	InsertMany(ctx context.Context, data []Model) (int64, error)

	// 1.2 Thao tác Find
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)

	// 1.3 Thao tác Delete
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)

	// 1.4 Các thao tác khác
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

// BaseServiceMongoImpl định nghĩa struct triển khai các phương thức cơ bản cho service.
// Collection được resolve lười qua hàm resolve: kết nối store chỉ mở ở thao tác
// đầu tiên, store không khả dụng trả về lỗi cho thao tác đó thay vì chặn khởi động.
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongoImpl[T any] struct {
	resolve func() (*mongo.Collection, error) // Hàm resolve collection MongoDB
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl
// Parameters:
//   - resolve: Hàm resolve collection MongoDB (lười)
//
// Returns:
//   - *BaseServiceMongoImpl[T]: Instance mới của BaseServiceMongoImpl
func NewBaseServiceMongo[T any](resolve func() (*mongo.Collection, error)) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		resolve: resolve,
	}
}

// ====================================
// NHÓM 1: CÁC HÀM CHUẨN MONGODB DRIVER
// ====================================

// 1.1 Thao tác Insert
// -------------------

// InsertMany tạo nhiều bản ghi trong database, trả về số bản ghi đã tạo
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	collection, err := s.resolve()
	if err != nil {
		return 0, err
	}

	documents := make([]interface{}, 0, len(data))
	for _, item := range data {
		documents = append(documents, item)
	}

	result, err := collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return int64(len(result.InsertedIDs)), nil
}

// 1.2 Thao tác Find
// -----------------

// Find tìm nhiều bản ghi theo filter
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	collection, err := s.resolve()
	if err != nil {
		return nil, err
	}

	// Xử lý filter rỗng hoặc nil
	if filter == nil {
		filter = bson.D{}
	} else {
		// Kiểm tra nếu filter là map rỗng, chuyển thành bson.D{}
		if filterMap, ok := filter.(map[string]interface{}); ok && len(filterMap) == 0 {
			filter = bson.D{}
		}
	}

	if opts == nil {
		opts = options.Find()
	}

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Đảm bảo luôn trả về mảng, không phải nil
	if results == nil {
		results = []T{}
	}

	return results, nil
}

// 1.3 Thao tác Delete
// -------------------

// DeleteMany xóa nhiều bản ghi theo filter, trả về số bản ghi đã xóa
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	collection, err := s.resolve()
	if err != nil {
		return 0, err
	}

	if filter == nil {
		filter = bson.D{}
	}

	result, err := collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return result.DeletedCount, nil
}

// 1.4 Các thao tác khác
// ---------------------

// CountDocuments đếm số bản ghi theo filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	collection, err := s.resolve()
	if err != nil {
		return 0, err
	}

	if filter == nil {
		filter = bson.D{}
	}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return count, nil
}
