package authsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "salon_os/internal/api/auth/models"
	basesvc "salon_os/internal/api/base/service"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// UserService xử lý CRUD người dùng.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewUserService tạo UserService mới.
func NewUserService() (*UserService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Users, common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](coll),
	}, nil
}

// FindActiveById tìm user còn hoạt động theo id.
func (s *UserService) FindActiveById(ctx context.Context, id primitive.ObjectID) (*authmodels.User, error) {
	user, err := s.FindOne(ctx, bson.M{"_id": id, "isActive": true}, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SalonService xử lý CRUD salon.
type SalonService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.Salon]
}

// NewSalonService tạo SalonService mới.
func NewSalonService() (*SalonService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Salons)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Salons, common.ErrNotFound)
	}
	return &SalonService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.Salon](coll),
	}, nil
}

// DeleteExpiredOTPs xóa các mã OTP đã hết hạn hoặc đã dùng, trả về số bản ghi bị xóa.
func (s *OTPService) DeleteExpiredOTPs(ctx context.Context) (int64, error) {
	now := time.Now().UnixMilli()
	return s.DeleteMany(ctx, bson.M{"$or": []bson.M{
		{"expiresAt": bson.M{"$lt": now}},
		{"used": true},
	}})
}

// DeleteExpiredTokens xóa các verification token đã hết hạn, trả về số bản ghi bị xóa.
func (s *VerificationTokenService) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": time.Now().UnixMilli()}})
}
