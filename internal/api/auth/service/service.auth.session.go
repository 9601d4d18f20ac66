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
	"salon_os/internal/utility"
)

// SessionService quản lý phiên đăng nhập.
type SessionService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.Session]
}

// NewSessionService tạo SessionService mới.
func NewSessionService() (*SessionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sessions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Sessions, common.ErrNotFound)
	}
	return &SessionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.Session](coll),
	}, nil
}

// CreateSession tạo phiên đăng nhập mới cho user, hạn theo cấu hình Session_TTL_Days.
func (s *SessionService) CreateSession(ctx context.Context, userID primitive.ObjectID, salonID primitive.ObjectID) (*authmodels.Session, error) {
	token, err := utility.GenerateToken(32)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể sinh session token", common.StatusInternalServerError, err)
	}

	ttl := time.Duration(global.ServerConfig.Session_TTL_Days) * 24 * time.Hour
	session := authmodels.Session{
		UserID:    userID,
		SalonID:   salonID,
		Token:     token,
		ExpiresAt: time.Now().Add(ttl).UnixMilli(),
	}

	created, err := s.InsertOne(ctx, session)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByToken tìm phiên theo token và kiểm tra hạn.
func (s *SessionService) FindByToken(ctx context.Context, token string) (*authmodels.Session, error) {
	session, err := s.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.ErrTokenInvalid
		}
		return nil, err
	}

	if session.ExpiresAt < time.Now().UnixMilli() {
		return nil, common.ErrTokenExpired
	}

	return &session, nil
}

// DeleteExpired xóa các phiên đã hết hạn, trả về số phiên bị xóa.
// Được gọi định kỳ bởi worker dọn dẹp.
func (s *SessionService) DeleteExpired(ctx context.Context) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": time.Now().UnixMilli()}})
}
