// Package authsvc - Service xác thực bằng OTP qua số điện thoại.
package authsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	authmodels "salon_os/internal/api/auth/models"
	basesvc "salon_os/internal/api/base/service"
	"salon_os/internal/common"
	"salon_os/internal/global"
	"salon_os/internal/utility"
)

// OTPService xử lý luồng gửi và xác thực mã OTP.
type OTPService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.OTP]
	tokenService *VerificationTokenService
}

// NewOTPService tạo OTPService mới.
func NewOTPService() (*OTPService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OTPs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.OTPs, common.ErrNotFound)
	}

	tokenService, err := NewVerificationTokenService()
	if err != nil {
		return nil, err
	}

	return &OTPService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.OTP](coll),
		tokenService:         tokenService,
	}, nil
}

// StartOTP sinh mã OTP mới cho số điện thoại và lưu vào database.
// Mã cũ chưa dùng của cùng số điện thoại sẽ bị vô hiệu (đánh dấu used).
func (s *OTPService) StartOTP(ctx context.Context, phone string) (*authmodels.OTP, error) {
	// Vô hiệu các mã cũ chưa dùng của số này
	_, err := s.UpdateMany(ctx, bson.M{"phone": phone, "used": false}, bson.M{"$set": bson.M{"used": true}}, nil)
	if err != nil && err != common.ErrNotFound {
		return nil, err
	}

	code, err := utility.GenerateOTPCode(6)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể sinh mã OTP", common.StatusInternalServerError, err)
	}

	ttl := time.Duration(global.ServerConfig.OTP_TTL_Minutes) * time.Minute
	otp := authmodels.OTP{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(ttl).UnixMilli(),
		Used:      false,
	}

	created, err := s.InsertOne(ctx, otp)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// VerifyOTP kiểm tra mã OTP, đánh dấu đã dùng và phát hành verification token.
// Token này được dùng một lần trong bước onboarding.
func (s *OTPService) VerifyOTP(ctx context.Context, phone string, code string) (*authmodels.VerificationToken, error) {
	now := time.Now().UnixMilli()

	// Lấy mã mới nhất của số điện thoại
	opts := mongoopts.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	otp, err := s.FindOne(ctx, bson.M{"phone": phone, "used": false}, opts)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.ErrOTPInvalid
		}
		return nil, err
	}

	if otp.ExpiresAt < now {
		return nil, common.ErrOTPExpired
	}
	if otp.Code != code {
		return nil, common.ErrOTPInvalid
	}

	// Đánh dấu đã dùng để chặn replay
	if _, err := s.UpdateById(ctx, otp.ID, bson.M{"$set": bson.M{"used": true}}); err != nil {
		return nil, err
	}

	return s.tokenService.Issue(ctx, phone)
}

// VerificationTokenService quản lý token trung gian sau bước verify OTP.
type VerificationTokenService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.VerificationToken]
}

// NewVerificationTokenService tạo VerificationTokenService mới.
func NewVerificationTokenService() (*VerificationTokenService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VerificationTokens)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.VerificationTokens, common.ErrNotFound)
	}
	return &VerificationTokenService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.VerificationToken](coll),
	}, nil
}

// Issue phát hành verification token mới cho số điện thoại, hạn 15 phút.
func (s *VerificationTokenService) Issue(ctx context.Context, phone string) (*authmodels.VerificationToken, error) {
	token, err := utility.GenerateToken(32)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể sinh token xác thực", common.StatusInternalServerError, err)
	}

	doc := authmodels.VerificationToken{
		Phone:     phone,
		Token:     token,
		ExpiresAt: time.Now().Add(15 * time.Minute).UnixMilli(),
	}

	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Consume kiểm tra token hợp lệ, xóa nó và trả về số điện thoại đã verify.
func (s *VerificationTokenService) Consume(ctx context.Context, token string) (string, error) {
	doc, err := s.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return "", common.ErrTokenInvalid
		}
		return "", err
	}

	if doc.ExpiresAt < time.Now().UnixMilli() {
		return "", common.ErrTokenExpired
	}

	// Token dùng một lần
	if err := s.DeleteById(ctx, doc.ID); err != nil && err != common.ErrNotFound {
		return "", err
	}

	return doc.Phone, nil
}
