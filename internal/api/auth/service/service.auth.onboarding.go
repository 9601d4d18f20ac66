package authsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	authdto "salon_os/internal/api/auth/dto"
	authmodels "salon_os/internal/api/auth/models"
	basesvc "salon_os/internal/api/base/service"
	billingmodels "salon_os/internal/api/billing/models"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// OnboardingService xử lý luồng onboarding: tạo salon + owner user + gói trial + phiên đăng nhập.
type OnboardingService struct {
	salonService   *basesvc.BaseServiceMongoImpl[authmodels.Salon]
	userService    *basesvc.BaseServiceMongoImpl[authmodels.User]
	subService     *basesvc.BaseServiceMongoImpl[billingmodels.Subscription]
	tokenService   *VerificationTokenService
	sessionService *SessionService
}

// NewOnboardingService tạo OnboardingService mới.
func NewOnboardingService() (*OnboardingService, error) {
	salonColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Salons)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Salons, common.ErrNotFound)
	}
	userColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Users, common.ErrNotFound)
	}
	subColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Subscriptions, common.ErrNotFound)
	}

	tokenService, err := NewVerificationTokenService()
	if err != nil {
		return nil, err
	}
	sessionService, err := NewSessionService()
	if err != nil {
		return nil, err
	}

	return &OnboardingService{
		salonService:   basesvc.NewBaseServiceMongo[authmodels.Salon](salonColl),
		userService:    basesvc.NewBaseServiceMongo[authmodels.User](userColl),
		subService:     basesvc.NewBaseServiceMongo[billingmodels.Subscription](subColl),
		tokenService:   tokenService,
		sessionService: sessionService,
	}, nil
}

// Onboard hoàn tất đăng ký: tiêu thụ verification token, tạo salon, owner user,
// gói trial và phiên đăng nhập đầu tiên.
func (s *OnboardingService) Onboard(ctx context.Context, input *authdto.OnboardingInput) (*authdto.OnboardingResponse, error) {
	// Token phải được phát hành cho đúng số điện thoại đăng ký
	verifiedPhone, err := s.tokenService.Consume(ctx, input.VerificationToken)
	if err != nil {
		return nil, err
	}
	if verifiedPhone != input.Phone {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"Số điện thoại không khớp với token xác thực",
			common.StatusBadRequest,
			nil,
		)
	}

	// Mỗi số điện thoại chỉ được tạo một tài khoản owner
	existing, err := s.userService.DocumentExists(ctx, bson.M{"phone": input.Phone})
	if err != nil {
		return nil, err
	}
	if existing {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			"Số điện thoại đã được đăng ký",
			common.StatusConflict,
			nil,
		)
	}

	country := input.Country
	if country == "" {
		country = "IN"
	}

	salon, err := s.salonService.InsertOne(ctx, authmodels.Salon{
		Name:           input.SalonName,
		Phone:          input.Phone,
		City:           input.City,
		Country:        country,
		Plan:           authmodels.PlanTrial,
		OnboardingDone: true,
	})
	if err != nil {
		return nil, err
	}

	user, err := s.userService.InsertOne(ctx, authmodels.User{
		Role:     authmodels.RoleOwner,
		Name:     input.OwnerName,
		Phone:    input.Phone,
		SalonID:  salon.ID,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}

	// Gói trial theo số ngày cấu hình
	now := time.Now()
	trialEnd := now.Add(time.Duration(global.ServerConfig.Trial_Days) * 24 * time.Hour)
	if _, err := s.subService.InsertOne(ctx, billingmodels.Subscription{
		SalonID:   salon.ID,
		Plan:      authmodels.PlanTrial,
		Status:    billingmodels.SubscriptionStatusTrial,
		StartDate: now.UnixMilli(),
		EndDate:   trialEnd.UnixMilli(),
		Mrr:       0,
	}); err != nil {
		return nil, err
	}

	session, err := s.sessionService.CreateSession(ctx, user.ID, salon.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.OnboardingResponse{
		SalonID:      salon.ID.Hex(),
		UserID:       user.ID.Hex(),
		SessionToken: session.Token,
		Plan:         authmodels.PlanTrial,
	}, nil
}
