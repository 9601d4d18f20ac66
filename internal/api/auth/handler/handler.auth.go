// Package authhdl xử lý các request xác thực: OTP, onboarding, profile.
package authhdl

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "salon_os/internal/api/auth/dto"
	authmodels "salon_os/internal/api/auth/models"
	authsvc "salon_os/internal/api/auth/service"
	basehdl "salon_os/internal/api/base/handler"
	"salon_os/internal/common"
)

// AuthHandler xử lý các request xác thực và onboarding
type AuthHandler struct {
	*basehdl.BaseHandler[authmodels.User, authdto.OnboardingInput, authdto.OnboardingInput]
	otpService        *authsvc.OTPService
	onboardingService *authsvc.OnboardingService
	userService       *authsvc.UserService
	salonService      *authsvc.SalonService
}

// NewAuthHandler tạo instance mới của AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	otpService, err := authsvc.NewOTPService()
	if err != nil {
		return nil, fmt.Errorf("failed to create otp service: %v", err)
	}
	onboardingService, err := authsvc.NewOnboardingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create onboarding service: %v", err)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	salonService, err := authsvc.NewSalonService()
	if err != nil {
		return nil, fmt.Errorf("failed to create salon service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[authmodels.User, authdto.OnboardingInput, authdto.OnboardingInput](userService)
	return &AuthHandler{
		BaseHandler:       baseHandler,
		otpService:        otpService,
		onboardingService: onboardingService,
		userService:       userService,
		salonService:      salonService,
	}, nil
}

// HandleOTPStart xử lý yêu cầu gửi mã OTP đến số điện thoại
func (h *AuthHandler) HandleOTPStart(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.OTPStartInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		otp, err := h.otpService.StartOTP(c.Context(), input.Phone)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		resp := authdto.OTPStartResponse{Sent: true}
		// Chỉ trả mã về response ở môi trường development, production gửi qua SMS
		if os.Getenv("GO_ENV") != "production" {
			resp.DevCode = otp.Code
		}

		h.HandleResponse(c, resp, nil)
		return nil
	})
}

// HandleOTPVerify xác thực mã OTP và phát hành verification token
func (h *AuthHandler) HandleOTPVerify(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.OTPVerifyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		token, err := h.otpService.VerifyOTP(c.Context(), input.Phone, input.Code)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, authdto.OTPVerifyResponse{
			VerificationToken: token.Token,
			ExpiresAt:         token.ExpiresAt,
		}, nil)
		return nil
	})
}

// HandleOnboarding hoàn tất đăng ký: tạo salon, owner user, gói trial và phiên đăng nhập
func (h *AuthHandler) HandleOnboarding(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.OnboardingInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		resp, err := h.onboardingService.Onboard(c.Context(), &input)
		h.HandleResponse(c, resp, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin user đang đăng nhập kèm salon
func (h *AuthHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("user_id").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		objID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
			return nil
		}

		user, err := h.userService.FindOneById(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var salon *authmodels.Salon
		if !user.SalonID.IsZero() {
			found, err := h.salonService.FindOneById(c.Context(), user.SalonID)
			if err == nil {
				salon = &found
			}
		}

		h.HandleResponse(c, fiber.Map{
			"user":  user,
			"salon": salon,
		}, nil)
		return nil
	})
}
