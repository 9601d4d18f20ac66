// Package middleware cung cấp các middleware xác thực cho Fiber.
package middleware

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authmodels "salon_os/internal/api/auth/models"
	authsvc "salon_os/internal/api/auth/service"
	"salon_os/internal/common"
	"salon_os/internal/logger"
)

// AuthManager quản lý xác thực phiên đăng nhập
type AuthManager struct {
	SessionCRUD *authsvc.SessionService
	UserCRUD    *authsvc.UserService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	sessionService, err := authsvc.NewSessionService()
	if err != nil {
		return nil, err
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &AuthManager{
		SessionCRUD: sessionService,
		UserCRUD:    userService,
	}, nil
}

// authenticate xác thực Bearer token và trả về user + session.
func (am *AuthManager) authenticate(c fiber.Ctx) (*authmodels.User, *authmodels.Session, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"path":   c.Path(),
			"method": c.Method(),
		}).Warn("Missing Authorization header")
		return nil, nil, common.ErrTokenMissing
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, nil, common.ErrTokenInvalid
	}

	session, err := am.SessionCRUD.FindByToken(context.Background(), parts[1])
	if err != nil {
		return nil, nil, err
	}

	user, err := am.UserCRUD.FindActiveById(context.Background(), session.UserID)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, nil, common.ErrTokenInvalid
		}
		return nil, nil, err
	}

	return user, session, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Sau khi xác thực thành công, user_id và salon_id được gắn vào Locals
// để các handler phía sau giới hạn dữ liệu theo salon.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authManager := GetAuthManager()

		user, session, err := authManager.authenticate(c)
		if err != nil {
			return HandleErrorResponse(c, err)
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user_role", user.Role)
		if !session.SalonID.IsZero() {
			c.Locals("salon_id", session.SalonID.Hex())
		}

		return c.Next()
	}
}

// OwnerMiddleware yêu cầu vai trò owner. Phải đặt SAU AuthMiddleware trong chain.
func OwnerMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role != authmodels.RoleOwner {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				common.MsgForbidden,
				common.StatusForbidden,
				nil,
			))
		}
		return c.Next()
	}
}
