// Package worker chứa các background worker chạy định kỳ của server.
package worker

import (
	"context"
	"time"

	authsvc "salon_os/internal/api/auth/service"
	"salon_os/internal/logger"
)

// AuthCleanupWorker dọn dẹp OTP, verification token và session hết hạn.
// Chạy định kỳ để collection auth không phình ra theo thời gian.
type AuthCleanupWorker struct {
	otpService     *authsvc.OTPService
	tokenService   *authsvc.VerificationTokenService
	sessionService *authsvc.SessionService
	interval       time.Duration // Khoảng thời gian giữa các lần chạy
}

// NewAuthCleanupWorker tạo mới AuthCleanupWorker.
// interval dưới 1 phút sẽ được nâng lên mặc định 15 phút.
func NewAuthCleanupWorker(interval time.Duration) (*AuthCleanupWorker, error) {
	otpService, err := authsvc.NewOTPService()
	if err != nil {
		return nil, err
	}
	tokenService, err := authsvc.NewVerificationTokenService()
	if err != nil {
		return nil, err
	}
	sessionService, err := authsvc.NewSessionService()
	if err != nil {
		return nil, err
	}

	if interval < 1*time.Minute {
		interval = 15 * time.Minute
	}

	return &AuthCleanupWorker{
		otpService:     otpService,
		tokenService:   tokenService,
		sessionService: sessionService,
		interval:       interval,
	}, nil
}

// Start chạy worker cho tới khi ctx bị hủy.
func (w *AuthCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🧹 [AUTH_CLEANUP] Starting Auth Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [AUTH_CLEANUP] Auth Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🧹 [AUTH_CLEANUP] Panic khi dọn dẹp, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				otps, err := w.otpService.DeleteExpiredOTPs(ctx)
				if err != nil {
					log.WithError(err).Error("🧹 [AUTH_CLEANUP] Failed to delete expired OTPs")
				}

				tokens, err := w.tokenService.DeleteExpiredTokens(ctx)
				if err != nil {
					log.WithError(err).Error("🧹 [AUTH_CLEANUP] Failed to delete expired verification tokens")
				}

				sessions, err := w.sessionService.DeleteExpired(ctx)
				if err != nil {
					log.WithError(err).Error("🧹 [AUTH_CLEANUP] Failed to delete expired sessions")
				}

				if otps+tokens+sessions > 0 {
					log.WithFields(map[string]interface{}{
						"otps":     otps,
						"tokens":   tokens,
						"sessions": sessions,
					}).Info("🧹 [AUTH_CLEANUP] Deleted expired auth records")
				}
				// Không log khi không có gì để xóa (giảm log noise)
			}()
		}
	}
}
