package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry gắn thông tin request HTTP
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
		"request_id": c.GetRespHeader("X-Request-ID"),
	})
}

// WithModule trả về entry gắn tên module nghiệp vụ
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithCollection trả về entry gắn tên collection đang thao tác
func WithCollection(collection string) *logrus.Entry {
	return GetAppLogger().WithField("collection", collection)
}

// WithError trả về entry gắn lỗi
func WithError(err error) *logrus.Entry {
	return GetErrorLogger().WithError(err)
}
