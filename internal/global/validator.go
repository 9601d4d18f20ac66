package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate là validator dùng chung cho toàn bộ ứng dụng.
var Validate *validator.Validate

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("period_token", validatePeriodToken)
}

// validateNoXSS kiểm tra XSS trong các field text nhập từ người dùng
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validatePeriodToken kiểm tra kỳ báo cáo thuộc tập cố định {7d,30d,90d,mtd}.
// Token sai bị chặn ở đây, trước khi vào rollup calculator.
func validatePeriodToken(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "7d", "30d", "90d", "mtd":
		return true
	}
	return false
}
