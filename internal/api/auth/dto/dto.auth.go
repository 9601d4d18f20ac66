package authdto

// OTPStartInput đầu vào khi yêu cầu gửi mã OTP.
type OTPStartInput struct {
	Phone string `json:"phone" validate:"required,min=8,max=16"`
}

// OTPStartResponse trả về sau khi tạo mã OTP.
// DevCode chỉ trả về ở môi trường development để tiện test, production gửi qua SMS.
type OTPStartResponse struct {
	Sent    bool   `json:"sent"`
	DevCode string `json:"devCode,omitempty"`
}

// OTPVerifyInput đầu vào khi xác thực mã OTP.
type OTPVerifyInput struct {
	Phone string `json:"phone" validate:"required,min=8,max=16"`
	Code  string `json:"code" validate:"required,len=6"`
}

// OTPVerifyResponse trả về verification token dùng cho bước onboarding.
type OTPVerifyResponse struct {
	VerificationToken string `json:"verificationToken"`
	ExpiresAt         int64  `json:"expiresAt"` // Unix ms
}

// OnboardingInput đầu vào khi hoàn tất onboarding (tạo salon + owner).
type OnboardingInput struct {
	VerificationToken string `json:"verificationToken" validate:"required"`
	SalonName         string `json:"salonName" validate:"required,no_xss"`
	OwnerName         string `json:"ownerName" validate:"required,no_xss"`
	Phone             string `json:"phone" validate:"required,min=8,max=16"`
	City              string `json:"city,omitempty" validate:"omitempty,no_xss"`
	Country           string `json:"country,omitempty"`
}

// OnboardingResponse trả về sau khi onboarding thành công.
type OnboardingResponse struct {
	SalonID      string `json:"salonId"`
	UserID       string `json:"userId"`
	SessionToken string `json:"sessionToken"`
	Plan         string `json:"plan"`
}
