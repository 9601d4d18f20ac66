package bookingdto

// BookingCreateInput đầu vào khi tạo lịch hẹn mới.
type BookingCreateInput struct {
	ClientID  string   `json:"clientId,omitempty" bson:"clientId,omitempty"`
	StaffID   string   `json:"staffId,omitempty" bson:"staffId,omitempty"`
	Services  []string `json:"services,omitempty" bson:"services,omitempty"`
	StartTime int64    `json:"startTime" bson:"startTime" validate:"required,gt=0"`
	EndTime   int64    `json:"endTime" bson:"endTime" validate:"required,gtfield=StartTime"`
	Status    string   `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled no_show"`
	Notes     string   `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
	Amount    float64  `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gte=0"`
}

// BookingUpdateInput đầu vào khi cập nhật lịch hẹn.
type BookingUpdateInput struct {
	StaffID       string   `json:"staffId,omitempty" bson:"staffId,omitempty"`
	Services      []string `json:"services,omitempty" bson:"services,omitempty"`
	StartTime     int64    `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime       int64    `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Status        string   `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled no_show"`
	Notes         string   `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
	Amount        float64  `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gte=0"`
	PaymentStatus string   `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty" validate:"omitempty,oneof=unpaid paid partial refunded"`
}
