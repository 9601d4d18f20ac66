package billingdto

// TransactionCreateInput đầu vào khi ghi nhận giao dịch thanh toán.
type TransactionCreateInput struct {
	Amount    float64 `json:"amount" bson:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency,omitempty" bson:"currency,omitempty" validate:"omitempty,len=3"`
	Purpose   string  `json:"purpose,omitempty" bson:"purpose,omitempty" validate:"omitempty,oneof=subscription addon pos"`
	Status    string  `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending succeeded failed refunded"`
	Timestamp int64   `json:"timestamp,omitempty" bson:"timestamp,omitempty" validate:"omitempty,gt=0"`
}

// TransactionUpdateInput đầu vào khi cập nhật giao dịch (chỉ đổi trạng thái).
type TransactionUpdateInput struct {
	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending succeeded failed refunded"`
}

// SubscriptionCreateInput đầu vào khi tạo gói thuê bao.
type SubscriptionCreateInput struct {
	Plan      string  `json:"plan" bson:"plan" validate:"required,oneof=trial starter pro enterprise"`
	Status    string  `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=trial active past_due canceled"`
	StartDate int64   `json:"startDate,omitempty" bson:"startDate,omitempty" validate:"omitempty,gt=0"`
	EndDate   int64   `json:"endDate,omitempty" bson:"endDate,omitempty" validate:"omitempty,gt=0"`
	Mrr       float64 `json:"mrr,omitempty" bson:"mrr,omitempty" validate:"omitempty,gte=0"`
}

// SubscriptionUpdateInput đầu vào khi cập nhật gói thuê bao.
type SubscriptionUpdateInput struct {
	Plan    string  `json:"plan,omitempty" bson:"plan,omitempty" validate:"omitempty,oneof=trial starter pro enterprise"`
	Status  string  `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=trial active past_due canceled"`
	EndDate int64   `json:"endDate,omitempty" bson:"endDate,omitempty" validate:"omitempty,gt=0"`
	Mrr     float64 `json:"mrr,omitempty" bson:"mrr,omitempty" validate:"omitempty,gte=0"`
}
