package payrolldto

// StaffCreateInput đầu vào khi thêm nhân viên mới.
type StaffCreateInput struct {
	Name          string  `json:"name" bson:"name" validate:"required,no_xss"`
	Phone         string  `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,min=8,max=16"`
	Role          string  `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,no_xss"`
	CommissionPct float64 `json:"commissionPct,omitempty" bson:"commissionPct,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// StaffUpdateInput đầu vào khi cập nhật nhân viên.
type StaffUpdateInput struct {
	Name          string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Phone         string  `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,min=8,max=16"`
	Role          string  `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,no_xss"`
	CommissionPct float64 `json:"commissionPct,omitempty" bson:"commissionPct,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// PayrollEntryCreateInput đầu vào khi tạo bảng lương tháng.
type PayrollEntryCreateInput struct {
	StaffID     string  `json:"staffId" bson:"staffId" validate:"required,len=24"`
	Month       string  `json:"month" bson:"month" validate:"required,len=7"`
	BaseSalary  float64 `json:"baseSalary,omitempty" bson:"baseSalary,omitempty" validate:"omitempty,gte=0"`
	Commissions float64 `json:"commissions,omitempty" bson:"commissions,omitempty" validate:"omitempty,gte=0"`
	Bonuses     float64 `json:"bonuses,omitempty" bson:"bonuses,omitempty" validate:"omitempty,gte=0"`
	Deductions  float64 `json:"deductions,omitempty" bson:"deductions,omitempty" validate:"omitempty,gte=0"`
}

// PayrollEntryUpdateInput đầu vào khi cập nhật bảng lương.
type PayrollEntryUpdateInput struct {
	BaseSalary   float64 `json:"baseSalary,omitempty" bson:"baseSalary,omitempty" validate:"omitempty,gte=0"`
	Commissions  float64 `json:"commissions,omitempty" bson:"commissions,omitempty" validate:"omitempty,gte=0"`
	Bonuses      float64 `json:"bonuses,omitempty" bson:"bonuses,omitempty" validate:"omitempty,gte=0"`
	Deductions   float64 `json:"deductions,omitempty" bson:"deductions,omitempty" validate:"omitempty,gte=0"`
	PayoutStatus string  `json:"payoutStatus,omitempty" bson:"payoutStatus,omitempty" validate:"omitempty,oneof=pending processing paid"`
}
