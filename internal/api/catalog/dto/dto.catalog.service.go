package catalogdto

// ServiceCreateInput đầu vào khi tạo dịch vụ mới.
type ServiceCreateInput struct {
	Name        string  `json:"name" bson:"name" validate:"required,no_xss"`
	Category    string  `json:"category,omitempty" bson:"category,omitempty" validate:"omitempty,no_xss"`
	DurationMin int     `json:"durationMin" bson:"durationMin" validate:"required,gte=5,lte=600"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
}

// ServiceUpdateInput đầu vào khi cập nhật dịch vụ.
type ServiceUpdateInput struct {
	Name        string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Category    string  `json:"category,omitempty" bson:"category,omitempty" validate:"omitempty,no_xss"`
	DurationMin int     `json:"durationMin,omitempty" bson:"durationMin,omitempty" validate:"omitempty,gte=5,lte=600"`
	Price       float64 `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gte=0"`
}
