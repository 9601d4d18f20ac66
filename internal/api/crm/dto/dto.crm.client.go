package crmdto

// ClientCreateInput đầu vào khi tạo khách hàng mới.
type ClientCreateInput struct {
	Name   string   `json:"name" bson:"name" validate:"required,no_xss"`
	Phone  string   `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,min=8,max=16"`
	Email  string   `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Tags   []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Notes  string   `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
	Source string   `json:"source,omitempty" bson:"source,omitempty"`
}

// ClientUpdateInput đầu vào khi cập nhật khách hàng.
type ClientUpdateInput struct {
	Name      string   `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Phone     string   `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,min=8,max=16"`
	Email     string   `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Tags      []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Notes     string   `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
	LastVisit int64    `json:"lastVisit,omitempty" bson:"lastVisit,omitempty"`
	Source    string   `json:"source,omitempty" bson:"source,omitempty"`
}
