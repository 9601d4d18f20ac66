// Package models - Constants cho auth domain.
package models

// Các gói thuê bao của salon.
const (
	PlanTrial      = "trial"
	PlanStarter    = "starter"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Các vai trò của người dùng trong salon.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
)
