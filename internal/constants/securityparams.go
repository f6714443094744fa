package constants

// Context Key Names
const (
	UserIDContextKey    = "user_id"
	UserRoleContextKey  = "user_role"
	RequestIDContextKey = "request_id"
)

// Field Length Limits mirror the account schema's constraints.
const (
	MinNameLength     = 3
	MaxNameLength     = 50
	MinEmailLength    = 5
	MaxEmailLength    = 255
	MinPasswordLength = 5
	MaxPasswordLength = 255
)

// Account Statuses
const (
	StatusPending = "pending"
	StatusActive  = "active"
	StatusSuspend = "suspend"
	StatusDelete  = "delete"
)

// Account Roles
const (
	RoleUser         = "user"
	RoleCompanyOwner = "companyOwner"
	RoleAdmin        = "admin"
)
