package account

import (
	"time"

	"records-service/internal/rbac"
)

// Account is a registered user. PasswordHash never leaves the service;
// Role and PermissionLevel are stored independently and only coupled at
// creation time.
type Account struct {
	ID              int64      `json:"id"`
	FirstName       string     `json:"firstname"`
	LastName        string     `json:"lastname"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Role            rbac.Role  `json:"role"`
	PermissionLevel rbac.Level `json:"permission_level"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateAccountInput struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	PasswordHash    string
	Role            rbac.Role
	PermissionLevel rbac.Level
}
