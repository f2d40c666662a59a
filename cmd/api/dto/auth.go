package dto

import (
	"time"

	"news-cms/models"
)

// LoginRequest carries the credential pair; Username also accepts an email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the bearer token and the account minus its hash.
type LoginResponse struct {
	Token string       `json:"token"`
	User  AdminUserDTO `json:"user"`
}

// AdminUserDTO never includes the password hash.
type AdminUserDTO struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewAdminUserDTO(u models.AdminUser) AdminUserDTO {
	return AdminUserDTO{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
