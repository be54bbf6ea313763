package dto

import (
	"time"

	"github.com/google/uuid"

	"womim_backend/internals/features/admins/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type SetupAdminRequest struct {
	SetupKey string `json:"setup_key" validate:"required"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
}

type AdminResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

func NewAdminResponse(m *model.AdminUserModel) AdminResponse {
	return AdminResponse{
		ID:       m.AdminUserID,
		Username: m.AdminUserUsername,
		Email:    m.AdminUserEmail,
		FullName: m.AdminUserFullName,
		Role:     m.AdminUserRole,
	}
}

type SessionResponse struct {
	Token           string    `json:"token"`
	ExpiresAt       time.Time `json:"expires_at"`
	SecondsToExpiry int64     `json:"seconds_to_expiry"`
	NeedsRefresh    bool      `json:"needs_refresh"`
}

type LoginResponse struct {
	Admin       AdminResponse   `json:"admin"`
	Session     SessionResponse `json:"session"`
	AccessToken string          `json:"access_token"`
}
