package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminSessionModel struct {
	AdminSessionID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_session_id" json:"admin_session_id"`
	AdminSessionAdminUserID uuid.UUID `gorm:"type:uuid;not null;column:admin_session_admin_user_id;index:idx_admin_sessions_user" json:"admin_session_admin_user_id"`
	AdminSessionToken       string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_admin_sessions_token;column:admin_session_token" json:"admin_session_token"`
	AdminSessionExpiresAt   time.Time `gorm:"not null;column:admin_session_expires_at;index:idx_admin_sessions_expires" json:"admin_session_expires_at"`
	AdminSessionCreatedAt   time.Time `gorm:"column:admin_session_created_at;autoCreateTime" json:"admin_session_created_at"`
}

func (AdminSessionModel) TableName() string {
	return "admin_sessions"
}
