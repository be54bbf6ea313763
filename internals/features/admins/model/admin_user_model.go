package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserModel struct {
	AdminUserID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_user_id" json:"admin_user_id"`
	AdminUserUsername     string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_admin_users_username;column:admin_user_username" json:"admin_user_username"`
	AdminUserEmail        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_admin_users_email;column:admin_user_email" json:"admin_user_email"`
	AdminUserPasswordHash string     `gorm:"type:text;not null;column:admin_user_password_hash" json:"-"`
	AdminUserFullName     string     `gorm:"type:varchar(120);not null;column:admin_user_full_name" json:"admin_user_full_name"`
	AdminUserRole         string     `gorm:"type:varchar(24);not null;default:admin;column:admin_user_role" json:"admin_user_role"`
	AdminUserIsActive     bool       `gorm:"not null;default:true;column:admin_user_is_active" json:"admin_user_is_active"`
	AdminUserLastLogin    *time.Time `gorm:"column:admin_user_last_login" json:"admin_user_last_login,omitempty"`
	AdminUserCreatedAt    time.Time  `gorm:"column:admin_user_created_at;autoCreateTime" json:"admin_user_created_at"`
	AdminUserUpdatedAt    time.Time  `gorm:"column:admin_user_updated_at;autoUpdateTime" json:"admin_user_updated_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
