// file: internals/features/users/user/model/user_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// UserModel belongs to exactly one school; UserSchoolID is nil only for
// system-administrator accounts.
type UserModel struct {
	UserID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserSchoolID *uuid.UUID `gorm:"type:uuid;column:user_school_id" json:"user_school_id,omitempty"`

	UserName         string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail        string `gorm:"type:varchar(255);not null;column:user_email" json:"user_email"`
	UserPasswordHash string `gorm:"type:text;not null;column:user_password_hash" json:"-"`

	UserStatus string `gorm:"type:varchar(20);not null;default:active;column:user_status" json:"user_status"`

	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeSave(tx *gorm.DB) error {
	m.UserName = strings.TrimSpace(m.UserName)
	m.UserEmail = strings.ToLower(strings.TrimSpace(m.UserEmail))
	return nil
}

// IsActive reports whether this account may authenticate and authorize.
func (m *UserModel) IsActive() bool { return m.UserStatus == UserStatusActive }
