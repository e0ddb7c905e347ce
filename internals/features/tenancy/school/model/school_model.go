// file: internals/features/tenancy/school/model/school_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lifecycle: created as pending by a system-scoped operation; becomes active
// only through an explicit verification step.
const (
	SchoolStatusPending   = "pending"
	SchoolStatusActive    = "active"
	SchoolStatusSuspended = "suspended"
	SchoolStatusInactive  = "inactive"
)

type SchoolModel struct {
	SchoolID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`
	SchoolName string    `gorm:"type:text;not null;column:school_name" json:"school_name"`
	SchoolSlug string    `gorm:"type:varchar(100);not null;column:school_slug" json:"school_slug"`

	SchoolStatus string `gorm:"type:varchar(20);not null;default:pending;column:school_status" json:"school_status"`

	SchoolContactEmail *string        `gorm:"type:text;column:school_contact_email" json:"school_contact_email,omitempty"`
	SchoolContactPhone *string        `gorm:"type:text;column:school_contact_phone" json:"school_contact_phone,omitempty"`
	SchoolAddress      datatypes.JSON `gorm:"type:jsonb;column:school_address" json:"school_address,omitempty"`

	SchoolVerifiedAt *time.Time `gorm:"type:timestamptz;column:school_verified_at" json:"school_verified_at,omitempty"`

	SchoolCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:school_updated_at" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeSave(tx *gorm.DB) error {
	m.SchoolName = strings.TrimSpace(m.SchoolName)
	m.SchoolSlug = strings.ToLower(strings.TrimSpace(m.SchoolSlug))
	return nil
}

func (m *SchoolModel) IsActive() bool    { return m.SchoolStatus == SchoolStatusActive }
func (m *SchoolModel) IsSuspended() bool { return m.SchoolStatus == SchoolStatusSuspended }
