// file: internals/features/school/people/model/staff_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffModel struct {
	StaffID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_id" json:"staff_id"`
	StaffSchoolID uuid.UUID  `gorm:"type:uuid;not null;index;column:staff_school_id" json:"staff_school_id"`
	StaffUserID   *uuid.UUID `gorm:"type:uuid;column:staff_user_id" json:"staff_user_id,omitempty"`

	StaffName     string `gorm:"type:varchar(100);not null;column:staff_name" json:"staff_name"`
	StaffPosition string `gorm:"type:varchar(50);not null;default:teacher;column:staff_position" json:"staff_position"`
	StaffIsActive bool   `gorm:"not null;default:true;column:staff_is_active" json:"staff_is_active"`

	StaffCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:staff_created_at" json:"staff_created_at"`
	StaffUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:staff_updated_at" json:"staff_updated_at"`
	StaffDeletedAt gorm.DeletedAt `gorm:"column:staff_deleted_at;index" json:"staff_deleted_at,omitempty"`
}

func (StaffModel) TableName() string { return "staff" }

func (m *StaffModel) BeforeSave(tx *gorm.DB) error {
	m.StaffName = strings.TrimSpace(m.StaffName)
	m.StaffPosition = strings.ToLower(strings.TrimSpace(m.StaffPosition))
	return nil
}

func (m *StaffModel) TenantColumn() string    { return "staff_school_id" }
func (m *StaffModel) TenantID() uuid.UUID     { return m.StaffSchoolID }
func (m *StaffModel) BindTenant(id uuid.UUID) { m.StaffSchoolID = id }
