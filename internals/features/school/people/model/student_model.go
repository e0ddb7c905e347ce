// file: internals/features/school/people/model/student_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID  `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`
	StudentUserID   *uuid.UUID `gorm:"type:uuid;column:student_user_id" json:"student_user_id,omitempty"`

	StudentName     string `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`
	StudentNumber   string `gorm:"type:varchar(50);not null;column:student_number" json:"student_number"`
	StudentIsActive bool   `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentName = strings.TrimSpace(m.StudentName)
	m.StudentNumber = strings.TrimSpace(m.StudentNumber)
	return nil
}

func (m *StudentModel) TenantColumn() string    { return "student_school_id" }
func (m *StudentModel) TenantID() uuid.UUID     { return m.StudentSchoolID }
func (m *StudentModel) BindTenant(id uuid.UUID) { m.StudentSchoolID = id }
