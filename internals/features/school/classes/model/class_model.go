// file: internals/features/school/classes/model/class_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassSchoolID       uuid.UUID  `gorm:"type:uuid;not null;index;column:class_school_id" json:"class_school_id"`
	ClassAcademicYearID *uuid.UUID `gorm:"type:uuid;column:class_academic_year_id" json:"class_academic_year_id,omitempty"`

	ClassName     string `gorm:"type:varchar(100);not null;column:class_name" json:"class_name"`
	ClassGrade    string `gorm:"type:varchar(20);not null;column:class_grade" json:"class_grade"`
	ClassCapacity int    `gorm:"not null;default:30;column:class_capacity" json:"class_capacity"`

	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeSave(tx *gorm.DB) error {
	m.ClassName = strings.TrimSpace(m.ClassName)
	m.ClassGrade = strings.TrimSpace(m.ClassGrade)
	return nil
}

func (m *ClassModel) TenantColumn() string    { return "class_school_id" }
func (m *ClassModel) TenantID() uuid.UUID     { return m.ClassSchoolID }
func (m *ClassModel) BindTenant(id uuid.UUID) { m.ClassSchoolID = id }
