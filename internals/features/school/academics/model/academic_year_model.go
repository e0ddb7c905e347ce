// file: internals/features/school/academics/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicYearModel is one school year, e.g. "2026/2027". At most one row per
// school carries is_current, enforced by a partial unique index.
type AcademicYearModel struct {
	AcademicYearID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`
	AcademicYearSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_year_school_id" json:"academic_year_school_id"`

	AcademicYearName      string    `gorm:"type:varchar(50);not null;column:academic_year_name" json:"academic_year_name"`
	AcademicYearStartDate time.Time `gorm:"type:date;not null;column:academic_year_start_date" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"type:date;not null;column:academic_year_end_date" json:"academic_year_end_date"`
	AcademicYearIsCurrent bool      `gorm:"not null;default:false;column:academic_year_is_current" json:"academic_year_is_current"`

	AcademicYearCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_year_created_at" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_year_updated_at" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

func (m *AcademicYearModel) TenantColumn() string   { return "academic_year_school_id" }
func (m *AcademicYearModel) TenantID() uuid.UUID    { return m.AcademicYearSchoolID }
func (m *AcademicYearModel) BindTenant(id uuid.UUID) { m.AcademicYearSchoolID = id }
