// file: internals/features/school/academics/model/term_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TermModel is a semester or trimester inside an academic year. A locked term
// refuses all writes to records that reference it.
type TermModel struct {
	TermID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:term_id" json:"term_id"`
	TermSchoolID       uuid.UUID `gorm:"type:uuid;not null;index;column:term_school_id" json:"term_school_id"`
	TermAcademicYearID uuid.UUID `gorm:"type:uuid;not null;index;column:term_academic_year_id" json:"term_academic_year_id"`

	TermName      string    `gorm:"type:varchar(50);not null;column:term_name" json:"term_name"`
	TermStartDate time.Time `gorm:"type:date;not null;column:term_start_date" json:"term_start_date"`
	TermEndDate   time.Time `gorm:"type:date;not null;column:term_end_date" json:"term_end_date"`
	TermIsCurrent bool      `gorm:"not null;default:false;column:term_is_current" json:"term_is_current"`
	TermIsLocked  bool      `gorm:"not null;default:false;column:term_is_locked" json:"term_is_locked"`

	TermCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:term_created_at" json:"term_created_at"`
	TermUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:term_updated_at" json:"term_updated_at"`
	TermDeletedAt gorm.DeletedAt `gorm:"column:term_deleted_at;index" json:"term_deleted_at,omitempty"`
}

func (TermModel) TableName() string { return "terms" }

func (m *TermModel) TenantColumn() string    { return "term_school_id" }
func (m *TermModel) TenantID() uuid.UUID     { return m.TermSchoolID }
func (m *TermModel) BindTenant(id uuid.UUID) { m.TermSchoolID = id }
