// file: internals/features/school/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusWithdrawn = "withdrawn"
	EnrollmentStatusCompleted = "completed"
)

// EnrollmentModel links a student to a class for one academic year. A partial
// unique index allows at most one active row per (school, student, class,
// year); withdrawn and completed rows do not block re-enrollment.
type EnrollmentModel struct {
	EnrollmentID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`
	EnrollmentSchoolID       uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_school_id" json:"enrollment_school_id"`
	EnrollmentStudentID      uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentClassID        uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_class_id" json:"enrollment_class_id"`
	EnrollmentAcademicYearID uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_academic_year_id" json:"enrollment_academic_year_id"`

	EnrollmentStatus     string    `gorm:"type:varchar(20);not null;default:active;column:enrollment_status" json:"enrollment_status"`
	EnrollmentEnrolledAt time.Time `gorm:"type:timestamptz;not null;column:enrollment_enrolled_at" json:"enrollment_enrolled_at"`

	EnrollmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:enrollment_created_at" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:enrollment_updated_at" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) TenantColumn() string    { return "enrollment_school_id" }
func (m *EnrollmentModel) TenantID() uuid.UUID     { return m.EnrollmentSchoolID }
func (m *EnrollmentModel) BindTenant(id uuid.UUID) { m.EnrollmentSchoolID = id }

func (m *EnrollmentModel) IsActive() bool { return m.EnrollmentStatus == EnrollmentStatusActive }
