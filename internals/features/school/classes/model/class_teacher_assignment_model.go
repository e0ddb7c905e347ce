// file: internals/features/school/classes/model/class_teacher_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassTeacherAssignmentModel records who teaches a class and since when.
// At most one open row (ended_at IS NULL) exists per class, enforced by a
// partial unique index; history rows keep their ended_at timestamps.
type ClassTeacherAssignmentModel struct {
	ClassTeacherAssignmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_teacher_assignment_id" json:"class_teacher_assignment_id"`
	ClassTeacherAssignmentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:class_teacher_assignment_school_id" json:"class_teacher_assignment_school_id"`
	ClassTeacherAssignmentClassID  uuid.UUID `gorm:"type:uuid;not null;index;column:class_teacher_assignment_class_id" json:"class_teacher_assignment_class_id"`
	ClassTeacherAssignmentStaffID  uuid.UUID `gorm:"type:uuid;not null;index;column:class_teacher_assignment_staff_id" json:"class_teacher_assignment_staff_id"`

	ClassTeacherAssignmentStartedAt time.Time  `gorm:"type:timestamptz;not null;column:class_teacher_assignment_started_at" json:"class_teacher_assignment_started_at"`
	ClassTeacherAssignmentEndedAt   *time.Time `gorm:"type:timestamptz;column:class_teacher_assignment_ended_at" json:"class_teacher_assignment_ended_at,omitempty"`

	ClassTeacherAssignmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:class_teacher_assignment_created_at" json:"class_teacher_assignment_created_at"`
	ClassTeacherAssignmentDeletedAt gorm.DeletedAt `gorm:"column:class_teacher_assignment_deleted_at;index" json:"class_teacher_assignment_deleted_at,omitempty"`
}

func (ClassTeacherAssignmentModel) TableName() string { return "class_teacher_assignments" }

func (m *ClassTeacherAssignmentModel) TenantColumn() string {
	return "class_teacher_assignment_school_id"
}
func (m *ClassTeacherAssignmentModel) TenantID() uuid.UUID { return m.ClassTeacherAssignmentSchoolID }
func (m *ClassTeacherAssignmentModel) BindTenant(id uuid.UUID) {
	m.ClassTeacherAssignmentSchoolID = id
}
