// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/classes/model"
)

type ClassCreateDTO struct {
	ClassName           string     `json:"class_name" validate:"required,min=1,max=100"`
	ClassGrade          string     `json:"class_grade" validate:"required,min=1,max=20"`
	ClassCapacity       int        `json:"class_capacity" validate:"omitempty,min=1,max=200"`
	ClassAcademicYearID *uuid.UUID `json:"class_academic_year_id,omitempty"`
}

func (d *ClassCreateDTO) Normalize() {
	d.ClassName = strings.TrimSpace(d.ClassName)
	d.ClassGrade = strings.TrimSpace(d.ClassGrade)
}

func (d *ClassCreateDTO) ToModel() *model.ClassModel {
	capacity := d.ClassCapacity
	if capacity == 0 {
		capacity = 30
	}
	return &model.ClassModel{
		ClassName:           d.ClassName,
		ClassGrade:          d.ClassGrade,
		ClassCapacity:       capacity,
		ClassAcademicYearID: d.ClassAcademicYearID,
	}
}

type ReassignTeacherDTO struct {
	StaffID uuid.UUID `json:"staff_id" validate:"required"`
}

type TeacherAssignmentResponseDTO struct {
	AssignmentID uuid.UUID  `json:"assignment_id"`
	ClassID      uuid.UUID  `json:"class_id"`
	StaffID      uuid.UUID  `json:"staff_id"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

func AssignmentFromModel(m *model.ClassTeacherAssignmentModel) *TeacherAssignmentResponseDTO {
	if m == nil {
		return nil
	}
	return &TeacherAssignmentResponseDTO{
		AssignmentID: m.ClassTeacherAssignmentID,
		ClassID:      m.ClassTeacherAssignmentClassID,
		StaffID:      m.ClassTeacherAssignmentStaffID,
		StartedAt:    m.ClassTeacherAssignmentStartedAt,
		EndedAt:      m.ClassTeacherAssignmentEndedAt,
	}
}
