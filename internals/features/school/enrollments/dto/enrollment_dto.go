// file: internals/features/school/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/enrollments/model"
)

type EnrollRequestDTO struct {
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	ClassID        uuid.UUID `json:"class_id" validate:"required"`
	AcademicYearID uuid.UUID `json:"academic_year_id"` // optional, defaults to the current year
}

type EnrollmentResponseDTO struct {
	EnrollmentID   uuid.UUID `json:"enrollment_id"`
	StudentID      uuid.UUID `json:"student_id"`
	ClassID        uuid.UUID `json:"class_id"`
	AcademicYearID uuid.UUID `json:"academic_year_id"`
	Status         string    `json:"status"`
	EnrolledAt     time.Time `json:"enrolled_at"`
}

func FromModel(m *model.EnrollmentModel) *EnrollmentResponseDTO {
	if m == nil {
		return nil
	}
	return &EnrollmentResponseDTO{
		EnrollmentID:   m.EnrollmentID,
		StudentID:      m.EnrollmentStudentID,
		ClassID:        m.EnrollmentClassID,
		AcademicYearID: m.EnrollmentAcademicYearID,
		Status:         m.EnrollmentStatus,
		EnrolledAt:     m.EnrollmentEnrolledAt,
	}
}
