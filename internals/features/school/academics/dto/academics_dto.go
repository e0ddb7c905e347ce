// file: internals/features/school/academics/dto/academics_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/model"
)

/* ==========================================
   Academic year
========================================== */

type AcademicYearCreateDTO struct {
	AcademicYearName      string    `json:"academic_year_name" validate:"required,min=4,max=50"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date" validate:"required"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date" validate:"required,gtfield=AcademicYearStartDate"`
}

func (d *AcademicYearCreateDTO) Normalize() {
	d.AcademicYearName = strings.TrimSpace(d.AcademicYearName)
}

func (d *AcademicYearCreateDTO) ToModel() *model.AcademicYearModel {
	return &model.AcademicYearModel{
		AcademicYearName:      d.AcademicYearName,
		AcademicYearStartDate: d.AcademicYearStartDate,
		AcademicYearEndDate:   d.AcademicYearEndDate,
	}
}

type AcademicYearResponseDTO struct {
	AcademicYearID        uuid.UUID `json:"academic_year_id"`
	AcademicYearName      string    `json:"academic_year_name"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date"`
	AcademicYearIsCurrent bool      `json:"academic_year_is_current"`
}

func YearFromModel(m *model.AcademicYearModel) *AcademicYearResponseDTO {
	if m == nil {
		return nil
	}
	return &AcademicYearResponseDTO{
		AcademicYearID:        m.AcademicYearID,
		AcademicYearName:      m.AcademicYearName,
		AcademicYearStartDate: m.AcademicYearStartDate,
		AcademicYearEndDate:   m.AcademicYearEndDate,
		AcademicYearIsCurrent: m.AcademicYearIsCurrent,
	}
}

/* ==========================================
   Term
========================================== */

type TermCreateDTO struct {
	TermAcademicYearID uuid.UUID `json:"term_academic_year_id" validate:"required"`
	TermName           string    `json:"term_name" validate:"required,min=2,max=50"`
	TermStartDate      time.Time `json:"term_start_date" validate:"required"`
	TermEndDate        time.Time `json:"term_end_date" validate:"required,gtfield=TermStartDate"`
}

func (d *TermCreateDTO) Normalize() {
	d.TermName = strings.TrimSpace(d.TermName)
}

func (d *TermCreateDTO) ToModel() *model.TermModel {
	return &model.TermModel{
		TermAcademicYearID: d.TermAcademicYearID,
		TermName:           d.TermName,
		TermStartDate:      d.TermStartDate,
		TermEndDate:        d.TermEndDate,
	}
}

type TermResponseDTO struct {
	TermID             uuid.UUID `json:"term_id"`
	TermAcademicYearID uuid.UUID `json:"term_academic_year_id"`
	TermName           string    `json:"term_name"`
	TermStartDate      time.Time `json:"term_start_date"`
	TermEndDate        time.Time `json:"term_end_date"`
	TermIsCurrent      bool      `json:"term_is_current"`
	TermIsLocked       bool      `json:"term_is_locked"`
}

func TermFromModel(m *model.TermModel) *TermResponseDTO {
	if m == nil {
		return nil
	}
	return &TermResponseDTO{
		TermID:             m.TermID,
		TermAcademicYearID: m.TermAcademicYearID,
		TermName:           m.TermName,
		TermStartDate:      m.TermStartDate,
		TermEndDate:        m.TermEndDate,
		TermIsCurrent:      m.TermIsCurrent,
		TermIsLocked:       m.TermIsLocked,
	}
}
