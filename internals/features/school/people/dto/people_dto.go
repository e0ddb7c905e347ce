// file: internals/features/school/people/dto/people_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/people/model"
)

type StaffCreateDTO struct {
	StaffName     string     `json:"staff_name" validate:"required,min=3,max=100"`
	StaffPosition string     `json:"staff_position" validate:"required,oneof=teacher headmaster counselor administrator"`
	StaffUserID   *uuid.UUID `json:"staff_user_id,omitempty"`
}

func (d *StaffCreateDTO) Normalize() {
	d.StaffName = strings.TrimSpace(d.StaffName)
	d.StaffPosition = strings.ToLower(strings.TrimSpace(d.StaffPosition))
}

func (d *StaffCreateDTO) ToModel() *model.StaffModel {
	return &model.StaffModel{
		StaffName:     d.StaffName,
		StaffPosition: d.StaffPosition,
		StaffUserID:   d.StaffUserID,
		StaffIsActive: true,
	}
}

type StudentCreateDTO struct {
	StudentName   string     `json:"student_name" validate:"required,min=3,max=100"`
	StudentNumber string     `json:"student_number" validate:"required,min=1,max=50"`
	StudentUserID *uuid.UUID `json:"student_user_id,omitempty"`
}

func (d *StudentCreateDTO) Normalize() {
	d.StudentName = strings.TrimSpace(d.StudentName)
	d.StudentNumber = strings.TrimSpace(d.StudentNumber)
}

func (d *StudentCreateDTO) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentName:     d.StudentName,
		StudentNumber:   d.StudentNumber,
		StudentUserID:   d.StudentUserID,
		StudentIsActive: true,
	}
}
