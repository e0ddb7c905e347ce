// file: internals/features/tenancy/school/dto/school_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	model "schoolku_backend/internals/features/tenancy/school/model"
)

type SchoolCreateDTO struct {
	SchoolName         string         `json:"school_name" validate:"required,min=3,max=255"`
	SchoolSlug         string         `json:"school_slug" validate:"required,min=3,max=100"`
	SchoolContactEmail *string        `json:"school_contact_email" validate:"omitempty,email"`
	SchoolContactPhone *string        `json:"school_contact_phone" validate:"omitempty,max=100"`
	SchoolAddress      datatypes.JSON `json:"school_address"`
}

func (p *SchoolCreateDTO) Normalize() {
	p.SchoolName = strings.TrimSpace(p.SchoolName)
	p.SchoolSlug = strings.ToLower(strings.TrimSpace(p.SchoolSlug))
}

func (p *SchoolCreateDTO) ToModel() model.SchoolModel {
	return model.SchoolModel{
		SchoolName:         p.SchoolName,
		SchoolSlug:         p.SchoolSlug,
		SchoolStatus:       model.SchoolStatusPending,
		SchoolContactEmail: p.SchoolContactEmail,
		SchoolContactPhone: p.SchoolContactPhone,
		SchoolAddress:      p.SchoolAddress,
	}
}

type SchoolResponseDTO struct {
	SchoolID           string         `json:"school_id"`
	SchoolName         string         `json:"school_name"`
	SchoolSlug         string         `json:"school_slug"`
	SchoolStatus       string         `json:"school_status"`
	SchoolContactEmail *string        `json:"school_contact_email,omitempty"`
	SchoolContactPhone *string        `json:"school_contact_phone,omitempty"`
	SchoolAddress      datatypes.JSON `json:"school_address,omitempty"`
}

func FromModel(m *model.SchoolModel) SchoolResponseDTO {
	return SchoolResponseDTO{
		SchoolID:           m.SchoolID.String(),
		SchoolName:         m.SchoolName,
		SchoolSlug:         m.SchoolSlug,
		SchoolStatus:       m.SchoolStatus,
		SchoolContactEmail: m.SchoolContactEmail,
		SchoolContactPhone: m.SchoolContactPhone,
		SchoolAddress:      m.SchoolAddress,
	}
}
