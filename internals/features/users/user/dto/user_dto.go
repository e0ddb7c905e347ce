// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/user/model"
)

/* ==========================================
   Requests
========================================== */

type RegisterRequestDTO struct {
	SchoolSlug   string `json:"school_slug" validate:"required,min=2,max=100"`
	UserName     string `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email,max=255"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequestDTO) Normalize() {
	r.SchoolSlug = strings.ToLower(strings.TrimSpace(r.SchoolSlug))
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type LoginRequestDTO struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (r *LoginRequestDTO) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

/* ==========================================
   Responses
========================================== */

type UserResponseDTO struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserStatus   string     `json:"user_status"`
}

func FromModel(m *model.UserModel) *UserResponseDTO {
	if m == nil {
		return nil
	}
	return &UserResponseDTO{
		UserID:       m.UserID,
		UserSchoolID: m.UserSchoolID,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserStatus:   m.UserStatus,
	}
}

type LoginResponseDTO struct {
	AccessToken string           `json:"access_token"`
	User        *UserResponseDTO `json:"user"`
}
