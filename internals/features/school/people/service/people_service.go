// file: internals/features/school/people/service/people_service.go
package service

import (
	"context"

	"github.com/google/uuid"

	"schoolku_backend/internals/databases/tenantdb"
	"schoolku_backend/internals/features/school/people/model"
)

type PeopleService struct {
	Gateway *tenantdb.Gateway
}

func NewPeopleService(gw *tenantdb.Gateway) *PeopleService {
	return &PeopleService{Gateway: gw}
}

func (s *PeopleService) CreateStaff(ctx context.Context, schoolID uuid.UUID, staff *model.StaffModel) error {
	return s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Create(staff)
	})
}

func (s *PeopleService) ListStaff(ctx context.Context, schoolID uuid.UUID) ([]model.StaffModel, error) {
	var out []model.StaffModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Find(&out, &model.StaffModel{})
	})
	return out, err
}

func (s *PeopleService) CreateStudent(ctx context.Context, schoolID uuid.UUID, student *model.StudentModel) error {
	return s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Create(student)
	})
}

func (s *PeopleService) ListStudents(ctx context.Context, schoolID uuid.UUID) ([]model.StudentModel, error) {
	var out []model.StudentModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Find(&out, &model.StudentModel{})
	})
	return out, err
}
