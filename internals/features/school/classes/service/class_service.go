// file: internals/features/school/classes/service/class_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolku_backend/internals/databases/tenantdb"
	"schoolku_backend/internals/features/school/classes/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/logger"
)

type ClassService struct {
	Gateway *tenantdb.Gateway
}

func NewClassService(gw *tenantdb.Gateway) *ClassService {
	return &ClassService{Gateway: gw}
}

/* ==========================================
   Class CRUD
========================================== */

func (s *ClassService) Create(ctx context.Context, schoolID uuid.UUID, class *model.ClassModel) error {
	return s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Create(class)
	})
}

func (s *ClassService) ByID(ctx context.Context, schoolID, classID uuid.UUID) (*model.ClassModel, error) {
	var class model.ClassModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.First(&class, "class_id = ?", classID)
	})
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (s *ClassService) List(ctx context.Context, schoolID uuid.UUID) ([]model.ClassModel, error) {
	var classes []model.ClassModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Find(&classes, &model.ClassModel{})
	})
	return classes, err
}

/* ==========================================
   Teacher assignment
========================================== */

// ReassignTeacher closes the class's open assignment and opens a new one for
// the given staff member, in a single transaction. Both the class and the
// staff row must belong to the caller's school.
func (s *ClassService) ReassignTeacher(ctx context.Context, schoolID, classID, staffID uuid.UUID) (*model.ClassTeacherAssignmentModel, error) {
	now := time.Now().UTC()
	next := &model.ClassTeacherAssignmentModel{
		ClassTeacherAssignmentClassID:   classID,
		ClassTeacherAssignmentStaffID:   staffID,
		ClassTeacherAssignmentStartedAt: now,
	}

	err := s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		if err := sc.VerifyOwned(&model.ClassModel{}, "class_id", classID); err != nil {
			return err
		}
		if err := sc.VerifyOwned(&peopleModel.StaffModel{}, "staff_id", staffID); err != nil {
			return err
		}

		closed, err := sc.UpdateWhere(&model.ClassTeacherAssignmentModel{},
			map[string]any{"class_teacher_assignment_ended_at": now},
			"class_teacher_assignment_class_id = ? AND class_teacher_assignment_ended_at IS NULL", classID)
		if err != nil {
			return err
		}
		if closed > 1 {
			logger.L().Error("class had multiple open teacher assignments",
				zap.String("class_id", classID.String()),
				zap.Int64("closed", closed))
		}

		if err := sc.Create(next); err != nil {
			if tenantdb.IsUniqueViolation(err) {
				return errs.ErrConcurrentInvariantConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// CurrentTeacher returns the open assignment for a class, or NotFound when
// the class has no teacher right now.
func (s *ClassService) CurrentTeacher(ctx context.Context, schoolID, classID uuid.UUID) (*model.ClassTeacherAssignmentModel, error) {
	var cur model.ClassTeacherAssignmentModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.First(&cur,
			"class_teacher_assignment_class_id = ? AND class_teacher_assignment_ended_at IS NULL", classID)
	})
	if err != nil {
		return nil, err
	}
	return &cur, nil
}

// AssignmentHistory lists all assignments of a class, newest first.
func (s *ClassService) AssignmentHistory(ctx context.Context, schoolID, classID uuid.UUID) ([]model.ClassTeacherAssignmentModel, error) {
	var rows []model.ClassTeacherAssignmentModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Find(&rows, &model.ClassTeacherAssignmentModel{}, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("class_teacher_assignment_class_id = ?", classID).
				Order("class_teacher_assignment_started_at DESC")
		})
	})
	return rows, err
}
