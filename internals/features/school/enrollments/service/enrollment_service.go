// file: internals/features/school/enrollments/service/enrollment_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/databases/tenantdb"
	academicsModel "schoolku_backend/internals/features/school/academics/model"
	academicsSvc "schoolku_backend/internals/features/school/academics/service"
	classesModel "schoolku_backend/internals/features/school/classes/model"
	"schoolku_backend/internals/features/school/enrollments/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/observability"
)

type EnrollmentService struct {
	Gateway *tenantdb.Gateway
}

func NewEnrollmentService(gw *tenantdb.Gateway) *EnrollmentService {
	return &EnrollmentService{Gateway: gw}
}

// EnrollInput carries the ids for one enrollment. AcademicYearID may be Nil,
// in which case the school's current year is used.
type EnrollInput struct {
	StudentID      uuid.UUID
	ClassID        uuid.UUID
	AcademicYearID uuid.UUID
}

// Enroll registers a student into a class for an academic year. Duplicate
// active enrollments are rejected; when two requests race past the pre-check,
// the unique index turns the loser into ConcurrentInvariantConflict so the
// client can retry and receive DuplicateEnrollment.
func (s *EnrollmentService) Enroll(ctx context.Context, schoolID uuid.UUID, in EnrollInput) (*model.EnrollmentModel, error) {
	row := &model.EnrollmentModel{
		EnrollmentStudentID:  in.StudentID,
		EnrollmentClassID:    in.ClassID,
		EnrollmentStatus:     model.EnrollmentStatusActive,
		EnrollmentEnrolledAt: time.Now().UTC(),
	}

	err := s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		if err := academicsSvc.EnsureCurrentTermWritable(sc); err != nil {
			return err
		}

		yearID := in.AcademicYearID
		if yearID == uuid.Nil {
			var current academicsModel.AcademicYearModel
			if err := sc.First(&current, "academic_year_is_current = ?", true); err != nil {
				if errsIsNotFound(err) {
					return errs.ErrNoCurrentAcademicYear
				}
				return err
			}
			yearID = current.AcademicYearID
		} else {
			if err := sc.VerifyOwned(&academicsModel.AcademicYearModel{}, "academic_year_id", yearID); err != nil {
				return err
			}
		}
		row.EnrollmentAcademicYearID = yearID

		// Every referenced row must belong to the caller's school.
		if err := sc.VerifyOwned(&peopleModel.StudentModel{}, "student_id", in.StudentID); err != nil {
			return err
		}
		if err := sc.VerifyOwned(&classesModel.ClassModel{}, "class_id", in.ClassID); err != nil {
			return err
		}

		// Fast path for the common duplicate case.
		n, err := sc.Count(&model.EnrollmentModel{},
			"enrollment_student_id = ? AND enrollment_class_id = ? AND enrollment_academic_year_id = ? AND enrollment_status = ?",
			in.StudentID, in.ClassID, yearID, model.EnrollmentStatusActive)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.ErrDuplicateEnrollment
		}

		if err := sc.Create(row); err != nil {
			if tenantdb.IsUniqueViolation(err) {
				observability.EnrollmentConflicts.Inc()
				return errs.ErrConcurrentInvariantConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Withdraw closes an active enrollment. Withdrawing twice is a no-op error
// surfaced as NotFound since no active row matches.
func (s *EnrollmentService) Withdraw(ctx context.Context, schoolID, enrollmentID uuid.UUID) (*model.EnrollmentModel, error) {
	var row model.EnrollmentModel
	err := s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		if err := academicsSvc.EnsureCurrentTermWritable(sc); err != nil {
			return err
		}
		if err := sc.First(&row,
			"enrollment_id = ? AND enrollment_status = ?", enrollmentID, model.EnrollmentStatusActive); err != nil {
			return err
		}
		_, err := sc.UpdateWhere(&model.EnrollmentModel{},
			map[string]any{"enrollment_status": model.EnrollmentStatusWithdrawn},
			"enrollment_id = ?", enrollmentID)
		if err != nil {
			return err
		}
		row.EnrollmentStatus = model.EnrollmentStatusWithdrawn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByClass returns the enrollments of one class, active first.
func (s *EnrollmentService) ListByClass(ctx context.Context, schoolID, classID uuid.UUID) ([]model.EnrollmentModel, error) {
	var rows []model.EnrollmentModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Find(&rows, &model.EnrollmentModel{}, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("enrollment_class_id = ?", classID).
				Order("enrollment_status ASC, enrollment_enrolled_at DESC")
		})
	})
	return rows, err
}

// ListByStudent returns a student's enrollments, newest first.
func (s *EnrollmentService) ListByStudent(ctx context.Context, schoolID, studentID uuid.UUID) ([]model.EnrollmentModel, error) {
	var rows []model.EnrollmentModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Find(&rows, &model.EnrollmentModel{}, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("enrollment_student_id = ?", studentID).
				Order("enrollment_enrolled_at DESC")
		})
	})
	return rows, err
}

func errsIsNotFound(err error) bool {
	e, ok := errs.As(err)
	return ok && e == errs.ErrNotFound
}
