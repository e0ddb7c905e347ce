// file: internals/features/school/academics/service/academic_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolku_backend/internals/databases/tenantdb"
	"schoolku_backend/internals/features/school/academics/model"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/logger"
)

// AcademicService owns the calendar invariants: at most one current year and
// one current term per school, and locked terms stay read-only.
type AcademicService struct {
	Gateway *tenantdb.Gateway
}

func NewAcademicService(gw *tenantdb.Gateway) *AcademicService {
	return &AcademicService{Gateway: gw}
}

/* ==========================================
   Academic years
========================================== */

func (s *AcademicService) CreateYear(ctx context.Context, schoolID uuid.UUID, year *model.AcademicYearModel) error {
	return s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		year.AcademicYearIsCurrent = false
		return sc.Create(year)
	})
}

// SetCurrentYear flips the current marker to the given year. Unset and set
// happen in one transaction so no moment exists with two current years; the
// partial unique index backs this up under concurrency.
func (s *AcademicService) SetCurrentYear(ctx context.Context, schoolID, yearID uuid.UUID) (*model.AcademicYearModel, error) {
	var target model.AcademicYearModel
	err := s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		if err := sc.First(&target, "academic_year_id = ?", yearID); err != nil {
			return err
		}

		if _, err := sc.UpdateWhere(&model.AcademicYearModel{},
			map[string]any{"academic_year_is_current": false},
			"academic_year_is_current = ? AND academic_year_id <> ?", true, yearID); err != nil {
			return err
		}

		n, err := sc.UpdateWhere(&model.AcademicYearModel{},
			map[string]any{"academic_year_is_current": true},
			"academic_year_id = ?", yearID)
		if err != nil {
			if tenantdb.IsUniqueViolation(err) {
				return errs.ErrConcurrentInvariantConflict
			}
			return err
		}
		if n == 0 {
			return errs.ErrConcurrentInvariantConflict
		}
		target.AcademicYearIsCurrent = true
		return nil
	})
	if err != nil {
		if tenantdb.IsUniqueViolation(err) {
			logger.L().Warn("current year flip raced", zap.String("school_id", schoolID.String()))
			return nil, errs.ErrConcurrentInvariantConflict
		}
		return nil, err
	}
	return &target, nil
}

// CurrentYear returns the school's current academic year or
// NoCurrentAcademicYear when none is marked.
func (s *AcademicService) CurrentYear(ctx context.Context, schoolID uuid.UUID) (*model.AcademicYearModel, error) {
	var year model.AcademicYearModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.First(&year, "academic_year_is_current = ?", true)
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrNoCurrentAcademicYear
		}
		return nil, err
	}
	return &year, nil
}

func (s *AcademicService) ListYears(ctx context.Context, schoolID uuid.UUID) ([]model.AcademicYearModel, error) {
	var years []model.AcademicYearModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.Find(&years, &model.AcademicYearModel{})
	})
	return years, err
}

/* ==========================================
   Terms
========================================== */

func (s *AcademicService) CreateTerm(ctx context.Context, schoolID uuid.UUID, term *model.TermModel) error {
	return s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		if err := sc.VerifyOwned(&model.AcademicYearModel{}, "academic_year_id", term.TermAcademicYearID); err != nil {
			return err
		}
		term.TermIsCurrent = false
		term.TermIsLocked = false
		return sc.Create(term)
	})
}

// SetCurrentTerm flips the current marker to the given term. The term must
// belong to the school's current academic year.
func (s *AcademicService) SetCurrentTerm(ctx context.Context, schoolID, termID uuid.UUID) (*model.TermModel, error) {
	var target model.TermModel
	err := s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		if err := sc.First(&target, "term_id = ?", termID); err != nil {
			return err
		}

		var current model.AcademicYearModel
		if err := sc.First(&current, "academic_year_is_current = ?", true); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrNoCurrentAcademicYear
			}
			return err
		}
		if target.TermAcademicYearID != current.AcademicYearID {
			return errs.New("TERM_OUTSIDE_CURRENT_YEAR", 422, "Term does not belong to the current academic year")
		}

		if _, err := sc.UpdateWhere(&model.TermModel{},
			map[string]any{"term_is_current": false},
			"term_is_current = ? AND term_id <> ?", true, termID); err != nil {
			return err
		}

		n, err := sc.UpdateWhere(&model.TermModel{},
			map[string]any{"term_is_current": true},
			"term_id = ?", termID)
		if err != nil {
			if tenantdb.IsUniqueViolation(err) {
				return errs.ErrConcurrentInvariantConflict
			}
			return err
		}
		if n == 0 {
			return errs.ErrConcurrentInvariantConflict
		}
		target.TermIsCurrent = true
		return nil
	})
	if err != nil {
		if tenantdb.IsUniqueViolation(err) {
			return nil, errs.ErrConcurrentInvariantConflict
		}
		return nil, err
	}
	return &target, nil
}

func (s *AcademicService) CurrentTerm(ctx context.Context, schoolID uuid.UUID) (*model.TermModel, error) {
	var term model.TermModel
	err := s.Gateway.Read(ctx, schoolID, func(sc *tenantdb.Scope) error {
		return sc.First(&term, "term_is_current = ?", true)
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrNoCurrentAcademicYear
		}
		return nil, err
	}
	return &term, nil
}

func (s *AcademicService) SetTermLock(ctx context.Context, schoolID, termID uuid.UUID, locked bool) (*model.TermModel, error) {
	var target model.TermModel
	err := s.Gateway.Tx(ctx, schoolID, func(sc *tenantdb.Scope) error {
		if err := sc.First(&target, "term_id = ?", termID); err != nil {
			return err
		}
		if _, err := sc.UpdateWhere(&model.TermModel{},
			map[string]any{"term_is_locked": locked},
			"term_id = ?", termID); err != nil {
			return err
		}
		target.TermIsLocked = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// EnsureCurrentTermWritable rejects calendar-bound writes while the school's
// current term is locked. A school with no current term has nothing locked.
func EnsureCurrentTermWritable(sc *tenantdb.Scope) error {
	var term model.TermModel
	if err := sc.First(&term, "term_is_current = ?", true); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}
	if term.TermIsLocked {
		return errs.ErrTermLocked
	}
	return nil
}
