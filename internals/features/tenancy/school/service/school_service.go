// file: internals/features/tenancy/school/service/school_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "schoolku_backend/internals/features/tenancy/school/model"
	"schoolku_backend/internals/helpers/errs"
)

// SchoolService owns the tenant lifecycle. Schools are the tenant table
// itself, so this service works on the raw handle rather than the
// tenant-scoped gateway.
type SchoolService struct {
	DB *gorm.DB
}

func NewSchoolService(db *gorm.DB) *SchoolService {
	return &SchoolService{DB: db}
}

// Create registers a new school in pending status. System-scoped operation.
func (s *SchoolService) Create(ctx context.Context, ent *model.SchoolModel) error {
	var cnt int64
	if err := s.DB.WithContext(ctx).Model(&model.SchoolModel{}).
		Where("LOWER(school_slug) = LOWER(?)", ent.SchoolSlug).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return errs.New("SLUG_TAKEN", 409, "School slug already in use.")
	}
	ent.SchoolStatus = model.SchoolStatusPending
	return s.DB.WithContext(ctx).Create(ent).Error
}

// Verify flips a pending school to active. The only path to active status.
func (s *SchoolService) Verify(ctx context.Context, schoolID uuid.UUID) (*model.SchoolModel, error) {
	ent, err := s.ByID(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	if ent.SchoolStatus == model.SchoolStatusActive {
		return ent, nil
	}
	now := time.Now()
	ent.SchoolStatus = model.SchoolStatusActive
	ent.SchoolVerifiedAt = &now
	if err := s.DB.WithContext(ctx).
		Model(ent).
		Updates(map[string]any{
			"school_status":      model.SchoolStatusActive,
			"school_verified_at": now,
		}).Error; err != nil {
		return nil, err
	}
	return ent, nil
}

// Suspend puts a school in suspended status; the Authorization Guard then
// rejects all writes for it regardless of caller role.
func (s *SchoolService) Suspend(ctx context.Context, schoolID uuid.UUID) (*model.SchoolModel, error) {
	return s.setStatus(ctx, schoolID, model.SchoolStatusSuspended)
}

// Reactivate lifts a suspension.
func (s *SchoolService) Reactivate(ctx context.Context, schoolID uuid.UUID) (*model.SchoolModel, error) {
	return s.setStatus(ctx, schoolID, model.SchoolStatusActive)
}

func (s *SchoolService) setStatus(ctx context.Context, schoolID uuid.UUID, status string) (*model.SchoolModel, error) {
	ent, err := s.ByID(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	ent.SchoolStatus = status
	if err := s.DB.WithContext(ctx).
		Model(ent).
		Update("school_status", status).Error; err != nil {
		return nil, err
	}
	return ent, nil
}

// ByID loads a school by id.
func (s *SchoolService) ByID(ctx context.Context, schoolID uuid.UUID) (*model.SchoolModel, error) {
	var ent model.SchoolModel
	if err := s.DB.WithContext(ctx).
		Where("school_id = ?", schoolID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUnknownTenant
		}
		return nil, err
	}
	return &ent, nil
}

// BySlug resolves a slug (case-insensitive) to its school.
func (s *SchoolService) BySlug(ctx context.Context, slug string) (*model.SchoolModel, error) {
	var ent model.SchoolModel
	if err := s.DB.WithContext(ctx).
		Where("LOWER(school_slug) = LOWER(?)", strings.TrimSpace(slug)).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUnknownTenant
		}
		return nil, err
	}
	return &ent, nil
}

// List returns schools paginated, newest first. System-scoped operation.
func (s *SchoolService) List(ctx context.Context, offset, limit int) ([]model.SchoolModel, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.SchoolModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.SchoolModel
	if err := s.DB.WithContext(ctx).
		Order("school_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
