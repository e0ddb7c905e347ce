// file: internals/features/users/user/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/databases/tenantdb"
	schoolModel "schoolku_backend/internals/features/tenancy/school/model"
	rbacSvc "schoolku_backend/internals/features/users/rbac/service"
	"schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/errs"
)

const accessTokenTTL = 24 * time.Hour

type AuthService struct {
	DB          *gorm.DB
	Assignments *rbacSvc.AssignmentService
	JWTSecret   string
}

func NewAuthService(db *gorm.DB, assignments *rbacSvc.AssignmentService, jwtSecret string) *AuthService {
	return &AuthService{DB: db, Assignments: assignments, JWTSecret: jwtSecret}
}

/* ==========================================
   Register
========================================== */

// Register creates a tenant-bound account. The route is public and skips
// tenant resolution, so the school comes from the request's slug; only an
// active school accepts registrations.
func (s *AuthService) Register(ctx context.Context, schoolSlug, name, email, password string) (*model.UserModel, error) {
	slug := strings.ToLower(strings.TrimSpace(schoolSlug))
	if slug == "" {
		return nil, errs.ErrMissingTenant
	}

	var school schoolModel.SchoolModel
	if err := s.DB.WithContext(ctx).
		Where("LOWER(school_slug) = ?", slug).
		First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUnknownTenant
		}
		return nil, err
	}
	switch school.SchoolStatus {
	case schoolModel.SchoolStatusActive:
		// ok
	case schoolModel.SchoolStatusSuspended:
		return nil, errs.ErrTenantSuspended
	default:
		// pending and inactive schools stay invisible
		return nil, errs.ErrUnknownTenant
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	schoolID := school.SchoolID
	user := &model.UserModel{
		UserSchoolID:     &schoolID,
		UserName:         name,
		UserEmail:        strings.ToLower(strings.TrimSpace(email)),
		UserPasswordHash: string(hash),
		UserStatus:       model.UserStatusActive,
	}

	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		if tenantdb.IsUniqueViolation(err) {
			return nil, errs.New("EMAIL_TAKEN", 409, "Email is already registered")
		}
		return nil, err
	}
	return user, nil
}

/* ==========================================
   Login
========================================== */

// Login verifies credentials and mints an access token carrying the user's
// per-school roles so the authorizer can decide without extra lookups.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.UserModel, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.UserModel
	err := s.DB.WithContext(ctx).
		Where("user_email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errs.New("INVALID_CREDENTIALS", 401, "Invalid email or password")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(password)) != nil {
		return nil, "", errs.New("INVALID_CREDENTIALS", 401, "Invalid email or password")
	}
	if !user.IsActive() {
		return nil, "", errs.ErrInactiveUser
	}

	token, err := s.mintAccessToken(ctx, &user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) mintAccessToken(ctx context.Context, user *model.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":          user.UserID.String(),
		"user_status": user.UserStatus,
		"iat":         now.Unix(),
		"exp":         now.Add(accessTokenTTL).Unix(),
	}

	if user.UserSchoolID != nil {
		claims["school_id"] = user.UserSchoolID.String()
		roles, err := s.Assignments.RolesOf(ctx, *user.UserSchoolID, user.UserID)
		if err != nil {
			return "", err
		}
		claims["school_roles"] = []map[string]any{
			{"school_id": user.UserSchoolID.String(), "roles": roles},
		}
	} else {
		// Accounts without a school carry platform-level roles.
		roles, err := s.globalRoles(ctx, user.UserID)
		if err != nil {
			return "", err
		}
		claims["roles_global"] = roles
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(s.JWTSecret))
}

func (s *AuthService) globalRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Table("user_role_assignments AS ura").
		Joins("JOIN roles r ON r.role_id = ura.user_role_assignment_role_id").
		Where("ura.user_role_assignment_user_id = ? AND ura.user_role_assignment_school_id IS NULL", userID).
		Pluck("r.role_name", &names).Error
	return names, err
}
