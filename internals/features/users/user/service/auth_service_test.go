// file: internals/features/users/user/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/tenancy/school/model"
	rbacSvc "schoolku_backend/internals/features/users/rbac/service"
	"schoolku_backend/internals/helpers/errs"
)

func newMockAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewAuthService(db, rbacSvc.NewAssignmentService(db), "test-secret"), mock
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func userRows(userID uuid.UUID, schoolID *uuid.UUID, email, hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "user_school_id", "user_name", "user_email", "user_password_hash", "user_status",
	}).AddRow(userID, schoolID, "Someone", email, hash, "active")
}

// Accounts without a school mint roles_global from the assignments table;
// the filter names exactly the columns that table has.
func TestLoginPlatformAccountMintsGlobalRoles(t *testing.T) {
	svc, mock := newMockAuthService(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_email = \$1`).
		WillReturnRows(userRows(userID, nil, "root@platform.io", hashOf(t, "s3cret-pw")))
	mock.ExpectQuery(`SELECT r\.role_name FROM user_role_assignments AS ura JOIN roles r ON r\.role_id = ura\.user_role_assignment_role_id WHERE ura\.user_role_assignment_user_id = \$1 AND ura\.user_role_assignment_school_id IS NULL$`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"role_name"}).AddRow("system_admin"))

	user, token, err := svc.Login(context.Background(), "root@platform.io", "s3cret-pw")
	require.NoError(t, err)
	assert.Nil(t, user.UserSchoolID)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, []any{"system_admin"}, claims["roles_global"])
	assert.NotContains(t, claims, "school_id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterResolvesSchoolBySlug(t *testing.T) {
	svc, mock := newMockAuthService(t)
	schoolID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "schools" WHERE LOWER\(school_slug\) = \$1`).
		WithArgs("greenfield", 1).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_name", "school_slug", "school_status"}).
			AddRow(schoolID, "Greenfield", "greenfield", schoolModel.SchoolStatusActive))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	user, err := svc.Register(context.Background(), " Greenfield ", "New Teacher", "teacher@greenfield.io", "longenough1")
	require.NoError(t, err)
	require.NotNil(t, user.UserSchoolID)
	assert.Equal(t, schoolID, *user.UserSchoolID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterUnknownSlug(t *testing.T) {
	svc, mock := newMockAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}))

	_, err := svc.Register(context.Background(), "nowhere", "Someone", "a@b.io", "longenough1")
	assert.ErrorIs(t, err, errs.ErrUnknownTenant)
}

func TestRegisterSuspendedSchool(t *testing.T) {
	svc, mock := newMockAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_slug", "school_status"}).
			AddRow(uuid.New(), "frozen", schoolModel.SchoolStatusSuspended))

	_, err := svc.Register(context.Background(), "frozen", "Someone", "a@b.io", "longenough1")
	assert.ErrorIs(t, err, errs.ErrTenantSuspended)
}

func TestRegisterPendingSchoolStaysInvisible(t *testing.T) {
	svc, mock := newMockAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_slug", "school_status"}).
			AddRow(uuid.New(), "newborn", schoolModel.SchoolStatusPending))

	_, err := svc.Register(context.Background(), "newborn", "Someone", "a@b.io", "longenough1")
	assert.ErrorIs(t, err, errs.ErrUnknownTenant)
}
