// file: internals/features/school/enrollments/service/enrollment_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/databases/tenantdb"
	"schoolku_backend/internals/features/school/enrollments/model"
	"schoolku_backend/internals/helpers/errs"
)

func newMockService(t *testing.T) (*EnrollmentService, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewEnrollmentService(tenantdb.New(db, nil)), mock
}

func expectMarker(mock sqlmock.Sqlmock, schoolID uuid.UUID) {
	mock.ExpectQuery(`SELECT set_config\('app\.school_id'`).
		WithArgs(schoolID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"set_config"}).AddRow(schoolID.String()))
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func expectNoLockedTerm(mock sqlmock.Sqlmock) {
	// current-term lock check; no current term means nothing is locked
	mock.ExpectQuery(`SELECT \* FROM "terms" WHERE term_school_id = \$1 AND \(term_is_current = \$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"term_id"}))
}

func TestEnrollHappyPath(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID := uuid.New()
	in := EnrollInput{StudentID: uuid.New(), ClassID: uuid.New(), AcademicYearID: uuid.New()}

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	expectNoLockedTerm(mock)
	// year, student and class ownership checks
	mock.ExpectQuery(`SELECT count\(\*\) FROM "academic_years"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).WillReturnRows(countRows(1))
	// duplicate pre-check
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).WillReturnRows(countRows(0))
	mock.ExpectQuery(`INSERT INTO "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	row, err := svc.Enroll(context.Background(), schoolID, in)
	require.NoError(t, err)
	assert.Equal(t, schoolID, row.EnrollmentSchoolID)
	assert.Equal(t, model.EnrollmentStatusActive, row.EnrollmentStatus)
	assert.Equal(t, in.AcademicYearID, row.EnrollmentAcademicYearID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollDefaultsToCurrentYear(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID, currentYear := uuid.New(), uuid.New()
	in := EnrollInput{StudentID: uuid.New(), ClassID: uuid.New()}

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	expectNoLockedTerm(mock)
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE academic_year_school_id = \$1 AND \(academic_year_is_current = \$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"academic_year_id", "academic_year_school_id", "academic_year_is_current"}).
			AddRow(currentYear, schoolID, true))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).WillReturnRows(countRows(0))
	mock.ExpectQuery(`INSERT INTO "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	row, err := svc.Enroll(context.Background(), schoolID, in)
	require.NoError(t, err)
	assert.Equal(t, currentYear, row.EnrollmentAcademicYearID)
}

func TestEnrollNoCurrentYear(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID := uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	expectNoLockedTerm(mock)
	mock.ExpectQuery(`SELECT \* FROM "academic_years"`).
		WillReturnRows(sqlmock.NewRows([]string{"academic_year_id"}))
	mock.ExpectRollback()

	_, err := svc.Enroll(context.Background(), schoolID, EnrollInput{
		StudentID: uuid.New(), ClassID: uuid.New(),
	})
	assert.ErrorIs(t, err, errs.ErrNoCurrentAcademicYear)
}

func TestEnrollForeignStudentDenied(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID := uuid.New()
	in := EnrollInput{StudentID: uuid.New(), ClassID: uuid.New(), AcademicYearID: uuid.New()}

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	expectNoLockedTerm(mock)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "academic_years"`).WillReturnRows(countRows(1))
	// the student id exists in another school, so the scoped count sees nothing
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).WillReturnRows(countRows(0))
	mock.ExpectRollback()

	_, err := svc.Enroll(context.Background(), schoolID, in)
	assert.ErrorIs(t, err, errs.ErrCrossTenantAccess)
}

func TestEnrollDuplicateDetectedByPrecheck(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID := uuid.New()
	in := EnrollInput{StudentID: uuid.New(), ClassID: uuid.New(), AcademicYearID: uuid.New()}

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	expectNoLockedTerm(mock)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "academic_years"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).WillReturnRows(countRows(1))
	mock.ExpectRollback()

	_, err := svc.Enroll(context.Background(), schoolID, in)
	assert.ErrorIs(t, err, errs.ErrDuplicateEnrollment)
	assert.False(t, errs.Retryable(err))
}

func TestEnrollRaceMapsToConflict(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID := uuid.New()
	in := EnrollInput{StudentID: uuid.New(), ClassID: uuid.New(), AcademicYearID: uuid.New()}

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	expectNoLockedTerm(mock)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "academic_years"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).WillReturnRows(countRows(0))
	// a concurrent request won the insert between pre-check and commit
	mock.ExpectQuery(`INSERT INTO "enrollments"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "uq_enrollments_active"`))
	mock.ExpectRollback()

	_, err := svc.Enroll(context.Background(), schoolID, in)
	assert.ErrorIs(t, err, errs.ErrConcurrentInvariantConflict)
	assert.True(t, errs.Retryable(err))
}

func TestWithdrawTwiceIsNotFound(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID := uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	expectNoLockedTerm(mock)
	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_id"}))
	mock.ExpectRollback()

	_, err := svc.Withdraw(context.Background(), schoolID, uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEnrollBlockedByLockedCurrentTerm(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID, termID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	mock.ExpectQuery(`SELECT \* FROM "terms"`).
		WillReturnRows(sqlmock.NewRows([]string{"term_id", "term_school_id", "term_is_current", "term_is_locked"}).
			AddRow(termID, schoolID, true, true))
	mock.ExpectRollback()

	_, err := svc.Enroll(context.Background(), schoolID, EnrollInput{
		StudentID: uuid.New(), ClassID: uuid.New(), AcademicYearID: uuid.New(),
	})
	assert.ErrorIs(t, err, errs.ErrTermLocked)
	assert.False(t, errs.Retryable(err))
}

func TestWithdrawMarksRowWithdrawn(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID, enrollmentID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	expectNoLockedTerm(mock)
	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_id", "enrollment_school_id", "enrollment_status"}).
			AddRow(enrollmentID, schoolID, model.EnrollmentStatusActive))
	mock.ExpectExec(`UPDATE "enrollments" SET "enrollment_status"=\$1`).
		WithArgs(model.EnrollmentStatusWithdrawn, sqlmock.AnyArg(), schoolID, enrollmentID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	row, err := svc.Withdraw(context.Background(), schoolID, enrollmentID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusWithdrawn, row.EnrollmentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
