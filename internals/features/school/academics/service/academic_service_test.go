// file: internals/features/school/academics/service/academic_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/databases/tenantdb"
	"schoolku_backend/internals/helpers/errs"
)

func newMockService(t *testing.T) (*AcademicService, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewAcademicService(tenantdb.New(db, nil)), mock
}

func expectMarker(mock sqlmock.Sqlmock, schoolID uuid.UUID) {
	mock.ExpectQuery(`SELECT set_config\('app\.school_id'`).
		WithArgs(schoolID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"set_config"}).AddRow(schoolID.String()))
}

func yearRows(yearID, schoolID uuid.UUID, name string, current bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"academic_year_id", "academic_year_school_id", "academic_year_name", "academic_year_is_current",
	}).AddRow(yearID, schoolID, name, current)
}

func TestSetCurrentYearFlipsInOneTransaction(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID, yearID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE academic_year_school_id = \$1 AND \(academic_year_id = \$2\)`).
		WillReturnRows(yearRows(yearID, schoolID, "2026/2027", false))
	mock.ExpectExec(`UPDATE "academic_years" SET .*academic_year_is_current.* WHERE academic_year_school_id = \$\d+ AND \(academic_year_is_current = \$\d+ AND academic_year_id <> \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "academic_years" SET .*academic_year_is_current.* WHERE academic_year_school_id = \$\d+ AND \(academic_year_id = \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	year, err := svc.SetCurrentYear(context.Background(), schoolID, yearID)
	require.NoError(t, err)
	assert.True(t, year.AcademicYearIsCurrent)
	assert.Equal(t, yearID, year.AcademicYearID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetCurrentYearUnknownYear(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID := uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	mock.ExpectQuery(`SELECT \* FROM "academic_years"`).
		WillReturnRows(sqlmock.NewRows([]string{"academic_year_id"}))
	mock.ExpectRollback()

	_, err := svc.SetCurrentYear(context.Background(), schoolID, uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSetCurrentYearRaceMapsToConflict(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID, yearID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	mock.ExpectQuery(`SELECT \* FROM "academic_years"`).
		WillReturnRows(yearRows(yearID, schoolID, "2026/2027", false))
	mock.ExpectExec(`UPDATE "academic_years"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "academic_years"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "uq_academic_years_current"`))
	mock.ExpectRollback()

	_, err := svc.SetCurrentYear(context.Background(), schoolID, yearID)
	assert.ErrorIs(t, err, errs.ErrConcurrentInvariantConflict)
	assert.True(t, errs.Retryable(err))
}

func TestCurrentYearNoneMarked(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID := uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	mock.ExpectQuery(`SELECT \* FROM "academic_years" WHERE academic_year_school_id = \$1 AND \(academic_year_is_current = \$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"academic_year_id"}))
	mock.ExpectRollback()

	_, err := svc.CurrentYear(context.Background(), schoolID)
	assert.ErrorIs(t, err, errs.ErrNoCurrentAcademicYear)
}

// A term row scanned with the migrated column set must populate the lock
// flag, and a locked current term must refuse calendar-bound writes.
func TestLockedCurrentTermRefusesWrites(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID, yearID, termID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	mock.ExpectQuery(`SELECT \* FROM "terms" WHERE term_school_id = \$1 AND \(term_is_current = \$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{
			"term_id", "term_school_id", "term_academic_year_id", "term_name",
			"term_start_date", "term_end_date", "term_order_index",
			"term_is_current", "term_is_locked",
		}).AddRow(termID, schoolID, yearID, "Term 1",
			time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), 1,
			true, true))
	mock.ExpectRollback()

	err := svc.Gateway.Read(context.Background(), schoolID, func(sc *tenantdb.Scope) error {
		return EnsureCurrentTermWritable(sc)
	})
	assert.ErrorIs(t, err, errs.ErrTermLocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrentYearNilTenantFailsClosed(t *testing.T) {
	svc, _ := newMockService(t)

	_, err := svc.CurrentYear(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, errs.ErrTenantBindingFailed)
}

func TestSetCurrentTermRequiresCurrentYear(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID, termID, yearID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	mock.ExpectQuery(`SELECT \* FROM "terms"`).
		WillReturnRows(sqlmock.NewRows([]string{"term_id", "term_school_id", "term_academic_year_id"}).
			AddRow(termID, schoolID, yearID))
	mock.ExpectQuery(`SELECT \* FROM "academic_years"`).
		WillReturnRows(sqlmock.NewRows([]string{"academic_year_id"}))
	mock.ExpectRollback()

	_, err := svc.SetCurrentTerm(context.Background(), schoolID, termID)
	assert.ErrorIs(t, err, errs.ErrNoCurrentAcademicYear)
}

func TestSetCurrentTermOutsideCurrentYear(t *testing.T) {
	svc, mock := newMockService(t)
	schoolID, termID := uuid.New(), uuid.New()
	termYear, currentYear := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectMarker(mock, schoolID)
	mock.ExpectQuery(`SELECT \* FROM "terms"`).
		WillReturnRows(sqlmock.NewRows([]string{"term_id", "term_school_id", "term_academic_year_id"}).
			AddRow(termID, schoolID, termYear))
	mock.ExpectQuery(`SELECT \* FROM "academic_years"`).
		WillReturnRows(yearRows(currentYear, schoolID, "2026/2027", true))
	mock.ExpectRollback()

	_, err := svc.SetCurrentTerm(context.Background(), schoolID, termID)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, "TERM_OUTSIDE_CURRENT_YEAR", e.Code)
}
