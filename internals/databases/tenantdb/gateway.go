// file: internals/databases/tenantdb/gateway.go
package tenantdb

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/observability"
)

// TenantOwned is implemented by every model that carries a school id column.
// The gateway uses it to inject the tenant filter into every statement, so a
// query cannot run unscoped even when calling code forgets.
type TenantOwned interface {
	TenantColumn() string
	TenantID() uuid.UUID
	BindTenant(id uuid.UUID)
}

// Gateway is the only way application code reaches tenant-scoped tables.
// Every operation takes the resolved school id explicitly; nothing is read
// from ambient globals.
type Gateway struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{db: db, log: log}
}

/* ============================================
   Scope: one tenant, one session/transaction
============================================ */

type Scope struct {
	tx       *gorm.DB
	schoolID uuid.UUID
}

// SchoolID returns the tenant this scope is bound to.
func (s *Scope) SchoolID() uuid.UUID { return s.schoolID }

func (s *Scope) scoped(model TenantOwned) *gorm.DB {
	return s.tx.Model(model).Where(model.TenantColumn()+" = ?", s.schoolID)
}

// Read runs fn inside a short transaction bound to schoolID. Reads go
// through the same transactional path as writes so the row-security marker
// covers every statement, not just mutations.
func (g *Gateway) Read(ctx context.Context, schoolID uuid.UUID, fn func(s *Scope) error) error {
	return g.run(ctx, schoolID, "read", fn)
}

// Tx runs fn inside one transaction bound to schoolID.
func (g *Gateway) Tx(ctx context.Context, schoolID uuid.UUID, fn func(s *Scope) error) error {
	return g.run(ctx, schoolID, "tx", fn)
}

// run sets the transaction-local app.school_id marker before any statement
// executes, so the database's row-security policies see the same tenant the
// injected filter uses. Marker setting is best effort: on failure the
// mandatory application-level filter still applies and the failure is
// logged. A nil schoolID is the one thing that fails closed: the
// transaction never starts unscoped.
func (g *Gateway) run(ctx context.Context, schoolID uuid.UUID, op string, fn func(s *Scope) error) error {
	if schoolID == uuid.Nil {
		return g.bindingFailed(op)
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// set_config(..., true) is SET LOCAL: it dies with the transaction
		// and can never leak to a pooled connection.
		if err := tx.Exec("SELECT set_config('app.school_id', ?, true)", schoolID.String()).Error; err != nil {
			g.log.Warn("tenant marker not set, relying on application filter",
				zap.String("school_id", schoolID.String()),
				zap.Error(err),
			)
		}
		return fn(&Scope{tx: tx, schoolID: schoolID})
	})
}

func (g *Gateway) bindingFailed(op string) error {
	observability.TenantBindingFailures.Inc()
	g.log.Error("tenant binding failed, operation refused", zap.String("op", op))
	return errs.ErrTenantBindingFailed
}

/* ============================================
   Scoped operations
============================================ */

// Create inserts entity with the scope's school id stamped on the row. An
// entity already bound to a different tenant is refused.
func (s *Scope) Create(entity TenantOwned) error {
	if id := entity.TenantID(); id != uuid.Nil && id != s.schoolID {
		return errs.ErrCrossTenantAccess
	}
	entity.BindTenant(s.schoolID)
	return s.tx.Create(entity).Error
}

// First loads one row matching query, always tenant-filtered.
func (s *Scope) First(dest TenantOwned, query string, args ...any) error {
	err := s.scoped(dest).Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return err
}

// Find loads rows into dest (a slice pointer); model supplies the tenant
// column. Additional clauses go through scopes.
func (s *Scope) Find(dest any, model TenantOwned, scopes ...func(*gorm.DB) *gorm.DB) error {
	q := s.scoped(model)
	for _, sc := range scopes {
		q = sc(q)
	}
	return q.Find(dest).Error
}

// Count counts tenant-owned rows matching query.
func (s *Scope) Count(model TenantOwned, query string, args ...any) (int64, error) {
	var n int64
	q := s.scoped(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	err := q.Count(&n).Error
	return n, err
}

// UpdateWhere applies values to tenant-owned rows matching query and reports
// how many rows changed.
func (s *Scope) UpdateWhere(model TenantOwned, values map[string]any, query string, args ...any) (int64, error) {
	res := s.scoped(model).Where(query, args...).Updates(values)
	return res.RowsAffected, res.Error
}

// VerifyOwned confirms that the referenced entity exists inside this scope's
// tenant. Called before committing any write whose payload carries a foreign
// key, so an id guessed from another tenant can never be linked in.
func (s *Scope) VerifyOwned(model TenantOwned, pkColumn string, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrNotFound
	}
	var n int64
	if err := s.scoped(model).Where(pkColumn+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrCrossTenantAccess
	}
	return nil
}

/* ============================================
   Storage-error classification
============================================ */

// IsUniqueViolation reports whether err is a Postgres unique-constraint hit
// (SQLSTATE 23505), regardless of which driver produced it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// sqlmock and friends surface plain errors
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
