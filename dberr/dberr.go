// Package dberr translates low-level data-access failures into the typed
// error kinds the handlers map to HTTP statuses. Translation happens once,
// at the boundary closest to the database; raw driver errors never leak
// into controller code.
package dberr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes for the constraint classes we care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrUnique     = errors.New("unique constraint violation")
	ErrForeignKey = errors.New("foreign key constraint violation")
	ErrNotNull    = errors.New("required value missing")
)

// Translate classifies err as one of the package's sentinel errors.
// Unrecognized errors are returned unchanged so the HTTP layer can
// surface them as a generic 500.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUnique
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrForeignKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrUnique
		case pgForeignKeyViolation:
			return ErrForeignKey
		case pgNotNullViolation:
			return ErrNotNull
		}
	}
	// SQLite reports an ON DELETE RESTRICT violation as a trigger
	// constraint (1811), which the gorm driver does not translate.
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		switch sqErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrUnique
		case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintTrigger:
			return ErrForeignKey
		case sqlite3.ErrConstraintNotNull:
			return ErrNotNull
		}
	}
	return err
}

// Status maps a translated error to its HTTP status. Not-null violations
// are bad input (400); unique and foreign-key violations are conflicts
// with existing state (409).
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotNull):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnique), errors.Is(err, ErrForeignKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
