package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("registro duplicado")

// NotNullError reports a required column that the store refused to leave empty.
type NotNullError struct {
	Column string
}

func (e *NotNullError) Error() string { return "campo requerido: " + e.Column }

const pgNotNullViolation = "23502"

// translateError maps driver-level constraint failures onto repository errors.
// The db handle is opened with TranslateError, so unique violations already
// arrive as gorm.ErrDuplicatedKey for both PostgreSQL and SQLite.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgNotNullViolation {
		return &NotNullError{Column: pgErr.ColumnName}
	}
	if msg := err.Error(); strings.HasPrefix(msg, "NOT NULL constraint failed: ") {
		col := strings.TrimPrefix(msg, "NOT NULL constraint failed: ")
		if i := strings.LastIndex(col, "."); i >= 0 {
			col = col[i+1:]
		}
		return &NotNullError{Column: col}
	}
	return err
}
