package pgstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/5w1tchy/library-api/internal/store/books"
	"github.com/jackc/pgx/v5/pgconn"
)

// Map well-known constraint names to fields.
var constraintField = map[string]string{
	"books_title_check": "title",
	"books_pkey":        "id",
}

// mapPGError normalises driver errors into store sentinels. Errors it
// doesn't recognise are returned with the SQLSTATE attached.
func mapPGError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return books.ErrNotFound
	}
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return err
	}

	field := constraintField[pg.ConstraintName]
	if field == "" {
		field = pg.ColumnName
	}

	switch pg.Code {
	case "22P02": // invalid_text_representation (bad uuid)
		return fmt.Errorf("%w: %s", books.ErrMalformedID, strings.TrimSpace(pg.Message))
	case "23502", "23514": // not_null_violation, check_violation
		if field == "" {
			field = "field"
		}
		return fmt.Errorf("postgres %s on %s: %w", pg.Code, field, err)
	default:
		return fmt.Errorf("postgres %s: %w", pg.Code, err)
	}
}
