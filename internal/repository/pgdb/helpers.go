package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func postgresDuplicate(err error) bool {
	return pgErrorCode(err) == uniqueViolation
}

func postgresForeignKey(err error) bool {
	return pgErrorCode(err) == foreignKeyViolation
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// productColumns — колонки products с алиасом p, в порядке scanProduct.
const productColumns = `p.id, p.category_id, p.title, p.slug, p.description, p.price, p.image_key`

func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
