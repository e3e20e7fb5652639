package pgdb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, postgresDuplicate(dup))
	assert.False(t, postgresForeignKey(dup))
	assert.True(t, postgresForeignKey(fk))
	assert.False(t, postgresDuplicate(errors.New("boom")))
	assert.True(t, noRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
}

func TestBuildProductFilter(t *testing.T) {
	minPrice, maxPrice := int64(100), int64(500)
	title := "hammer"
	categoryID := int64(3)

	where, args := buildProductFilter(domain.ProductFilter{
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
		Title:      &title,
		CategoryID: &categoryID,
	})
	assert.Equal(t, " WHERE p.price >= $1 AND p.price <= $2 AND p.title ILIKE $3 AND p.category_id = $4", where)
	assert.Equal(t, []any{int64(100), int64(500), "%hammer%", int64(3)}, args)

	where, args = buildProductFilter(domain.ProductFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
