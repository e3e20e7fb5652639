package pgdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner, model *converter.ProductModel) error {
	return row.Scan(
		&model.ID, &model.CategoryID, &model.Title, &model.Slug,
		&model.Description, &model.Price, &model.ImageKey,
	)
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products AS p (category_id, title, slug, description, price, image_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns

	model := p.conv.ToModel(product)
	row := tr.Executor(ctx, p.pool).QueryRow(ctx, query,
		model.CategoryID, model.Title, model.Slug, model.Description, model.Price, model.ImageKey,
	)
	if err := scanProduct(row, model); err != nil {
		if postgresForeignKey(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`

	var model converter.ProductModel
	if err := scanProduct(tr.Executor(ctx, p.pool).QueryRow(ctx, query, id), &model); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// List возвращает товары, подходящие под все заданные условия фильтра, по названию.
func (p *ProductRepo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	where, args := buildProductFilter(filter)
	query := `SELECT ` + productColumns + ` FROM products p` + where + ` ORDER BY p.title, p.id`

	rows, err := tr.Executor(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := scanProduct(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *p.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return p.List(ctx, domain.ProductFilter{CategoryID: &categoryID})
}

// Update перезаписывает все поля товара.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, title = $3, slug = $4, description = $5, price = $6, image_key = $7
		WHERE id = $1
	`

	model := p.conv.ToModel(product)
	tag, err := tr.Executor(ctx, p.pool).Exec(ctx, query,
		model.ID, model.CategoryID, model.Title, model.Slug, model.Description, model.Price, model.ImageKey,
	)
	if err != nil {
		if postgresForeignKey(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := tr.Executor(ctx, p.pool).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// buildProductFilter собирает WHERE из заданных полей фильтра. Условия объединяются через AND,
// текстовые поиски регистронезависимы.
func buildProductFilter(filter domain.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.MinPrice != nil {
		add("p.price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("p.price <= $%d", *filter.MaxPrice)
	}
	if filter.Title != nil {
		add("p.title ILIKE $%d", "%"+escapeLike(*filter.Title)+"%")
	}
	if filter.Description != nil {
		add("p.description ILIKE $%d", "%"+escapeLike(*filter.Description)+"%")
	}
	if filter.CategoryID != nil {
		add("p.category_id = $%d", *filter.CategoryID)
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike экранирует спецсимволы LIKE, чтобы пользовательский ввод искался буквально.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
