package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// Create добавляет категорию. Занятый slug возвращает e.ErrCategorySlugTaken.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (title, slug) VALUES ($1, $2)
		RETURNING id, title, slug;
	`

	model := c.conv.ToModel(category)
	if err := tr.Executor(ctx, c.pool).QueryRow(ctx, query, model.Title, model.Slug).
		Scan(&model.ID, &model.Title, &model.Slug); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategorySlugTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `SELECT id, title, slug FROM categories WHERE slug = $1`

	var model converter.CategoryModel
	if err := tr.Executor(ctx, c.pool).QueryRow(ctx, query, slug).
		Scan(&model.ID, &model.Title, &model.Slug); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List возвращает все категории, отсортированные по названию.
func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, title, slug FROM categories ORDER BY title, id`

	rows, err := tr.Executor(ctx, c.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Title, &model.Slug); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *c.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// DeleteBySlug удаляет категорию. Товары и их позиции в заказах удаляются каскадно.
func (c *CategoryRepo) DeleteBySlug(ctx context.Context, slug string) error {
	tag, err := tr.Executor(ctx, c.pool).Exec(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return nil
}
