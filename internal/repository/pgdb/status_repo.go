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

type StatusRepo struct {
	pool *pgxpool.Pool
	conv converter.StatusConverter
}

func NewStatusRepo(pool *pgxpool.Pool, conv converter.StatusConverter) *StatusRepo {
	return &StatusRepo{pool: pool, conv: conv}
}

func (s *StatusRepo) GetByID(ctx context.Context, id int64) (*domain.Status, error) {
	var model converter.StatusModel
	if err := tr.Executor(ctx, s.pool).QueryRow(ctx, `SELECT id, name FROM statuses WHERE id = $1`, id).
		Scan(&model.ID, &model.Name); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrStatusNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *StatusRepo) List(ctx context.Context) ([]domain.Status, error) {
	rows, err := tr.Executor(ctx, s.pool).Query(ctx, `SELECT id, name FROM statuses ORDER BY id`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Status, 0)
	for rows.Next() {
		var model converter.StatusModel
		if err := rows.Scan(&model.ID, &model.Name); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *s.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (s *StatusRepo) Create(ctx context.Context, status *domain.Status) (*domain.Status, error) {
	var model converter.StatusModel
	if err := tr.Executor(ctx, s.pool).QueryRow(ctx,
		`INSERT INTO statuses (name) VALUES ($1) RETURNING id, name`, status.Name,
	).Scan(&model.ID, &model.Name); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}
