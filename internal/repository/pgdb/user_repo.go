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

type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{pool: pool, conv: conv}
}

const userColumns = `id, username, email, password_hash, is_superuser, permissions, created_at`

func scanUser(row scanner, model *converter.UserModel) error {
	return row.Scan(
		&model.ID, &model.Username, &model.Email, &model.PasswordHash,
		&model.IsSuperuser, &model.Permissions, &model.CreatedAt,
	)
}

func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, is_superuser, permissions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	model := u.conv.ToModel(user)
	row := tr.Executor(ctx, u.pool).QueryRow(ctx, query,
		model.Username, model.Email, model.PasswordHash, model.IsSuperuser, model.Permissions,
	)
	if err := scanUser(row, model); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUsernameTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}

func (u *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return u.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (u *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return u.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (u *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := tr.Executor(ctx, u.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (u *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := tr.Executor(ctx, u.pool).Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.User, 0)
	for rows.Next() {
		var model converter.UserModel
		if err := scanUser(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *u.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (u *UserRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var model converter.UserModel
	if err := scanUser(tr.Executor(ctx, u.pool).QueryRow(ctx, query, arg), &model); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}
