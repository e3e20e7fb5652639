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

// WishlistRepo хранит записи списков желаний вместе с актуальными данными товара.
type WishlistRepo struct {
	pool *pgxpool.Pool
	conv converter.WishlistConverter
}

func NewWishlistRepo(pool *pgxpool.Pool, conv converter.WishlistConverter) *WishlistRepo {
	return &WishlistRepo{pool: pool, conv: conv}
}

const wishlistColumns = `w.id, w.user_id, w.quantity, ` + productColumns

func scanWishlist(row scanner, model *converter.WishlistModel) error {
	return row.Scan(
		&model.ID, &model.UserID, &model.Quantity,
		&model.Product.ID, &model.Product.CategoryID, &model.Product.Title, &model.Product.Slug,
		&model.Product.Description, &model.Product.Price, &model.Product.ImageKey,
	)
}

// GetByID читает запись с блокировкой строки, чтобы инкременты внутри транзакции не терялись.
func (w *WishlistRepo) GetByID(ctx context.Context, id int64) (*domain.Wishlist, error) {
	query := `
		SELECT ` + wishlistColumns + `
		FROM wishlists w
		JOIN products p ON p.id = w.product_id
		WHERE w.id = $1
		FOR UPDATE OF w
	`

	var model converter.WishlistModel
	if err := scanWishlist(tr.Executor(ctx, w.pool).QueryRow(ctx, query, id), &model); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrWishlistNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return w.conv.ToEntity(&model), nil
}

func (w *WishlistRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Wishlist, error) {
	query := `
		SELECT ` + wishlistColumns + `
		FROM wishlists w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.id
	`

	rows, err := tr.Executor(ctx, w.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Wishlist, 0)
	for rows.Next() {
		var model converter.WishlistModel
		if err := scanWishlist(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *w.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Upsert создаёт запись или перезаписывает количество у существующей пары (пользователь, товар).
func (w *WishlistRepo) Upsert(ctx context.Context, wishlist *domain.Wishlist) (*domain.Wishlist, error) {
	query := `
		WITH upserted AS (
			INSERT INTO wishlists (user_id, product_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT ON CONSTRAINT user_product
			DO UPDATE SET quantity = EXCLUDED.quantity
			RETURNING id, user_id, product_id, quantity
		)
		SELECT ` + wishlistColumns + `
		FROM upserted w
		JOIN products p ON p.id = w.product_id
	`

	var model converter.WishlistModel
	row := tr.Executor(ctx, w.pool).QueryRow(ctx, query, wishlist.UserID, wishlist.Product.ID, wishlist.Quantity)
	if err := scanWishlist(row, &model); err != nil {
		if postgresForeignKey(err) {
			if pgConstraint(err) == "wishlists_user_id_fkey" {
				return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
			}
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return w.conv.ToEntity(&model), nil
}

func (w *WishlistRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	tag, err := tr.Executor(ctx, w.pool).Exec(ctx, `UPDATE wishlists SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrWishlistNotFound)
	}

	return nil
}

func (w *WishlistRepo) Delete(ctx context.Context, id int64) error {
	tag, err := tr.Executor(ctx, w.pool).Exec(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrWishlistNotFound)
	}

	return nil
}
