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

// OrderRepo хранит заказы и их позиции.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv}
}

const orderColumns = `o.id, o.user_id, o.status_id, s.name, o.total, o.created_at`

func scanOrder(row scanner, model *converter.OrderModel) error {
	return row.Scan(&model.ID, &model.UserID, &model.StatusID, &model.StatusName, &model.Total, &model.CreatedAt)
}

const itemColumns = `i.id, i.order_id, i.cost, i.quantity, ` + productColumns

func scanItem(row scanner, model *converter.OrderItemModel, extra ...any) error {
	dest := []any{
		&model.ID, &model.OrderID, &model.Cost, &model.Quantity,
		&model.Product.ID, &model.Product.CategoryID, &model.Product.Title, &model.Product.Slug,
		&model.Product.Description, &model.Product.Price, &model.Product.ImageKey,
	}
	return row.Scan(append(dest, extra...)...)
}

func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (user_id, status_id, total)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	created := *order
	if err := tr.Executor(ctx, o.pool).QueryRow(ctx, query, order.UserID, order.Status.ID, order.Total).
		Scan(&created.ID, &created.CreatedAt); err != nil {
		if postgresForeignKey(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN statuses s ON s.id = o.status_id
		WHERE o.id = $1
	`

	var model converter.OrderModel
	if err := scanOrder(tr.Executor(ctx, o.pool).QueryRow(ctx, query, id), &model); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

// ListByUser возвращает заказы пользователя в порядке оформления.
func (o *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN statuses s ON s.id = o.status_id
		WHERE o.user_id = $1
		ORDER BY o.created_at, o.id
	`

	rows, err := tr.Executor(ctx, o.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Order, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := scanOrder(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *o.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (o *OrderRepo) UpdateTotal(ctx context.Context, id int64, total int64) error {
	tag, err := tr.Executor(ctx, o.pool).Exec(ctx, `UPDATE orders SET total = $2 WHERE id = $1`, id, total)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, statusID int64) error {
	tag, err := tr.Executor(ctx, o.pool).Exec(ctx, `UPDATE orders SET status_id = $2 WHERE id = $1`, id, statusID)
	if err != nil {
		if postgresForeignKey(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrStatusNotFound)
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

func (o *OrderRepo) CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	query := `
		INSERT INTO order_items (order_id, product_id, cost, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	created := *item
	if err := tr.Executor(ctx, o.pool).QueryRow(ctx, query, item.OrderID, item.Product.ID, item.Cost, item.Quantity).
		Scan(&created.ID); err != nil {
		if postgresForeignKey(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (o *OrderRepo) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`

	rows, err := tr.Executor(ctx, o.pool).Query(ctx, query, orderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.OrderItem, 0)
	for rows.Next() {
		var model converter.OrderItemModel
		if err := scanItem(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *o.conv.ItemToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// ListAllItems возвращает все позиции всех заказов вместе с заказом.
func (o *OrderRepo) ListAllItems(ctx context.Context) ([]domain.OrderItemView, error) {
	query := `
		SELECT ` + itemColumns + `, ` + orderColumns + `
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		JOIN orders o ON o.id = i.order_id
		JOIN statuses s ON s.id = o.status_id
		ORDER BY i.id
	`

	rows, err := tr.Executor(ctx, o.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.OrderItemView, 0)
	for rows.Next() {
		var (
			item  converter.OrderItemModel
			order converter.OrderModel
		)
		if err := scanItem(rows, &item,
			&order.ID, &order.UserID, &order.StatusID, &order.StatusName, &order.Total, &order.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, domain.OrderItemView{
			OrderItem: *o.conv.ItemToEntity(&item),
			Order:     *o.conv.ToEntity(&order),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
