package domain

import (
	"math"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// Order описывает заказ пользователя
type Order struct {
	ID        int64
	UserID    int64
	Status    Status
	Total     int64 // сумма стоимостей позиций, в копейках
	CreatedAt time.Time
	Items     []OrderItem
}

func NewOrder(userID int64, status Status) *Order {
	return &Order{
		UserID: userID,
		Status: status,
	}
}

// ComputeTotal пересчитывает сумму заказа по сохранённым позициям.
// При переполнении int64 сумма не меняется и возвращается e.ErrOrderCostOverflow.
func (o *Order) ComputeTotal(items []OrderItem) (int64, error) {
	var total int64
	for _, item := range items {
		if item.Cost < 0 || total > math.MaxInt64-item.Cost {
			return 0, e.ErrOrderCostOverflow
		}
		total += item.Cost
	}
	o.Total = total

	return total, nil
}

// OrderItem — позиция заказа. Cost фиксируется при создании и не пересчитывается
// при изменении цены товара.
type OrderItem struct {
	ID       int64
	OrderID  int64
	Product  Product
	Cost     int64
	Quantity int64
}

func NewOrderItem(orderID int64, product Product, quantity int64) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, e.ErrQuantityMustBePositive
	}
	if product.Price < 0 || product.Price > math.MaxInt64/quantity {
		return nil, e.ErrOrderCostOverflow
	}

	return &OrderItem{
		OrderID:  orderID,
		Product:  product,
		Cost:     product.Price * quantity,
		Quantity: quantity,
	}, nil
}

// OrderItemView — позиция вместе с заказом, к которому она относится.
type OrderItemView struct {
	OrderItem
	Order Order
}
