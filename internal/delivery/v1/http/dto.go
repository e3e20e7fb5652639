package http

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// REQUESTS

type CategoryIn struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// ProductIn — тело PUT /products/{id}. Все поля обязательны.
type ProductIn struct {
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Price       json.Number `json:"price" swaggertype:"number"`
}

type RegistrationIn struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

type LoginIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WishlistIn — тело POST /wishlist. Без quantity добавляется одна единица.
type WishlistIn struct {
	User     int64  `json:"user"`
	Product  int64  `json:"product"`
	Quantity *int64 `json:"quantity"`
}

type StatusIn struct {
	Name string `json:"name"`
}

// RESPONSES

type CategoryOut struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type ProductOut struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	CategoryID  int64       `json:"category_id"`
	Description string      `json:"description"`
	Price       json.Number `json:"price" swaggertype:"number"`
	Image       *string     `json:"image"`
}

type UserOut struct {
	Username string `json:"username"`
}

type UserWithEmailOut struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type WishlistOut struct {
	ID       int64      `json:"id"`
	User     int64      `json:"user"`
	Product  ProductOut `json:"product"`
	Quantity int64      `json:"quantity"`
}

type StatusOut struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OrderOut struct {
	ID        int64          `json:"id"`
	User      int64          `json:"user"`
	Status    StatusOut      `json:"status"`
	Total     json.Number    `json:"total" swaggertype:"number"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []OrderItemOut `json:"items,omitempty"`
}

type OrderItemOut struct {
	ID       int64       `json:"id"`
	Product  ProductOut  `json:"product"`
	Cost     json.Number `json:"cost" swaggertype:"number"`
	Quantity int64       `json:"quantity"`
}

// OrderItemWithOrderOut — позиция из общего списка, вместе с заказом.
type OrderItemWithOrderOut struct {
	OrderItemOut
	Order OrderOut `json:"order"`
}

// MAPPERS

func toCategoryOut(c domain.Category) CategoryOut {
	return CategoryOut{ID: c.ID, Title: c.Title, Slug: c.Slug}
}

func toCategoriesOut(categories []domain.Category) []CategoryOut {
	out := make([]CategoryOut, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryOut(c))
	}

	return out
}

func toProductOut(p domain.Product) ProductOut {
	return ProductOut{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Price:       formatCents(p.Price),
		Image:       p.ImageKey,
	}
}

func toProductsOut(products []domain.Product) []ProductOut {
	out := make([]ProductOut, 0, len(products))
	for _, p := range products {
		out = append(out, toProductOut(p))
	}

	return out
}

func toWishlistOut(w domain.Wishlist) WishlistOut {
	return WishlistOut{
		ID:       w.ID,
		User:     w.UserID,
		Product:  toProductOut(w.Product),
		Quantity: w.Quantity,
	}
}

func toWishlistsOut(entries []domain.Wishlist) []WishlistOut {
	out := make([]WishlistOut, 0, len(entries))
	for _, w := range entries {
		out = append(out, toWishlistOut(w))
	}

	return out
}

func toStatusOut(s domain.Status) StatusOut {
	return StatusOut{ID: s.ID, Name: s.Name}
}

func toStatusesOut(statuses []domain.Status) []StatusOut {
	out := make([]StatusOut, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, toStatusOut(s))
	}

	return out
}

func toOrderItemOut(item domain.OrderItem) OrderItemOut {
	return OrderItemOut{
		ID:       item.ID,
		Product:  toProductOut(item.Product),
		Cost:     formatCents(item.Cost),
		Quantity: item.Quantity,
	}
}

func toOrderItemsOut(items []domain.OrderItem) []OrderItemOut {
	out := make([]OrderItemOut, 0, len(items))
	for _, item := range items {
		out = append(out, toOrderItemOut(item))
	}

	return out
}

func toOrderOut(o domain.Order) OrderOut {
	out := OrderOut{
		ID:        o.ID,
		User:      o.UserID,
		Status:    toStatusOut(o.Status),
		Total:     formatCents(o.Total),
		CreatedAt: o.CreatedAt,
	}
	if len(o.Items) > 0 {
		out.Items = toOrderItemsOut(o.Items)
	}

	return out
}

func toOrdersOut(orders []domain.Order) []OrderOut {
	out := make([]OrderOut, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderOut(o))
	}

	return out
}

func toOrderItemViewsOut(views []domain.OrderItemView) []OrderItemWithOrderOut {
	out := make([]OrderItemWithOrderOut, 0, len(views))
	for _, v := range views {
		out = append(out, OrderItemWithOrderOut{
			OrderItemOut: toOrderItemOut(v.OrderItem),
			Order:        toOrderOut(v.Order),
		})
	}

	return out
}

func toUsersOut(users []domain.User) []UserWithEmailOut {
	out := make([]UserWithEmailOut, 0, len(users))
	for _, u := range users {
		out = append(out, UserWithEmailOut{Username: u.Username, Email: u.Email})
	}

	return out
}
