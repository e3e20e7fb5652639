package domain

import "github.com/DRSN-tech/storefront/pkg/e"

const (
	// DefaultWishlistQuantity — количество по умолчанию для новой записи.
	DefaultWishlistQuantity int64 = 1
	// MaxWishlistQuantity ограничивает количество в одной записи.
	MaxWishlistQuantity int64 = 10_000
)

// ValidateWishlistQuantity проверяет, что количество лежит в [1, MaxWishlistQuantity].
func ValidateWishlistQuantity(quantity int64) error {
	switch {
	case quantity <= 0:
		return e.ErrQuantityMustBePositive
	case quantity > MaxWishlistQuantity:
		return e.ErrQuantityTooLarge
	}

	return nil
}

// Wishlist — запись списка желаний: уникальная пара (пользователь, товар) с количеством.
type Wishlist struct {
	ID       int64
	UserID   int64
	Product  Product
	Quantity int64
}

func NewWishlist(userID int64, product Product, quantity int64) *Wishlist {
	return &Wishlist{
		UserID:   userID,
		Product:  product,
		Quantity: quantity,
	}
}

// Increment добавляет единицу, не выходя за MaxWishlistQuantity.
func (w *Wishlist) Increment() error {
	if w.Quantity >= MaxWishlistQuantity {
		return e.ErrQuantityTooLarge
	}
	w.Quantity++

	return nil
}

// Decrement уменьшает количество на единицу, не опускаясь ниже нуля.
// Возвращает true, если запись опустела и должна быть удалена.
func (w *Wishlist) Decrement() bool {
	if w.Quantity > 0 {
		w.Quantity--
	}

	return w.Quantity == 0
}
