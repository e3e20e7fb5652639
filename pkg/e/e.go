package e

import (
	"errors"
	"fmt"
)

// Классы ошибок. Конкретные ошибки ниже оборачивают один из классов,
// по нему delivery-слой выбирает HTTP-код.
var (
	ErrNotFound             = fmt.Errorf("not found")
	ErrValidation           = fmt.Errorf("validation error")
	ErrUnauthenticated      = fmt.Errorf("authentication required")
	ErrForbidden            = fmt.Errorf("permission denied")
	ErrAuthenticationFailed = fmt.Errorf("authentication failed")
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 404 Not Found
	ErrCategoryNotFound = classed(ErrNotFound, "category not found")
	ErrProductNotFound  = classed(ErrNotFound, "product not found")
	ErrUserNotFound     = classed(ErrNotFound, "user not found")
	ErrWishlistNotFound = classed(ErrNotFound, "wishlist entry not found")
	ErrOrderNotFound    = classed(ErrNotFound, "order not found")
	ErrStatusNotFound   = classed(ErrNotFound, "status not found")
	ErrNoWishlists      = classed(ErrNotFound, "no wishlist entries provided")

	// 400 Bad Request
	ErrStatusBadRequest       = classed(ErrValidation, "bad request")
	ErrExpectedMultipart      = classed(ErrValidation, "expected multipart/form-data")
	ErrExpectedJSON           = classed(ErrValidation, "expected application/json body")
	ErrMissingFields          = classed(ErrValidation, "missing required fields")
	ErrInvalidPrice           = classed(ErrValidation, "invalid price")
	ErrPricePrecision         = classed(ErrValidation, "price must have at most 2 decimal places")
	ErrNoImages               = classed(ErrValidation, "no image provided")
	ErrFileTooLarge           = classed(ErrValidation, "file too large")
	ErrUnsupportedMediaType   = classed(ErrValidation, "unsupported media type")
	ErrInvalidID              = classed(ErrValidation, "invalid id")
	ErrCategoryTitleRequired  = classed(ErrValidation, "category title is required")
	ErrCategorySlugTaken      = classed(ErrValidation, "category with this slug already exists")
	ErrProductTitleRequired   = classed(ErrValidation, "product title is required")
	ErrQuantityMustBePositive = classed(ErrValidation, "quantity must be positive")
	ErrQuantityTooLarge       = classed(ErrValidation, "quantity is too large")
	ErrOrderCostOverflow      = classed(ErrValidation, "order cost is too large")
	ErrSlugRequired           = classed(ErrValidation, "slug is required when the title has no letters or digits")
	ErrWishlistEntryExists    = classed(ErrValidation, "wishlist entry already exists")
	ErrOrderMixedOwners       = classed(ErrValidation, "wishlist entries belong to different users")
	ErrStatusNameRequired     = classed(ErrValidation, "status name is required")
	ErrUsernameTaken          = classed(ErrValidation, "user with this username already exists")
	ErrPasswordsMismatch      = classed(ErrValidation, "passwords do not match")
	ErrCredentialsRequired    = classed(ErrValidation, "username and password are required")

	// 401 / 403
	ErrNotLoggedIn        = classed(ErrUnauthenticated, "you are not logged in")
	ErrInvalidCredentials = classed(ErrAuthenticationFailed, "invalid username or password")
	ErrInsufficientRights = classed(ErrForbidden, "not enough rights to perform this action")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// classedError — конкретная ошибка, принадлежащая классу.
// errors.Is срабатывает и на саму ошибку, и на её класс.
type classedError struct {
	class error
	msg   string
}

func classed(class error, msg string) error {
	return &classedError{class: class, msg: msg}
}

func (c *classedError) Error() string { return c.msg }

func (c *classedError) Unwrap() error { return c.class }

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// Cause возвращает конкретную ошибку из цепочки или nil, если её нет.
func Cause(err error) error {
	var c *classedError
	if errors.As(err, &c) {
		return c
	}

	return nil
}
