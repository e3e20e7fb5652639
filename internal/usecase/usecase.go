package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type CatalogUC interface {
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, slug string) error

	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) error
	DeleteProduct(ctx context.Context, id int64) error
}

type WishlistUC interface {
	List(ctx context.Context, userID int64) ([]domain.Wishlist, error)
	Upsert(ctx context.Context, req *UpsertWishlistReq) (*domain.Wishlist, error)
	Increment(ctx context.Context, id int64) (*domain.Wishlist, error)
	Decrement(ctx context.Context, id int64) (*domain.Wishlist, error)
}

type OrderUC interface {
	CreateOrder(ctx context.Context, wishlistIDs []int64) (*domain.Order, error)
	ChangeStatus(ctx context.Context, req *ChangeStatusReq) (*domain.Order, error)
	ListOrderItems(ctx context.Context) ([]domain.OrderItemView, error)
	ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	ListItemsOfOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	CreateStatus(ctx context.Context, principal *domain.Principal, name string) (*domain.Status, error)
}

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*LoginRes, error)
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, sessionID string) (*domain.Principal, error)
	CurrentUser(ctx context.Context, principal *domain.Principal) (*domain.User, error)
	ListUsers(ctx context.Context, principal *domain.Principal) ([]domain.User, error)
}
