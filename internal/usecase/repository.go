package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
}

type StatusRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Status, error)
	List(ctx context.Context) ([]domain.Status, error)
	Create(ctx context.Context, status *domain.Status) (*domain.Status, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateTotal(ctx context.Context, id int64, total int64) error
	UpdateStatus(ctx context.Context, id int64, statusID int64) error
	CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ListAllItems(ctx context.Context) ([]domain.OrderItemView, error)
}

type WishlistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Wishlist, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Wishlist, error)
	Upsert(ctx context.Context, wishlist *domain.Wishlist) (*domain.Wishlist, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error
	GetUserID(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	MarkAsFailed(ctx context.Context, id int64, maxAttempts int) error
}
