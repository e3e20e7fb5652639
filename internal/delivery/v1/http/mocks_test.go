package http

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type mockCatalogUC struct{ mock.Mock }

func (m *mockCatalogUC) CreateCategory(ctx context.Context, req *usecase.CreateCategoryReq) (*domain.Category, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCatalogUC) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCatalogUC) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.Category)
	return c, args.Error(1)
}

func (m *mockCatalogUC) DeleteCategory(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

func (m *mockCatalogUC) CreateProduct(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockCatalogUC) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockCatalogUC) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	p, _ := args.Get(0).([]domain.Product)
	return p, args.Error(1)
}

func (m *mockCatalogUC) UpdateProduct(ctx context.Context, req *usecase.UpdateProductReq) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockCatalogUC) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockWishlistUC struct{ mock.Mock }

func (m *mockWishlistUC) List(ctx context.Context, userID int64) ([]domain.Wishlist, error) {
	args := m.Called(ctx, userID)
	w, _ := args.Get(0).([]domain.Wishlist)
	return w, args.Error(1)
}

func (m *mockWishlistUC) Upsert(ctx context.Context, req *usecase.UpsertWishlistReq) (*domain.Wishlist, error) {
	args := m.Called(ctx, req)
	w, _ := args.Get(0).(*domain.Wishlist)
	return w, args.Error(1)
}

func (m *mockWishlistUC) Increment(ctx context.Context, id int64) (*domain.Wishlist, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*domain.Wishlist)
	return w, args.Error(1)
}

func (m *mockWishlistUC) Decrement(ctx context.Context, id int64) (*domain.Wishlist, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*domain.Wishlist)
	return w, args.Error(1)
}

type mockOrderUC struct{ mock.Mock }

func (m *mockOrderUC) CreateOrder(ctx context.Context, wishlistIDs []int64) (*domain.Order, error) {
	args := m.Called(ctx, wishlistIDs)
	o, _ := args.Get(0).(*domain.Order)
	return o, args.Error(1)
}

func (m *mockOrderUC) ChangeStatus(ctx context.Context, req *usecase.ChangeStatusReq) (*domain.Order, error) {
	args := m.Called(ctx, req)
	o, _ := args.Get(0).(*domain.Order)
	return o, args.Error(1)
}

func (m *mockOrderUC) ListOrderItems(ctx context.Context) ([]domain.OrderItemView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.OrderItemView)
	return v, args.Error(1)
}

func (m *mockOrderUC) ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	o, _ := args.Get(0).([]domain.Order)
	return o, args.Error(1)
}

func (m *mockOrderUC) ListItemsOfOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	i, _ := args.Get(0).([]domain.OrderItem)
	return i, args.Error(1)
}

func (m *mockOrderUC) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]domain.Status)
	return s, args.Error(1)
}

func (m *mockOrderUC) CreateStatus(ctx context.Context, principal *domain.Principal, name string) (*domain.Status, error) {
	args := m.Called(ctx, principal, name)
	s, _ := args.Get(0).(*domain.Status)
	return s, args.Error(1)
}

type mockAuthUC struct{ mock.Mock }

func (m *mockAuthUC) Register(ctx context.Context, req *usecase.RegisterReq) (*usecase.LoginRes, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*usecase.LoginRes)
	return res, args.Error(1)
}

func (m *mockAuthUC) Login(ctx context.Context, req *usecase.LoginReq) (*usecase.LoginRes, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*usecase.LoginRes)
	return res, args.Error(1)
}

func (m *mockAuthUC) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockAuthUC) Authenticate(ctx context.Context, sessionID string) (*domain.Principal, error) {
	args := m.Called(ctx, sessionID)
	p, _ := args.Get(0).(*domain.Principal)
	return p, args.Error(1)
}

func (m *mockAuthUC) CurrentUser(ctx context.Context, principal *domain.Principal) (*domain.User, error) {
	args := m.Called(ctx, principal)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockAuthUC) ListUsers(ctx context.Context, principal *domain.Principal) ([]domain.User, error) {
	args := m.Called(ctx, principal)
	u, _ := args.Get(0).([]domain.User)
	return u, args.Error(1)
}
