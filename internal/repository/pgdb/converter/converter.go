package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

type StatusConverter interface {
	ToEntity(model *StatusModel) *domain.Status
}

type OrderConverter interface {
	ToEntity(model *OrderModel) *domain.Order
	ItemToEntity(model *OrderItemModel) *domain.OrderItem
}

type WishlistConverter interface {
	ToEntity(model *WishlistModel) *domain.Wishlist
}

type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type CategoryConverterImpl struct{}

func (CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}
	return &CategoryModel{ID: entity.ID, Title: entity.Title, Slug: entity.Slug}
}

func (CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return &domain.Category{ID: model.ID, Title: model.Title, Slug: model.Slug}
}

type ProductConverterImpl struct{}

func (ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{
		ID:          entity.ID,
		CategoryID:  entity.CategoryID,
		Title:       entity.Title,
		Slug:        entity.Slug,
		Description: entity.Description,
		Price:       entity.Price,
		ImageKey:    entity.ImageKey,
	}
}

func (ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:          model.ID,
		CategoryID:  model.CategoryID,
		Title:       model.Title,
		Slug:        model.Slug,
		Description: model.Description,
		Price:       model.Price,
		ImageKey:    model.ImageKey,
	}
}

type StatusConverterImpl struct{}

func (StatusConverterImpl) ToEntity(model *StatusModel) *domain.Status {
	if model == nil {
		return nil
	}
	return &domain.Status{ID: model.ID, Name: model.Name}
}

type OrderConverterImpl struct {
	products ProductConverterImpl
}

func (OrderConverterImpl) ToEntity(model *OrderModel) *domain.Order {
	if model == nil {
		return nil
	}
	return &domain.Order{
		ID:        model.ID,
		UserID:    model.UserID,
		Status:    domain.Status{ID: model.StatusID, Name: model.StatusName},
		Total:     model.Total,
		CreatedAt: model.CreatedAt,
	}
}

func (c OrderConverterImpl) ItemToEntity(model *OrderItemModel) *domain.OrderItem {
	if model == nil {
		return nil
	}
	return &domain.OrderItem{
		ID:       model.ID,
		OrderID:  model.OrderID,
		Product:  *c.products.ToEntity(&model.Product),
		Cost:     model.Cost,
		Quantity: model.Quantity,
	}
}

type WishlistConverterImpl struct {
	products ProductConverterImpl
}

func (c WishlistConverterImpl) ToEntity(model *WishlistModel) *domain.Wishlist {
	if model == nil {
		return nil
	}
	return &domain.Wishlist{
		ID:       model.ID,
		UserID:   model.UserID,
		Product:  *c.products.ToEntity(&model.Product),
		Quantity: model.Quantity,
	}
}

type UserConverterImpl struct{}

func (UserConverterImpl) ToModel(entity *domain.User) *UserModel {
	if entity == nil {
		return nil
	}
	permissions := entity.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return &UserModel{
		ID:           entity.ID,
		Username:     entity.Username,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		IsSuperuser:  entity.IsSuperuser,
		Permissions:  permissions,
		CreatedAt:    entity.CreatedAt,
	}
}

func (UserConverterImpl) ToEntity(model *UserModel) *domain.User {
	if model == nil {
		return nil
	}
	return &domain.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		IsSuperuser:  model.IsSuperuser,
		Permissions:  model.Permissions,
		CreatedAt:    model.CreatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func (OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		Attempts:    entity.Attempts,
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	if model == nil {
		return nil
	}
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		Attempts:    model.Attempts,
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}
	return result
}
