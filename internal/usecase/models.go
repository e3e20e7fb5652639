package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// CATALOG USECASE

// CreateCategoryReq — запрос на создание категории. Пустой Slug строится из Title.
type CreateCategoryReq struct {
	Title string
	Slug  string
}

// ProductInput — полный набор полей товара. Частичное обновление не поддерживается.
type ProductInput struct {
	Title        string
	Slug         string
	CategorySlug string
	Description  string
	Price        int64 // в копейках
}

// CreateProductReq — запрос на добавление товара вместе с изображением.
type CreateProductReq struct {
	ProductInput
	Image *ProductImage
}

// UpdateProductReq — запрос на перезапись всех полей товара.
type UpdateProductReq struct {
	ID int64
	ProductInput
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type, определённый по содержимому (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// WISHLIST / ORDER USECASE

type UpsertWishlistReq struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

type ChangeStatusReq struct {
	OrderID  int64
	StatusID int64
}

// AUTH USECASE

type RegisterReq struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
}

type LoginReq struct {
	Username string
	Password string
}

// LoginRes — созданная сессия и её владелец.
type LoginRes struct {
	SessionID string
	User      *domain.User
}

// INFRASTRUCTURE

// UploadImageReq — запрос на загрузку изображения товара.
type UploadImageReq struct {
	Prefix string // префикс ключа объекта, обычно slug товара
	Image  ProductImage
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
	Failed     OutboxStatus = "failed"
)

type OutboxEventType string

const (
	OrderCreated       OutboxEventType = "order.created"
	OrderStatusChanged OutboxEventType = "order.status_changed"
)

// OutboxEvent — событие, сохранённое в одной транзакции с изменением заказа
// и отправляемое в Kafka фоновым воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	Attempts    int
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderEvent — содержимое сообщения о заказе.
type OrderEvent struct {
	EventID    string
	EventType  OutboxEventType
	OrderID    int64
	UserID     int64
	StatusID   int64
	StatusName string
	Total      int64
	OccurredAt time.Time
}

// MAPPERS

func NewCreateCategoryReq(title, slug string) *CreateCategoryReq {
	return &CreateCategoryReq{Title: title, Slug: slug}
}

func NewProductInput(title, slug, categorySlug, description string, price int64) ProductInput {
	return ProductInput{
		Title:        title,
		Slug:         slug,
		CategorySlug: categorySlug,
		Description:  description,
		Price:        price,
	}
}

func NewCreateProductReq(input ProductInput, image *ProductImage) *CreateProductReq {
	return &CreateProductReq{ProductInput: input, Image: image}
}

func NewUpdateProductReq(id int64, input ProductInput) *UpdateProductReq {
	return &UpdateProductReq{ID: id, ProductInput: input}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(prefix string, image ProductImage) *UploadImageReq {
	return &UploadImageReq{Prefix: prefix, Image: image}
}

func NewUpsertWishlistReq(userID, productID, quantity int64) *UpsertWishlistReq {
	return &UpsertWishlistReq{UserID: userID, ProductID: productID, Quantity: quantity}
}

func NewChangeStatusReq(orderID, statusID int64) *ChangeStatusReq {
	return &ChangeStatusReq{OrderID: orderID, StatusID: statusID}
}

func NewRegisterReq(username, email, password1, password2 string) *RegisterReq {
	return &RegisterReq{
		Username:  username,
		Email:     email,
		Password1: password1,
		Password2: password2,
	}
}

func NewLoginReq(username, password string) *LoginReq {
	return &LoginReq{Username: username, Password: password}
}

func NewLoginRes(sessionID string, user *domain.User) *LoginRes {
	return &LoginRes{SessionID: sessionID, User: user}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{OrderID: orderID, Payload: payload}
}

func NewOrderEvent(eventID string, eventType OutboxEventType, order *domain.Order, occurredAt time.Time) *OrderEvent {
	return &OrderEvent{
		EventID:    eventID,
		EventType:  eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		StatusID:   order.Status.ID,
		StatusName: order.Status.Name,
		Total:      order.Total,
		OccurredAt: occurredAt,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte, createdAt time.Time) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: createdAt,
	}
}
