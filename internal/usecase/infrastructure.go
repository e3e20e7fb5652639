package usecase

import "context"

// TxManager выполняет fn в одной транзакции БД. Репозитории берут транзакцию из ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (string, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// OrderEventEncoder сериализует событие заказа в формат сообщения Kafka.
type OrderEventEncoder interface {
	EncodeOrderEvent(event *OrderEvent) ([]byte, error)
}

// PasswordHasher скрывает алгоритм хэширования паролей.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) bool
}

// OrderMetrics собирает бизнес-метрики по заказам.
type OrderMetrics interface {
	ObserveOrderCreated(total int64)
	ObserveStatusChanged(status string)
}
