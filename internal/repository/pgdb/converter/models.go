package converter

import "time"

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Slug  string `db:"slug"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64   `db:"id"`
	CategoryID  int64   `db:"category_id"`
	Title       string  `db:"title"`
	Slug        string  `db:"slug"`
	Description string  `db:"description"`
	Price       int64   `db:"price"`
	ImageKey    *string `db:"image_key"`
}

type StatusModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// OrderModel — запись orders вместе с названием статуса из JOIN statuses.
type OrderModel struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	StatusID   int64     `db:"status_id"`
	StatusName string    `db:"status_name"`
	Total      int64     `db:"total"`
	CreatedAt  time.Time `db:"created_at"`
}

// OrderItemModel — запись order_items с товаром из JOIN products.
type OrderItemModel struct {
	ID       int64 `db:"id"`
	OrderID  int64 `db:"order_id"`
	Cost     int64 `db:"cost"`
	Quantity int64 `db:"quantity"`
	Product  ProductModel
}

// WishlistModel — запись wishlists с товаром из JOIN products.
type WishlistModel struct {
	ID       int64 `db:"id"`
	UserID   int64 `db:"user_id"`
	Quantity int64 `db:"quantity"`
	Product  ProductModel
}

type UserModel struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsSuperuser  bool      `db:"is_superuser"`
	Permissions  []string  `db:"permissions"`
	CreatedAt    time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	Attempts    int        `db:"attempts"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
