package converter

// ProductRedisModel — товар в кэше, сериализуется в JSON.
type ProductRedisModel struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"category_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	ImageKey    *string `json:"image_key,omitempty"`
}
