package domain

// Product описывает товар
type Product struct {
	ID          int64
	CategoryID  int64
	Title       string
	Slug        string
	Description string
	Price       int64   // Цена хранится в копейках
	ImageKey    *string // ключ объекта в MinIO
}

func NewProduct(title, slug, description string, price int64, categoryID int64) *Product {
	return &Product{
		Title:       title,
		Slug:        slug,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
	}
}

// ProductFilter — условия выборки товаров. Незаданные поля не участвуют,
// заданные объединяются через AND.
type ProductFilter struct {
	MinPrice    *int64
	MaxPrice    *int64
	Title       *string
	Description *string
	CategoryID  *int64
}
