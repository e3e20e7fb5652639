package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// CatalogUseCase реализует бизнес-логику управления категориями и товарами.
type CatalogUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	txManager    TxManager
	imagesInfra  ImagesInfra
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewCatalogUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	txManager TxManager,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		txManager:    txManager,
		imagesInfra:  imagesInfra,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// CreateCategory создаёт категорию. Повторный slug — ошибка валидации.
func (c *CatalogUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, e.Wrap(op, e.ErrCategoryTitleRequired)
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = domain.Slugify(title)
	}
	if slug == "" {
		return nil, e.Wrap(op, e.ErrSlugRequired)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(title, slug))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	const op = "CatalogUseCase.GetCategory"

	category, err := c.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// DeleteCategory удаляет категорию вместе со всеми её товарами (и, каскадно, позициями заказов).
// После коммита из кэша и хранилища изображений убираются данные удалённых товаров.
func (c *CatalogUseCase) DeleteCategory(ctx context.Context, slug string) error {
	const op = "CatalogUseCase.DeleteCategory"

	var products []domain.Product
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		category, err := c.categoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}

		products, err = c.productRepo.ListByCategory(ctx, category.ID)
		if err != nil {
			return err
		}

		return c.categoryRepo.DeleteBySlug(ctx, slug)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(products))
	keys := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
		if product.ImageKey != nil {
			keys = append(keys, *product.ImageKey)
		}
	}

	c.evictProducts(ctx, op, ids)
	c.imagesInfra.CleanupImages(keys)

	return nil
}

// CreateProduct добавляет товар в существующую категорию и сохраняет его изображение в MinIO.
// Если запись в БД не удалась, загруженное изображение удаляется.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	input, err := c.normalizeProduct(req.ProductInput)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Image == nil || len(req.Image.Data) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	category, err := c.categoryRepo.GetBySlug(ctx, input.CategorySlug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	key, err := c.imagesInfra.UploadImage(ctx, NewUploadImageReq(input.Slug, *req.Image))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(input.Title, input.Slug, input.Description, input.Price, category.ID)
	product.ImageKey = &key

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		c.logger.Warnf("Cleaning up orphaned image after insert failure. product: %s, error: %v", input.Slug, e.Wrap(op, err))
		c.imagesInfra.CleanupImages([]string{key})

		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// GetProduct возвращает товар, сначала пытаясь взять его из кэша.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	cached, err := c.cacheRepo.GetProducts(ctx, []int64{id})
	if err != nil {
		c.logger.Warnf("Product cache lookup failed: %v", e.Wrap(op, err))
	} else if product, ok := cached[id]; ok {
		return &product, nil
	}

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление товара в кэш
	toCache := *product
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProducts(bgCtx, []domain.Product{toCache}); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}

func (c *CatalogUseCase) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// UpdateProduct перезаписывает все поля товара, категория заново ищется по slug.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) error {
	const op = "CatalogUseCase.UpdateProduct"

	input, err := c.normalizeProduct(req.ProductInput)
	if err != nil {
		return e.Wrap(op, err)
	}

	product, err := c.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return e.Wrap(op, err)
	}

	category, err := c.categoryRepo.GetBySlug(ctx, input.CategorySlug)
	if err != nil {
		return e.Wrap(op, err)
	}

	applyProductInput(product, input, category.ID)

	if err := c.productRepo.Update(ctx, product); err != nil {
		return e.Wrap(op, err)
	}

	c.evictProducts(ctx, op, []int64{product.ID})

	return nil
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.evictProducts(ctx, op, []int64{id})
	if product.ImageKey != nil {
		c.imagesInfra.CleanupImages([]string{*product.ImageKey})
	}

	return nil
}

// applyProductInput переносит поля запроса в сущность по одному, без частичных обновлений.
func applyProductInput(product *domain.Product, input ProductInput, categoryID int64) {
	product.Title = input.Title
	product.Slug = input.Slug
	product.Description = input.Description
	product.Price = input.Price
	product.CategoryID = categoryID
}

// normalizeProduct проверяет поля товара; пустой slug строится из названия.
func (c *CatalogUseCase) normalizeProduct(input ProductInput) (ProductInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return input, e.ErrProductTitleRequired
	}

	if input.Price < 0 {
		return input, e.ErrInvalidPrice
	}

	input.CategorySlug = strings.TrimSpace(input.CategorySlug)
	if input.CategorySlug == "" {
		return input, e.ErrMissingFields
	}

	input.Slug = strings.TrimSpace(input.Slug)
	if input.Slug == "" {
		input.Slug = domain.Slugify(input.Title)
	}
	if input.Slug == "" {
		return input, e.ErrSlugRequired
	}

	return input, nil
}

// evictProducts удаляет устаревшие записи из кэша; ошибка кэша не ломает запрос.
func (c *CatalogUseCase) evictProducts(ctx context.Context, op string, ids []int64) {
	if err := c.cacheRepo.DeleteProducts(ctx, ids); err != nil {
		c.logger.Warnf("Failed to delete products from cache: %v", e.Wrap(op, err))
	}
}
