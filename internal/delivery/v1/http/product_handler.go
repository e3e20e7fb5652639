package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Добавление товара
//	@Description	Создает товар в категории вместе с изображением
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title		formData	string			true	"Название товара"
//	@Param			slug		formData	string			false	"Slug товара"
//	@Param			category	formData	string			true	"Slug категории"
//	@Param			description	formData	string			false	"Описание"
//	@Param			price		formData	number			true	"Цена"
//	@Param			image		formData	file			true	"Изображение товара"
//	@Success		201			{object}	IDResponse		"Успешное создание"
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404			{object}	ErrorResponse	"Категория не найдена"
//	@Router			/products [post]
func (h *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	input, err := parseProductForm(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.CreateProduct(r.Context(), usecase.NewCreateProductReq(*input, image))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, IDResponse{ID: product.ID})
}

// getProduct
//
//	@Summary	Товар по id
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductOut
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductOut(*product))
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Все заданные фильтры применяются одновременно
//	@Tags			products
//	@Produce		json
//	@Param			min_price	query	number	false	"Минимальная цена"
//	@Param			max_price	query	number	false	"Максимальная цена"
//	@Param			title		query	string	false	"Подстрока названия"
//	@Param			description	query	string	false	"Подстрока описания"
//	@Param			category	query	int		false	"ID категории"
//	@Success		200			{array}	ProductOut
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := h.catalogUsecase.ListProducts(r.Context(), *filter)
	if err != nil {
		h.logger.Errorf(err, "list products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductsOut(products))
}

// updateProduct
//
//	@Summary		Изменение товара
//	@Description	Перезаписывает все поля товара, частичное обновление не поддерживается
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID товара"
//	@Param			product	body		ProductIn		true	"Новые данные товара"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var in ProductIn
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, err)
		return
	}

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Slug) == "" || strings.TrimSpace(in.Category) == "" {
		WriteError(w, e.Wrap(fmt.Sprintf("title: %q, slug: %q, category: %q", in.Title, in.Slug, in.Category), e.ErrMissingFields))
		return
	}

	price, err := parsePriceToCents(in.Price.String())
	if err != nil {
		WriteError(w, err)
		return
	}

	input := usecase.NewProductInput(in.Title, in.Slug, in.Category, in.Description, price)
	if err := h.catalogUsecase.UpdateProduct(r.Context(), usecase.NewUpdateProductReq(id, input)); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, successResponse)
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	SuccessResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (h *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUsecase.DeleteProduct(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, successResponse)
}

func parseProductForm(r *http.Request) (*usecase.ProductInput, error) {
	title := r.FormValue("title")
	category := r.FormValue("category")
	priceStr := r.FormValue("price")

	if title == "" || category == "" || priceStr == "" {
		return nil, e.Wrap(fmt.Sprintf("title: %s, category: %s, price: %s", title, category, priceStr), e.ErrMissingFields)
	}

	priceCents, err := parsePriceToCents(priceStr)
	if err != nil {
		return nil, err
	}

	input := usecase.NewProductInput(title, r.FormValue("slug"), category, r.FormValue("description"), priceCents)
	return &input, nil
}

func parseProductFilter(r *http.Request) (*domain.ProductFilter, error) {
	minPrice, err := optionalPrice(r, "min_price")
	if err != nil {
		return nil, err
	}

	maxPrice, err := optionalPrice(r, "max_price")
	if err != nil {
		return nil, err
	}

	filter := &domain.ProductFilter{
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Title:       optionalString(r, "title"),
		Description: optionalString(r, "description"),
	}

	if r.URL.Query().Get("category") != "" {
		categoryID, err := queryID(r, "category")
		if err != nil {
			return nil, err
		}
		filter.CategoryID = &categoryID
	}

	return filter, nil
}
