package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCategoryHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// createCategory
//
//	@Summary		Создание категории
//	@Description	Пустой slug строится из названия
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		CategoryIn		true	"Категория"
//	@Success		201			{object}	IDResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/categories [post]
func (h *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in CategoryIn
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.catalogUsecase.CreateCategory(r.Context(), usecase.NewCreateCategoryReq(in.Title, in.Slug))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, IDResponse{ID: category.ID})
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryOut
//	@Router		/categories [get]
func (h *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		h.logger.Errorf(err, "list categories")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoriesOut(categories))
}

// getCategory
//
//	@Summary	Категория по slug
//	@Tags		categories
//	@Produce	json
//	@Param		slug	path		string	true	"Slug категории"
//	@Success	200		{object}	CategoryOut
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{slug} [get]
func (h *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.catalogUsecase.GetCategory(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryOut(*category))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Вместе с категорией удаляются её товары и позиции заказов с ними
//	@Tags			categories
//	@Produce		json
//	@Param			slug	path		string	true	"Slug категории"
//	@Success		200		{object}	SuccessResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/categories/{slug} [delete]
func (h *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUsecase.DeleteCategory(r.Context(), chi.URLParam(r, "slug")); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, successResponse)
}
