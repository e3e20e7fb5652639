package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type WishlistHandler struct {
	wishlistUsecase usecase.WishlistUC
	logger          logger.Logger
}

func NewWishlistHandler(wishlistUsecase usecase.WishlistUC, logger logger.Logger) *WishlistHandler {
	return &WishlistHandler{wishlistUsecase: wishlistUsecase, logger: logger}
}

// listWishlist
//
//	@Summary	Список желаний пользователя
//	@Tags		wishlist
//	@Produce	json
//	@Param		user_id	path	int	true	"ID пользователя"
//	@Success	200		{array}	WishlistOut
//	@Failure	404		{object}	ErrorResponse
//	@Router		/wishlist/{user_id} [get]
func (h *WishlistHandler) listWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	entries, err := h.wishlistUsecase.List(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWishlistsOut(entries))
}

// upsertWishlist
//
//	@Summary		Добавление товара в список желаний
//	@Description	Если запись уже есть, её количество перезаписывается
//	@Tags			wishlist
//	@Accept			json
//	@Produce		json
//	@Param			entry	body		WishlistIn	true	"Запись"
//	@Success		200		{object}	WishlistOut
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/wishlist [post]
func (h *WishlistHandler) upsertWishlist(w http.ResponseWriter, r *http.Request) {
	var in WishlistIn
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, err)
		return
	}

	quantity := domain.DefaultWishlistQuantity
	if in.Quantity != nil {
		quantity = *in.Quantity
	}

	entry, err := h.wishlistUsecase.Upsert(r.Context(), usecase.NewUpsertWishlistReq(in.User, in.Product, quantity))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWishlistOut(*entry))
}

// incrementWishlist
//
//	@Summary	Увеличение количества на единицу
//	@Tags		wishlist
//	@Produce	json
//	@Param		wishlist_id	query		int	true	"ID записи"
//	@Success	200			{object}	WishlistOut
//	@Failure	404			{object}	ErrorResponse
//	@Router		/wishlist/add [put]
func (h *WishlistHandler) incrementWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "wishlist_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	entry, err := h.wishlistUsecase.Increment(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWishlistOut(*entry))
}

// decrementWishlist
//
//	@Summary		Уменьшение количества на единицу
//	@Description	При нуле запись удаляется и возвращается с quantity = 0
//	@Tags			wishlist
//	@Produce		json
//	@Param			wishlist_id	query		int	true	"ID записи"
//	@Success		200			{object}	WishlistOut
//	@Failure		404			{object}	ErrorResponse
//	@Router			/wishlist/remove [put]
func (h *WishlistHandler) decrementWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "wishlist_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	entry, err := h.wishlistUsecase.Decrement(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWishlistOut(*entry))
}
