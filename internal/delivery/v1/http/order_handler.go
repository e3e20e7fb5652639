package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// listOrderItems
//
//	@Summary	Все позиции всех заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderItemWithOrderOut
//	@Router		/orders [get]
func (h *OrderHandler) listOrderItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.orderUsecase.ListOrderItems(r.Context())
	if err != nil {
		h.logger.Errorf(err, "list order items")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderItemViewsOut(items))
}

// listUserOrders
//
//	@Summary	Заказы пользователя вместе с позициями
//	@Tags		orders
//	@Produce	json
//	@Param		user_id	path	int	true	"ID пользователя"
//	@Success	200		{array}	OrderOut
//	@Failure	404		{object}	ErrorResponse
//	@Router		/order/{user_id} [get]
func (h *OrderHandler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	orders, err := h.orderUsecase.ListUserOrders(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrdersOut(orders))
}

// listItemsOfOrder
//
//	@Summary	Позиции заказа
//	@Tags		orders
//	@Produce	json
//	@Param		order_id	path	int	true	"ID заказа"
//	@Success	200			{array}	OrderItemOut
//	@Failure	404			{object}	ErrorResponse
//	@Router		/order/items/{order_id} [get]
func (h *OrderHandler) listItemsOfOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.orderUsecase.ListItemsOfOrder(r.Context(), orderID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderItemsOut(items))
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Заказ собирается из записей списка желаний одного пользователя
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			wishlist_ids	body		[]int			true	"ID записей списка желаний"
//	@Success		201				{object}	OrderOut
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/create_order [post]
func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := decodeJSON(r, &ids); err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.CreateOrder(r.Context(), ids)
	if err != nil {
		h.logger.Warnf("create order: %v", err)
		WriteError(w, err)
		return
	}

	h.logger.Infof("order %d created for user %d, total %d", order.ID, order.UserID, order.Total)
	WriteSuccess(w, http.StatusCreated, toOrderOut(*order))
}

// changeStatus
//
//	@Summary		Смена статуса заказа
//	@Description	Разрешён переход в любой существующий статус
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	query		int	true	"ID заказа"
//	@Param			status_id	query		int	true	"ID статуса"
//	@Success		200			{object}	OrderOut
//	@Failure		404			{object}	ErrorResponse
//	@Router			/change_status [put]
func (h *OrderHandler) changeStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := queryID(r, "order_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	statusID, err := queryID(r, "status_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.ChangeStatus(r.Context(), usecase.NewChangeStatusReq(orderID, statusID))
	if err != nil {
		h.logger.Warnf("change status: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderOut(*order))
}

// listStatuses
//
//	@Summary	Статусы заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	StatusOut
//	@Router		/statuses [get]
func (h *OrderHandler) listStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.orderUsecase.ListStatuses(r.Context())
	if err != nil {
		h.logger.Errorf(err, "list statuses")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toStatusesOut(statuses))
}

// createStatus
//
//	@Summary		Новый статус заказа
//	@Description	Нужно право shop.add_status
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			status	body		StatusIn	true	"Статус"
//	@Success		201		{object}	StatusOut
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/statuses [post]
func (h *OrderHandler) createStatus(w http.ResponseWriter, r *http.Request) {
	var in StatusIn
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, err)
		return
	}

	status, err := h.orderUsecase.CreateStatus(r.Context(), PrincipalFromContext(r.Context()), in.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toStatusOut(*status))
}
