package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

// OrderUseCase собирает заказы из записей списков желаний и управляет их статусами.
type OrderUseCase struct {
	orderRepo    OrderRepository
	wishlistRepo WishlistRepository
	statusRepo   StatusRepository
	userRepo     UserRepository
	outboxRepo   OutboxRepository
	encoder      OrderEventEncoder
	txManager    TxManager
	metrics      OrderMetrics
	logger       logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	wishlistRepo WishlistRepository,
	statusRepo StatusRepository,
	userRepo UserRepository,
	outboxRepo OutboxRepository,
	encoder OrderEventEncoder,
	txManager TxManager,
	metrics OrderMetrics,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		wishlistRepo: wishlistRepo,
		statusRepo:   statusRepo,
		userRepo:     userRepo,
		outboxRepo:   outboxRepo,
		encoder:      encoder,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateOrder оформляет заказ из записей списка желаний в порядке их идентификаторов.
// Владелец заказа — пользователь первой записи; записи других пользователей отклоняются.
// Заказ, его позиции, итог и событие order.created пишутся в одной транзакции.
// Сами записи списка желаний остаются на месте.
func (o *OrderUseCase) CreateOrder(ctx context.Context, wishlistIDs []int64) (*domain.Order, error) {
	const op = "OrderUseCase.CreateOrder"

	if len(wishlistIDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoWishlists)
	}

	var order *domain.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		entries, err := o.resolveWishlists(ctx, wishlistIDs)
		if err != nil {
			return err
		}

		status, err := o.statusRepo.GetByID(ctx, domain.DefaultStatusID)
		if err != nil {
			return err
		}

		order, err = o.orderRepo.Create(ctx, domain.NewOrder(entries[0].UserID, *status))
		if err != nil {
			return err
		}

		for _, entry := range entries {
			item, err := domain.NewOrderItem(order.ID, entry.Product, entry.Quantity)
			if err != nil {
				return err
			}
			if _, err := o.orderRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}

		// Итог считается по сохранённым позициям, а не накапливается по ходу
		items, err := o.orderRepo.ListItems(ctx, order.ID)
		if err != nil {
			return err
		}

		if _, err := order.ComputeTotal(items); err != nil {
			return err
		}
		if err := o.orderRepo.UpdateTotal(ctx, order.ID, order.Total); err != nil {
			return err
		}
		order.Items = items

		return o.writeEvent(ctx, OrderCreated, order)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	o.metrics.ObserveOrderCreated(order.Total)
	o.logger.Infof("order %d created for user %d: %d items, total %d", order.ID, order.UserID, len(order.Items), order.Total)

	return order, nil
}

// ChangeStatus назначает заказу любой существующий статус.
func (o *OrderUseCase) ChangeStatus(ctx context.Context, req *ChangeStatusReq) (*domain.Order, error) {
	const op = "OrderUseCase.ChangeStatus"

	var order *domain.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = o.orderRepo.GetByID(ctx, req.OrderID)
		if err != nil {
			return err
		}

		status, err := o.statusRepo.GetByID(ctx, req.StatusID)
		if err != nil {
			return err
		}

		if err := o.orderRepo.UpdateStatus(ctx, order.ID, status.ID); err != nil {
			return err
		}
		order.Status = *status

		return o.writeEvent(ctx, OrderStatusChanged, order)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	o.metrics.ObserveStatusChanged(order.Status.Name)

	return order, nil
}

func (o *OrderUseCase) ListOrderItems(ctx context.Context) ([]domain.OrderItemView, error) {
	const op = "OrderUseCase.ListOrderItems"

	items, err := o.orderRepo.ListAllItems(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return items, nil
}

// ListUserOrders возвращает заказы пользователя вместе с позициями.
func (o *OrderUseCase) ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	const op = "OrderUseCase.ListUserOrders"

	if _, err := o.userRepo.GetByID(ctx, userID); err != nil {
		return nil, e.Wrap(op, err)
	}

	orders, err := o.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range orders {
		items, err := o.orderRepo.ListItems(ctx, orders[i].ID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (o *OrderUseCase) ListItemsOfOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const op = "OrderUseCase.ListItemsOfOrder"

	if _, err := o.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := o.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return items, nil
}

func (o *OrderUseCase) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	const op = "OrderUseCase.ListStatuses"

	statuses, err := o.statusRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return statuses, nil
}

// CreateStatus доступен только пользователям с правом shop.add_status.
func (o *OrderUseCase) CreateStatus(ctx context.Context, principal *domain.Principal, name string) (*domain.Status, error) {
	const op = "OrderUseCase.CreateStatus"

	if !principal.IsAuthenticated() {
		return nil, e.Wrap(op, e.ErrNotLoggedIn)
	}

	if !principal.HasPermission(domain.PermAddStatus) {
		return nil, e.Wrap(op, e.ErrInsufficientRights)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrStatusNameRequired)
	}

	status, err := o.statusRepo.Create(ctx, domain.NewStatus(name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return status, nil
}

// resolveWishlists загружает все записи и проверяет, что они принадлежат одному пользователю.
func (o *OrderUseCase) resolveWishlists(ctx context.Context, ids []int64) ([]*domain.Wishlist, error) {
	entries := make([]*domain.Wishlist, 0, len(ids))
	for _, id := range ids {
		entry, err := o.wishlistRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if len(entries) > 0 && entry.UserID != entries[0].UserID {
			return nil, e.ErrOrderMixedOwners
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// writeEvent сохраняет событие заказа в outbox в текущей транзакции.
func (o *OrderUseCase) writeEvent(ctx context.Context, eventType OutboxEventType, order *domain.Order) error {
	now := time.Now().UTC()
	event := NewOrderEvent(uuid.NewString(), eventType, order, now)

	payload, err := o.encoder.EncodeOrderEvent(event)
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(event.EventID, eventType, order.ID, payload, now))

	return err
}
