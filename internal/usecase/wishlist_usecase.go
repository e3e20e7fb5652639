package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// WishlistUseCase ведёт списки желаний: пара (пользователь, товар) с количеством.
type WishlistUseCase struct {
	wishlistRepo WishlistRepository
	userRepo     UserRepository
	productRepo  ProductRepository
	txManager    TxManager
	logger       logger.Logger
}

func NewWishlistUC(
	wishlistRepo WishlistRepository,
	userRepo UserRepository,
	productRepo ProductRepository,
	txManager TxManager,
	logger logger.Logger,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (w *WishlistUseCase) List(ctx context.Context, userID int64) ([]domain.Wishlist, error) {
	const op = "WishlistUseCase.List"

	if _, err := w.userRepo.GetByID(ctx, userID); err != nil {
		return nil, e.Wrap(op, err)
	}

	entries, err := w.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return entries, nil
}

// Upsert создаёт запись или перезаписывает (не увеличивает) количество у существующей.
func (w *WishlistUseCase) Upsert(ctx context.Context, req *UpsertWishlistReq) (*domain.Wishlist, error) {
	const op = "WishlistUseCase.Upsert"

	if err := domain.ValidateWishlistQuantity(req.Quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err := w.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := w.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	entry, err := w.wishlistRepo.Upsert(ctx, domain.NewWishlist(req.UserID, *product, req.Quantity))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return entry, nil
}

func (w *WishlistUseCase) Increment(ctx context.Context, id int64) (*domain.Wishlist, error) {
	const op = "WishlistUseCase.Increment"

	var entry *domain.Wishlist
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		entry, err = w.wishlistRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := entry.Increment(); err != nil {
			return err
		}

		return w.wishlistRepo.UpdateQuantity(ctx, entry.ID, entry.Quantity)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return entry, nil
}

// Decrement уменьшает количество на единицу. Опустевшая запись удаляется
// и возвращается с нулевым количеством.
func (w *WishlistUseCase) Decrement(ctx context.Context, id int64) (*domain.Wishlist, error) {
	const op = "WishlistUseCase.Decrement"

	var entry *domain.Wishlist
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		entry, err = w.wishlistRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if entry.Decrement() {
			return w.wishlistRepo.Delete(ctx, entry.ID)
		}

		return w.wishlistRepo.UpdateQuantity(ctx, entry.ID, entry.Quantity)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if entry.Quantity == 0 {
		w.logger.Debugf("wishlist entry %d removed: quantity reached zero", entry.ID)
	}

	return entry, nil
}
