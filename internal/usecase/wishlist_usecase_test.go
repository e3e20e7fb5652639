package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistUC(db *memDB) *WishlistUseCase {
	return NewWishlistUC(&fakeWishlistRepo{db: db}, &fakeUserRepo{db: db}, &fakeProductRepo{db: db}, passThroughTx{}, nopLogger())
}

func TestWishlist_UpsertOverwritesQuantity(t *testing.T) {
	db := newMemDB()
	uc := newWishlistUC(db)
	ctx := context.Background()

	user := db.addUser("alice")
	category := db.addCategory("Tools", "tools")
	product := db.addProduct("Hammer", 2000, category.ID)

	first, err := uc.Upsert(ctx, NewUpsertWishlistReq(user.ID, product.ID, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Quantity)

	second, err := uc.Upsert(ctx, NewUpsertWishlistReq(user.ID, product.ID, 5))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(5), second.Quantity)

	entries, err := uc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(5), entries[0].Quantity)
}

func TestWishlist_UpsertErrors(t *testing.T) {
	db := newMemDB()
	uc := newWishlistUC(db)
	ctx := context.Background()

	user := db.addUser("alice")
	category := db.addCategory("Tools", "tools")
	product := db.addProduct("Hammer", 2000, category.ID)

	_, err := uc.Upsert(ctx, NewUpsertWishlistReq(9999, product.ID, 1))
	require.ErrorIs(t, err, e.ErrUserNotFound)

	_, err = uc.Upsert(ctx, NewUpsertWishlistReq(user.ID, 9999, 1))
	require.ErrorIs(t, err, e.ErrProductNotFound)

	_, err = uc.Upsert(ctx, NewUpsertWishlistReq(user.ID, product.ID, 0))
	require.ErrorIs(t, err, e.ErrValidation)

	_, err = uc.Upsert(ctx, NewUpsertWishlistReq(user.ID, product.ID, domain.MaxWishlistQuantity+1))
	require.ErrorIs(t, err, e.ErrQuantityTooLarge)
	require.ErrorIs(t, err, e.ErrValidation)

	assert.Empty(t, db.wishlists)
}

func TestWishlist_IncrementStopsAtLimit(t *testing.T) {
	db := newMemDB()
	uc := newWishlistUC(db)
	ctx := context.Background()

	user := db.addUser("alice")
	category := db.addCategory("Tools", "tools")
	entry := db.addWishlist(user.ID, db.addProduct("Hammer", 2000, category.ID), domain.MaxWishlistQuantity)

	_, err := uc.Increment(ctx, entry.ID)
	require.ErrorIs(t, err, e.ErrQuantityTooLarge)
	assert.Equal(t, domain.MaxWishlistQuantity, db.wishlists[entry.ID].Quantity)
}

func TestWishlist_ListUnknownUser(t *testing.T) {
	uc := newWishlistUC(newMemDB())

	_, err := uc.List(context.Background(), 42)
	require.ErrorIs(t, err, e.ErrNotFound)
}

func TestWishlist_IncrementDecrementRoundTrip(t *testing.T) {
	for k := 0; k <= 5; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			db := newMemDB()
			uc := newWishlistUC(db)
			ctx := context.Background()

			user := db.addUser("alice")
			category := db.addCategory("Tools", "tools")
			entry := db.addWishlist(user.ID, db.addProduct("Hammer", 2000, category.ID), 1)

			for range k {
				_, err := uc.Increment(ctx, entry.ID)
				require.NoError(t, err)
			}
			assert.Equal(t, int64(1+k), db.wishlists[entry.ID].Quantity)

			for range k {
				_, err := uc.Decrement(ctx, entry.ID)
				require.NoError(t, err)
			}
			require.Contains(t, db.wishlists, entry.ID)
			assert.Equal(t, int64(1), db.wishlists[entry.ID].Quantity)
		})
	}
}

func TestWishlist_DecrementRemovesEmptyEntry(t *testing.T) {
	db := newMemDB()
	uc := newWishlistUC(db)
	ctx := context.Background()

	user := db.addUser("alice")
	category := db.addCategory("Tools", "tools")
	entry := db.addWishlist(user.ID, db.addProduct("Hammer", 2000, category.ID), 1)

	got, err := uc.Decrement(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Quantity)
	assert.NotContains(t, db.wishlists, entry.ID)

	_, err = uc.Decrement(ctx, entry.ID)
	require.ErrorIs(t, err, e.ErrWishlistNotFound)

	_, err = uc.Increment(ctx, entry.ID)
	require.ErrorIs(t, err, e.ErrNotFound)
}
