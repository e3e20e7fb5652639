package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *clients.RedisClient) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := clients.NewRedisClient(&cfg.RedisCfg{Addr: mr.Addr(), Timeout: time.Second, DialTimeout: time.Second})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestSessionRepo(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "abc", 42, time.Hour))

	userID, err := repo.GetUserID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.True(t, mr.Exists("session:abc"))

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err = repo.GetUserID(ctx, "abc")
	require.ErrorIs(t, err, e.ErrUnauthenticated)
}

func TestSessionRepo_Expiry(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "short", 1, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.GetUserID(ctx, "short")
	require.ErrorIs(t, err, e.ErrNotLoggedIn)
}

func TestCacheRepo(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewCacheRepo(client, converter.ProductConverterImpl{}, &cfg.RedisCfg{ProductTTL: time.Minute}, logger.Nop())
	ctx := context.Background()

	key := "hammer/hammer-1.jpg"
	products := []domain.Product{
		{ID: 1, CategoryID: 3, Title: "Hammer", Slug: "hammer", Price: 2000, ImageKey: &key},
		{ID: 2, CategoryID: 3, Title: "Rake", Slug: "rake", Price: 1500},
	}
	require.NoError(t, repo.SetProducts(ctx, products))

	got, err := repo.GetProducts(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, products[0], got[1])
	assert.Equal(t, products[1], got[2])

	require.NoError(t, repo.DeleteProducts(ctx, []int64{1}))
	got, err = repo.GetProducts(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.NotContains(t, got, int64(1))
	assert.Contains(t, got, int64(2))

	mr.FastForward(2 * time.Minute)
	got, err = repo.GetProducts(ctx, []int64{2})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCacheRepo_DropsMismatchedEntry(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewCacheRepo(client, converter.ProductConverterImpl{}, &cfg.RedisCfg{ProductTTL: time.Minute}, logger.Nop())

	require.NoError(t, mr.Set("product:5", `{"id":6,"title":"Wrong"}`))

	got, err := repo.GetProducts(context.Background(), []int64{5})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, mr.Exists("product:5"))
}
