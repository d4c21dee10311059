// File: wavecrest/services/cart/cart_test.go
package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavecrest/models"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })
	return NewRedisStore(cache, 48*time.Hour), mr
}

func TestAddAndListItems(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	added, err := store.AddItem(ctx, "sess-1", models.CartItem{
		ProductID: "prod-tee-1",
		VariantID: 4011,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ItemID)

	_, err = store.AddItem(ctx, "sess-1", models.CartItem{ProductID: "prod-hoodie-1", VariantID: 5022, Quantity: 1})
	require.NoError(t, err)

	items, err := store.Items(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Carts are per session.
	other, err := store.Items(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.AddItem(context.Background(), "sess-1", models.CartItem{ProductID: "p", VariantID: 1, Quantity: 0})
	assert.Error(t, err)
	_, err = store.AddItem(context.Background(), "sess-1", models.CartItem{ProductID: "p", VariantID: 1, Quantity: -3})
	assert.Error(t, err)
}

func TestRemoveItem(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	added, err := store.AddItem(ctx, "sess-1", models.CartItem{ProductID: "p", VariantID: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, store.RemoveItem(ctx, "sess-1", added.ItemID))
	items, err := store.Items(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Error(t, store.RemoveItem(ctx, "sess-1", added.ItemID))
	assert.Error(t, store.RemoveItem(ctx, "sess-1", "never-existed"))
}

func TestClear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "sess-1", models.CartItem{ProductID: "p", VariantID: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "sess-1"))
	items, err := store.Items(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Clearing an absent cart is a no-op.
	assert.NoError(t, store.Clear(ctx, "sess-1"))
}

func TestCartExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "sess-1", models.CartItem{ProductID: "p", VariantID: 1, Quantity: 1})
	require.NoError(t, err)

	mr.FastForward(49 * time.Hour)

	items, err := store.Items(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
