package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
)

type orderFixture struct {
	cart     *CartService
	orders   *OrderService
	products *fakeProductRepo
	carts    *fakeCartRepo
	repo     *fakeOrderRepo
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	products := newFakeProductRepo()
	carts := &fakeCartRepo{}
	repo := &fakeOrderRepo{carts: carts}
	logger := zap.NewNop()
	return &orderFixture{
		cart:     NewCartService(products, carts, logger),
		orders:   NewOrderService(repo, logger),
		products: products,
		carts:    carts,
		repo:     repo,
	}
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	keyboard := seedProduct(t, f.products, "keyboard", 1000)
	mouse := seedProduct(t, f.products, "mouse", 500)

	_, err := f.cart.AddOrUpdateLine(ctx, "alice", keyboard, 2)
	require.NoError(t, err)
	_, err = f.cart.AddOrUpdateLine(ctx, "alice", mouse, 3)
	require.NoError(t, err)

	order, err := f.orders.PlaceOrder(ctx, "alice", "card", "Tashkent, Chilonzor 9")
	require.NoError(t, err)

	assert.Equal(t, int64(2*1000+3*500), order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentMethodCard, order.PaymentMethod)
	assert.Equal(t, "alice", order.UserID)

	// Cart is cleared by the same transaction that created the order.
	_, err = f.cart.ListLines(ctx, "alice")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.PlaceOrder(context.Background(), "alice", "cash", "somewhere")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.repo.orders)
}

func TestPlaceOrderRejectsUnknownPaymentMethod(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, f.products, "keyboard", 1000)
	_, err := f.cart.AddOrUpdateLine(ctx, "alice", productID, 1)
	require.NoError(t, err)

	for _, method := range []string{"bitcoin", "", "credit"} {
		_, err := f.orders.PlaceOrder(ctx, "alice", method, "somewhere")
		assert.ErrorIs(t, err, ErrValidation, "method %q", method)
	}

	// Failed attempts must not consume the cart.
	lines, err := f.cart.ListLines(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestPlaceOrderRequiresLocation(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, f.products, "keyboard", 1000)
	_, err := f.cart.AddOrUpdateLine(ctx, "alice", productID, 1)
	require.NoError(t, err)

	_, err = f.orders.PlaceOrder(ctx, "alice", "cash", "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceOrderAcceptsCash(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, f.products, "keyboard", 1000)
	_, err := f.cart.AddOrUpdateLine(ctx, "alice", productID, 1)
	require.NoError(t, err)

	order, err := f.orders.PlaceOrder(ctx, "alice", "CASH", "home")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodCash, order.PaymentMethod)
}

// The worked example from the cart/order lifecycle: qty 2 then qty 3 for
// the same product replaces the line, and the order totals the snapshot.
func TestCartToOrderLifecycle(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, f.products, "keyboard", 1000)

	line, err := f.cart.AddOrUpdateLine(ctx, "alice", productID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), line.Price)

	line, err = f.cart.AddOrUpdateLine(ctx, "alice", productID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), line.Price)

	order, err := f.orders.PlaceOrder(ctx, "alice", "card", "home")
	require.NoError(t, err)
	assert.Equal(t, int64(3000), order.TotalPrice)

	_, err = f.cart.ListLines(ctx, "alice")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderKeepsCartWhenPlacementFails(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, f.products, "keyboard", 1000)
	_, err := f.cart.AddOrUpdateLine(ctx, "alice", productID, 1)
	require.NoError(t, err)

	f.repo.failPlace = true
	_, err = f.orders.PlaceOrder(ctx, "alice", "card", "home")
	require.Error(t, err)

	lines, err := f.carts.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

// The total must come from the rows the placement deletes, not from a
// read taken before the transaction. An update landing on a line right
// before placement is counted, never silently discarded.
func TestPlaceOrderTotalsRowsItDeletes(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, f.products, "keyboard", 1000)

	line, err := f.cart.AddOrUpdateLine(ctx, "alice", productID, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2000), line.Price)

	// A second request bumps the same line between the two calls.
	bumped := *line
	bumped.Quantity = 5
	bumped.Price = 5000
	require.NoError(t, f.carts.Upsert(ctx, &bumped))

	order, err := f.orders.PlaceOrder(ctx, "alice", "card", "home")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), order.TotalPrice)

	_, err = f.cart.ListLines(ctx, "alice")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestListOrders(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, f.products, "keyboard", 1000)

	for i := 0; i < 2; i++ {
		_, err := f.cart.AddOrUpdateLine(ctx, "alice", productID, 1)
		require.NoError(t, err)
		_, err = f.orders.PlaceOrder(ctx, "alice", "cash", "home")
		require.NoError(t, err)
	}

	orders, err := f.orders.ListOrders(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	others, err := f.orders.ListOrders(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func placeOrderFor(t *testing.T, f *orderFixture, userID string) *models.Order {
	t.Helper()
	ctx := context.Background()
	productID := seedProduct(t, f.products, "thing", 100)
	_, err := f.cart.AddOrUpdateLine(ctx, userID, productID, 1)
	require.NoError(t, err)
	order, err := f.orders.PlaceOrder(ctx, userID, "cash", "home")
	require.NoError(t, err)
	return order
}

func TestAdvanceStatusForwardOnly(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := placeOrderFor(t, f, "alice")

	updated, err := f.orders.AdvanceStatus(ctx, "alice", order.ID, "delivering")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivering, updated.Status)

	updated, err = f.orders.AdvanceStatus(ctx, "alice", order.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)

	// No going back, no re-applying the same status.
	_, err = f.orders.AdvanceStatus(ctx, "alice", order.ID, "pending")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.orders.AdvanceStatus(ctx, "alice", order.ID, "delivered")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdvanceStatusRejectsUnknownStatus(t *testing.T) {
	f := newOrderFixture(t)
	order := placeOrderFor(t, f, "alice")

	_, err := f.orders.AdvanceStatus(context.Background(), "alice", order.ID, "cancelled")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdvanceStatusHidesOtherUsersOrders(t *testing.T) {
	f := newOrderFixture(t)
	order := placeOrderFor(t, f, "alice")

	_, err := f.orders.AdvanceStatus(context.Background(), "bob", order.ID, "delivering")
	assert.ErrorIs(t, err, ErrNotFound)

	stored, getErr := f.repo.GetByID(context.Background(), order.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}
