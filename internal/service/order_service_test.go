package service

import (
	"context"
	"testing"

	"github.com/alimikegami/storefront/internal/domain"
	paymentgateway "github.com/alimikegami/storefront/internal/infrastructure/payment-gateway"
	"github.com/alimikegami/storefront/internal/repository"
	"github.com/alimikegami/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (repository.StorefrontRepository, CartService, AccountService, OrderService) {
	t.Helper()

	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.SaveProducts(ctx, []domain.Product{
		{ID: 1, Name: "Product 1", Price: "1500", Stock: 4},
		{ID: 2, Name: "Product 2", Price: "700", Stock: 2},
	}))

	cartService := CreateNewCartService(repo)
	accountService := CreateNewAccountService(repo)
	orderService := CreateNewOrderService(repo, cartService, accountService, paymentgateway.CreateSimulatedClient())

	return repo, cartService, accountService, orderService
}

func TestPlaceOrderCashOnDelivery(t *testing.T) {
	ctx := context.Background()
	repo, cartService, accountService, orderService := newOrderFixture(t)

	account, err := accountService.SignUp(ctx, signUpFixture())
	require.NoError(t, err)

	require.NoError(t, cartService.AddToCart(ctx, 1))
	require.NoError(t, cartService.AddToCart(ctx, 2))

	order, err := orderService.PlaceOrder(ctx, domain.PaymentCashOnDelivery)
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, "2200", order.Total)
	assert.Equal(t, account.Email, order.Account.Email)
	assert.Len(t, order.Lines, 2)
	assert.Nil(t, order.PaidAt, "cash on delivery is unpaid at placement")
	assert.NotEmpty(t, order.TransactionNumber)

	ledger := orderService.GetOrders(ctx)
	require.Len(t, ledger, 1)
	assert.Equal(t, order.ID, ledger[0].ID)

	// placement clears the cart through the restoring path: the reserved
	// units go back on the shelf once the order is recorded
	assert.Empty(t, cartService.GetCart(ctx))
	assert.Equal(t, int64(4), stockOf(t, repo, 1))
	assert.Equal(t, int64(2), stockOf(t, repo, 2))
}

func TestPlaceOrderRestoresStock(t *testing.T) {
	ctx := context.Background()
	repo, cartService, accountService, orderService := newOrderFixture(t)

	_, err := accountService.SignUp(ctx, signUpFixture())
	require.NoError(t, err)

	require.NoError(t, cartService.AddToCart(ctx, 1))
	require.Equal(t, int64(3), stockOf(t, repo, 1))

	_, err = orderService.PlaceOrder(ctx, domain.PaymentCashOnDelivery)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stockOf(t, repo, 1))
	assert.Empty(t, cartService.GetCart(ctx))
}

func TestPlaceOrderSimulatedGateway(t *testing.T) {
	ctx := context.Background()
	_, cartService, accountService, orderService := newOrderFixture(t)

	_, err := accountService.SignUp(ctx, signUpFixture())
	require.NoError(t, err)
	require.NoError(t, cartService.AddToCart(ctx, 1))

	order, err := orderService.PlaceOrder(ctx, domain.PaymentSimulatedGateway)
	require.NoError(t, err)

	require.NotNil(t, order.PaidAt, "a settled gateway charge stamps the order")
	assert.Equal(t, "1500", order.Total)
}

func TestPlaceOrderGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("Anonymous shopper", func(t *testing.T) {
		_, cartService, _, orderService := newOrderFixture(t)
		require.NoError(t, cartService.AddToCart(ctx, 1))

		_, err := orderService.PlaceOrder(ctx, domain.PaymentCashOnDelivery)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("Empty cart", func(t *testing.T) {
		_, _, accountService, orderService := newOrderFixture(t)
		_, err := accountService.SignUp(ctx, signUpFixture())
		require.NoError(t, err)

		_, err = orderService.PlaceOrder(ctx, domain.PaymentCashOnDelivery)
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})
}

// the ledger snapshot must not follow later catalog edits
func TestOrderSnapshotIsImmutable(t *testing.T) {
	ctx := context.Background()
	repo, cartService, accountService, orderService := newOrderFixture(t)

	_, err := accountService.SignUp(ctx, signUpFixture())
	require.NoError(t, err)
	require.NoError(t, cartService.AddToCart(ctx, 1))

	order, err := orderService.PlaceOrder(ctx, domain.PaymentCashOnDelivery)
	require.NoError(t, err)

	products := repo.GetProducts(ctx)
	products[0].Name = "Renamed"
	require.NoError(t, repo.SaveProducts(ctx, products))

	ledger := orderService.GetOrders(ctx)
	require.Len(t, ledger, 1)
	assert.Equal(t, order.Lines[0].Name, ledger[0].Lines[0].Name)
	assert.Equal(t, "Product 1", ledger[0].Lines[0].Name)
}
