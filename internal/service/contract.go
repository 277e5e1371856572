package service

import (
	"context"
	"io"

	"github.com/alimikegami/storefront/internal/domain"
	"github.com/alimikegami/storefront/internal/dto"
	"github.com/shopspring/decimal"
)

type CatalogService interface {
	SeedCatalog(ctx context.Context) (err error)
	GetProducts(ctx context.Context) (res []domain.Product)
	GetProduct(ctx context.Context, id int64) (res domain.Product, err error)
	EditProductField(ctx context.Context, id int64, field string, value string) (err error)
	AddProduct(ctx context.Context) (res domain.Product, err error)
	SetProductImage(ctx context.Context, id int64, img io.Reader) <-chan error
}

type CartService interface {
	GetCart(ctx context.Context) (res []domain.CartLine)
	AddToCart(ctx context.Context, productID int64) (err error)
	RemoveFromCart(ctx context.Context, index int) (err error)
	ClearCart(ctx context.Context) (err error)
	Total(ctx context.Context) decimal.Decimal
}

type AccountService interface {
	SignUp(ctx context.Context, payload dto.SignUpRequest) (res domain.Account, err error)
	LogIn(ctx context.Context, payload dto.LogInRequest) (res domain.Account, err error)
	ActiveAccount(ctx context.Context) (res domain.Account, found bool)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, method domain.PaymentMethod) (res domain.Order, err error)
	GetOrders(ctx context.Context) (res []domain.Order)
}
