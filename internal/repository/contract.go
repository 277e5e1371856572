package repository

import (
	"context"

	"github.com/alimikegami/storefront/internal/domain"
)

// StorefrontRepository is the typed record layer over the store adapter. Reads
// never fail: absent or corrupt records come back as the empty value for the
// record, per the adapter contract.
type StorefrontRepository interface {
	GetProducts(ctx context.Context) (res []domain.Product)
	SaveProducts(ctx context.Context, data []domain.Product) (err error)
	HandleCatalogUpdate(ctx context.Context, fn func(products []domain.Product) ([]domain.Product, error)) (err error)
	HasProducts(ctx context.Context) bool
	GetAccounts(ctx context.Context) (res []domain.Account)
	SaveAccounts(ctx context.Context, data []domain.Account) (err error)
	GetActiveAccount(ctx context.Context) (res domain.Account, found bool)
	SaveActiveAccount(ctx context.Context, data domain.Account, remember bool) (err error)
	GetRememberFlag(ctx context.Context) bool
	GetOrders(ctx context.Context) (res []domain.Order)
	SaveOrders(ctx context.Context, data []domain.Order) (err error)
	GetCart(ctx context.Context) (res []domain.CartLine)
	SaveCart(ctx context.Context, data []domain.CartLine) (err error)
}
