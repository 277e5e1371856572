package repository

import (
	"context"
	"sync"

	"github.com/alimikegami/storefront/internal/domain"
	"github.com/alimikegami/storefront/internal/infrastructure/storage"
	"github.com/rs/zerolog/log"
)

// Record keys. All durable except the cart, which lives in the session scope
// so an abandoned cart does not survive a restart.
const (
	KeyProducts      = "products"
	KeyAccounts      = "accounts"
	KeyActiveAccount = "active_account"
	KeyRemember      = "remember"
	KeyOrders        = "orders"
	KeyCart          = "cart"
)

type StorefrontRepositoryImpl struct {
	store     storage.Store
	catalogMu sync.Mutex
}

func CreateNewRepository(store storage.Store) StorefrontRepository {
	return &StorefrontRepositoryImpl{store: store}
}

func (r *StorefrontRepositoryImpl) GetProducts(ctx context.Context) (res []domain.Product) {
	r.store.ReadDurable(KeyProducts, &res)
	return
}

func (r *StorefrontRepositoryImpl) SaveProducts(ctx context.Context, data []domain.Product) (err error) {
	return r.store.WriteDurable(KeyProducts, data)
}

// HandleCatalogUpdate runs fn over the current catalog and persists what it
// returns. The catalog lock is held across the read and the write: the
// image-encode worker resolves off the interaction loop, and its
// read-modify-write must not interleave with an edit or a cart mutation.
// Returning a nil slice skips the write.
func (r *StorefrontRepositoryImpl) HandleCatalogUpdate(ctx context.Context, fn func(products []domain.Product) ([]domain.Product, error)) (err error) {
	r.catalogMu.Lock()
	defer r.catalogMu.Unlock()

	updated, err := fn(r.GetProducts(ctx))
	if err != nil || updated == nil {
		return err
	}

	if err = r.store.WriteDurable(KeyProducts, updated); err != nil {
		log.Error().Err(err).Str("component", "HandleCatalogUpdate").Msg("")
	}

	return
}

// HasProducts distinguishes "never seeded" from "seeded but empty": seeding
// must run only when no catalog record exists at all.
func (r *StorefrontRepositoryImpl) HasProducts(ctx context.Context) bool {
	var res []domain.Product
	return r.store.ReadDurable(KeyProducts, &res)
}

func (r *StorefrontRepositoryImpl) GetAccounts(ctx context.Context) (res []domain.Account) {
	r.store.ReadDurable(KeyAccounts, &res)
	return
}

func (r *StorefrontRepositoryImpl) SaveAccounts(ctx context.Context, data []domain.Account) (err error) {
	return r.store.WriteDurable(KeyAccounts, data)
}

// GetActiveAccount checks the durable scope first: the remember flag decides
// which scope holds the record, and the two never hold it at the same time.
func (r *StorefrontRepositoryImpl) GetActiveAccount(ctx context.Context) (res domain.Account, found bool) {
	if r.GetRememberFlag(ctx) && r.store.ReadDurable(KeyActiveAccount, &res) {
		return res, true
	}

	if r.store.ReadSession(KeyActiveAccount, &res) {
		return res, true
	}

	return domain.Account{}, false
}

func (r *StorefrontRepositoryImpl) SaveActiveAccount(ctx context.Context, data domain.Account, remember bool) (err error) {
	if remember {
		if err = r.store.WriteDurable(KeyActiveAccount, data); err != nil {
			return
		}
		if err = r.store.WriteDurable(KeyRemember, true); err != nil {
			return
		}
		r.store.DeleteSession(KeyActiveAccount)
		return
	}

	if err = r.store.WriteSession(KeyActiveAccount, data); err != nil {
		return
	}
	if err = r.store.DeleteDurable(KeyActiveAccount); err != nil {
		return
	}
	return r.store.DeleteDurable(KeyRemember)
}

func (r *StorefrontRepositoryImpl) GetRememberFlag(ctx context.Context) bool {
	var remember bool
	r.store.ReadDurable(KeyRemember, &remember)
	return remember
}

func (r *StorefrontRepositoryImpl) GetOrders(ctx context.Context) (res []domain.Order) {
	r.store.ReadDurable(KeyOrders, &res)
	return
}

func (r *StorefrontRepositoryImpl) SaveOrders(ctx context.Context, data []domain.Order) (err error) {
	return r.store.WriteDurable(KeyOrders, data)
}

func (r *StorefrontRepositoryImpl) GetCart(ctx context.Context) (res []domain.CartLine) {
	r.store.ReadSession(KeyCart, &res)
	return
}

func (r *StorefrontRepositoryImpl) SaveCart(ctx context.Context, data []domain.CartLine) (err error) {
	return r.store.WriteSession(KeyCart, data)
}
