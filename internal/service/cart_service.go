package service

import (
	"context"
	"time"

	"github.com/alimikegami/storefront/internal/domain"
	"github.com/alimikegami/storefront/internal/repository"
	"github.com/alimikegami/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type CartServiceImpl struct {
	repo repository.StorefrontRepository
}

func CreateNewCartService(repo repository.StorefrontRepository) CartService {
	return &CartServiceImpl{repo: repo}
}

func (s *CartServiceImpl) GetCart(ctx context.Context) (res []domain.CartLine) {
	return s.repo.GetCart(ctx)
}

// AddToCart reserves one unit: the snapshot is taken before the decrement, so
// the line carries the product exactly as the shopper saw it. A missing
// product and a zero-stock product are the same error to the shopper.
func (s *CartServiceImpl) AddToCart(ctx context.Context, productID int64) (err error) {
	var line domain.CartLine

	err = s.repo.HandleCatalogUpdate(ctx, func(products []domain.Product) ([]domain.Product, error) {
		for i := range products {
			if products[i].ID != productID {
				continue
			}

			if products[i].Stock == 0 {
				return nil, errs.ErrOutOfStock
			}

			line = products[i].Snapshot(time.Now().UnixMilli())
			products[i].Stock--

			return products, nil
		}

		return nil, errs.ErrOutOfStock
	})
	if err != nil {
		return
	}

	return s.repo.SaveCart(ctx, append(s.repo.GetCart(ctx), line))
}

// RemoveFromCart drops the line at index and puts its unit back in stock. An
// out-of-range index is ignored. A line whose product id no longer resolves
// restores nothing but is still removed.
func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, index int) (err error) {
	cart := s.repo.GetCart(ctx)
	if index < 0 || index >= len(cart) {
		log.Warn().Int("index", index).Str("component", "RemoveFromCart").Msg("ignoring out-of-range cart index")
		return nil
	}

	if err = s.restoreStock(ctx, cart[index:index+1]); err != nil {
		return
	}

	return s.repo.SaveCart(ctx, append(cart[:index:index], cart[index+1:]...))
}

// ClearCart empties the cart and puts every line's unit back into stock,
// cumulatively for duplicate product ids. Both the shopper abandoning the
// cart and order placement clear through this path.
func (s *CartServiceImpl) ClearCart(ctx context.Context) (err error) {
	if err = s.restoreStock(ctx, s.repo.GetCart(ctx)); err != nil {
		return
	}

	return s.repo.SaveCart(ctx, []domain.CartLine{})
}

// Total sums line prices read as whole units: the fractional part is cut off
// and a price the owner mangled counts as zero.
func (s *CartServiceImpl) Total(ctx context.Context) decimal.Decimal {
	total := decimal.Zero

	for _, line := range s.repo.GetCart(ctx) {
		price, err := decimal.NewFromString(line.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Truncate(0))
	}

	return total
}

func (s *CartServiceImpl) restoreStock(ctx context.Context, lines []domain.CartLine) (err error) {
	if len(lines) == 0 {
		return nil
	}

	return s.repo.HandleCatalogUpdate(ctx, func(products []domain.Product) ([]domain.Product, error) {
		for _, line := range lines {
			for i := range products {
				if products[i].ID == line.ProductID {
					products[i].Stock++
					break
				}
			}
		}

		return products, nil
	})
}
