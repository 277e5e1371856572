package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/alimikegami/storefront/config"
	"github.com/alimikegami/storefront/internal/domain"
	"github.com/alimikegami/storefront/internal/repository"
	"github.com/alimikegami/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

// Seed defaults, matching the placeholder catalog the demo ships with.
const (
	seedDescription  = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."
	seedPriceMin     = 500
	seedPriceSpan    = 5000 // prices land in [500, 5499]
	seedStockMax     = 10
	placeholderName  = "New Product"
	placeholderImage = "https://picsum.photos/seed/%d/200"
)

type CatalogServiceImpl struct {
	repo   repository.StorefrontRepository
	config config.Config
}

func CreateNewCatalogService(repo repository.StorefrontRepository, config config.Config) CatalogService {
	return &CatalogServiceImpl{repo: repo, config: config}
}

// SeedCatalog generates the placeholder catalog on first run. An existing
// catalog record, even an empty one, leaves the store untouched.
func (s *CatalogServiceImpl) SeedCatalog(ctx context.Context) (err error) {
	if s.repo.HasProducts(ctx) {
		return nil
	}

	products := make([]domain.Product, 0, s.config.CatalogSeedSize)
	for i := 1; i <= s.config.CatalogSeedSize; i++ {
		products = append(products, domain.Product{
			ID:          int64(i),
			Name:        fmt.Sprintf("Product %d", i),
			Description: seedDescription,
			Price:       strconv.Itoa(seedPriceMin + rand.Intn(seedPriceSpan)),
			Stock:       int64(1 + rand.Intn(seedStockMax)),
			Image:       fmt.Sprintf(placeholderImage, i),
		})
	}

	if err = s.repo.SaveProducts(ctx, products); err != nil {
		log.Error().Err(err).Str("component", "SeedCatalog").Msg("")
		return
	}

	log.Info().Int("count", len(products)).Msg("seeded placeholder catalog")

	return nil
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context) (res []domain.Product) {
	return s.repo.GetProducts(ctx)
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id int64) (res domain.Product, err error) {
	for _, p := range s.repo.GetProducts(ctx) {
		if p.ID == id {
			return p, nil
		}
	}

	return res, errs.ErrProductNotFound
}

// EditProductField replaces a single field on the matching product. The owner
// is trusted: values are taken as given, and an unknown id or field name is a
// silent no-op.
func (s *CatalogServiceImpl) EditProductField(ctx context.Context, id int64, field string, value string) (err error) {
	return s.repo.HandleCatalogUpdate(ctx, func(products []domain.Product) ([]domain.Product, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}

			switch field {
			case "name":
				products[i].Name = value
			case "description":
				products[i].Description = value
			case "price":
				products[i].Price = value
			case "stock":
				stock, convErr := strconv.ParseInt(value, 10, 64)
				if convErr != nil || stock < 0 {
					stock = 0
				}
				products[i].Stock = stock
			case "image":
				products[i].Image = value
			default:
				log.Warn().Str("component", "EditProductField").Str("field", field).Msg("ignoring unknown field")
				return nil, nil
			}

			return products, nil
		}

		return nil, nil
	})
}

// AddProduct prepends an empty product for the owner to fill in. The id is
// derived from the catalog length, as the demo always has: once products
// accumulate past the seeded range this can collide with an existing id.
func (s *CatalogServiceImpl) AddProduct(ctx context.Context) (res domain.Product, err error) {
	err = s.repo.HandleCatalogUpdate(ctx, func(products []domain.Product) ([]domain.Product, error) {
		res = domain.Product{
			ID:          int64(len(products) + 1),
			Name:        placeholderName,
			Description: seedDescription,
			Price:       "0",
			Stock:       0,
			Image:       fmt.Sprintf(placeholderImage, len(products)+1),
		}

		return append([]domain.Product{res}, products...), nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	return
}

// SetProductImage encodes the image off the interaction loop and applies the
// resulting data URI to the product afterwards. The id is re-resolved against
// the catalog at resolution time, so an image whose product disappeared while
// encoding is dropped silently. The returned channel delivers exactly one
// value.
func (s *CatalogServiceImpl) SetProductImage(ctx context.Context, id int64, img io.Reader) <-chan error {
	result := make(chan error, 1)

	go func() {
		defer close(result)

		raw, err := io.ReadAll(img)
		if err != nil {
			log.Error().Err(err).Str("component", "SetProductImage").Msg("")
			result <- fmt.Errorf("failed to read image: %w", err)
			return
		}

		encoded := "data:image;base64," + base64.StdEncoding.EncodeToString(raw)

		result <- s.repo.HandleCatalogUpdate(ctx, func(products []domain.Product) ([]domain.Product, error) {
			for i := range products {
				if products[i].ID == id {
					products[i].Image = encoded
					return products, nil
				}
			}

			return nil, nil
		})
	}()

	return result
}
