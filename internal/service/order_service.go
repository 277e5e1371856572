package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alimikegami/storefront/internal/domain"
	paymentgateway "github.com/alimikegami/storefront/internal/infrastructure/payment-gateway"
	"github.com/alimikegami/storefront/internal/repository"
	"github.com/alimikegami/storefront/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type OrderServiceImpl struct {
	repo           repository.StorefrontRepository
	cartService    CartService
	accountService AccountService
	gateway        paymentgateway.Client
}

func CreateNewOrderService(repo repository.StorefrontRepository, cartService CartService, accountService AccountService, gateway paymentgateway.Client) OrderService {
	return &OrderServiceImpl{
		repo:           repo,
		cartService:    cartService,
		accountService: accountService,
		gateway:        gateway,
	}
}

// PlaceOrder snapshots the buyer and the cart into an immutable ledger entry,
// charges the simulated gateway when that method is chosen, and clears the
// cart through the stock-restoring path, so the catalog counts return to
// their pre-cart values once the order is recorded.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, method domain.PaymentMethod) (res domain.Order, err error) {
	account, found := s.accountService.ActiveAccount(ctx)
	if !found {
		return res, errs.ErrNotAuthenticated
	}

	cart := s.cartService.GetCart(ctx)
	if len(cart) == 0 {
		return res, errs.ErrEmptyCart
	}

	trxNumber, err := uuid.NewV7()
	if err != nil {
		return res, fmt.Errorf("error generating transaction number: %w", err)
	}

	total := s.cartService.Total(ctx)
	timestamp := time.Now().UnixMilli()

	res = domain.Order{
		ID:                timestamp,
		TransactionNumber: trxNumber.String(),
		Account:           account,
		Lines:             append([]domain.CartLine(nil), cart...),
		Total:             total.String(),
		PaymentMethod:     method,
		CreatedAt:         timestamp,
	}

	if method == domain.PaymentSimulatedGateway {
		receipt, chargeErr := s.gateway.Charge(ctx, res.TransactionNumber, res.Total)
		if chargeErr != nil {
			log.Error().Err(chargeErr).Str("component", "PlaceOrder").Msg("")
			return domain.Order{}, errs.ErrPaymentRejected
		}
		res.PaidAt = &receipt.SettledAt
	}

	if err = s.repo.SaveOrders(ctx, append(s.repo.GetOrders(ctx), res)); err != nil {
		log.Error().Err(err).Str("component", "PlaceOrder").Msg("")
		return domain.Order{}, err
	}

	if err = s.cartService.ClearCart(ctx); err != nil {
		log.Error().Err(err).Str("component", "PlaceOrder").Msg("")
		return domain.Order{}, err
	}

	return res, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context) (res []domain.Order) {
	return s.repo.GetOrders(ctx)
}
