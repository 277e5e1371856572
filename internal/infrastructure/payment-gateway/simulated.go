package paymentgateway

import (
	"context"
	"time"

	"github.com/alimikegami/storefront/internal/domain"
	"github.com/alimikegami/storefront/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

// Client charges a checkout total. The only implementation is simulated: no
// request leaves the process, charges settle immediately.
type Client interface {
	Charge(ctx context.Context, transactionNumber string, amount string) (domain.PaymentReceipt, error)
}

type SimulatedClient struct {
	breaker *gobreaker.CircuitBreaker[domain.PaymentReceipt]
}

func CreateSimulatedClient() *SimulatedClient {
	var st gobreaker.Settings
	st.Name = "simulated-payment-gateway"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return &SimulatedClient{
		breaker: gobreaker.NewCircuitBreaker[domain.PaymentReceipt](st),
	}
}

// Charge settles any non-negative decimal amount. Amounts that do not parse
// are rejected, which also counts as a failure toward the breaker.
func (c *SimulatedClient) Charge(ctx context.Context, transactionNumber string, amount string) (domain.PaymentReceipt, error) {
	return c.breaker.Execute(func() (domain.PaymentReceipt, error) {
		amt, err := decimal.NewFromString(amount)
		if err != nil || amt.IsNegative() {
			return domain.PaymentReceipt{}, errs.ErrPaymentRejected
		}

		return domain.PaymentReceipt{
			TransactionNumber: transactionNumber,
			Status:            "settlement",
			Amount:            amt.String(),
			SettledAt:         time.Now().UnixMilli(),
		}, nil
	})
}
