package paymentgateway

import (
	"context"
	"testing"

	"github.com/alimikegami/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeSettles(t *testing.T) {
	client := CreateSimulatedClient()

	receipt, err := client.Charge(context.Background(), "trx-1", "2200")
	require.NoError(t, err)

	assert.Equal(t, "settlement", receipt.Status)
	assert.Equal(t, "trx-1", receipt.TransactionNumber)
	assert.Equal(t, "2200", receipt.Amount)
	assert.NotZero(t, receipt.SettledAt)
}

func TestChargeRejectsBadAmounts(t *testing.T) {
	client := CreateSimulatedClient()

	type TestCase struct {
		Name   string
		Amount string
	}

	testCases := []TestCase{
		{Name: "Non-numeric", Amount: "a lot"},
		{Name: "Negative", Amount: "-5"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := client.Charge(context.Background(), "trx-2", tc.Amount)
			assert.ErrorIs(t, err, errs.ErrPaymentRejected)
		})
	}
}
