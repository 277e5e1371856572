package domain

//go:generate go tool stringer -type=PaymentMethod -output=paymentmethod_string.go

type PaymentMethod int

const (
	PaymentCashOnDelivery PaymentMethod = iota
	PaymentSimulatedGateway
)

// Order is an immutable ledger entry: buyer and cart are snapshots taken at
// placement time, independent of later catalog or account changes.
type Order struct {
	ID                int64         `json:"id"`
	TransactionNumber string        `json:"transaction_number"`
	Account           Account       `json:"account"`
	Lines             []CartLine    `json:"lines"`
	Total             string        `json:"total"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	PaidAt            *int64        `json:"paid_at"`
	CreatedAt         int64         `json:"created_at"`
}

// PaymentReceipt is what the simulated gateway returns for a charge.
type PaymentReceipt struct {
	TransactionNumber string `json:"transaction_number"`
	Status            string `json:"status"`
	Amount            string `json:"amount"`
	SettledAt         int64  `json:"settled_at"`
}
