package payment

import "context"

//go:generate mockgen -source=gateway.go -destination=mocks/gateway_mock.go -package=mocks

// Result is the gateway's answer to a charge attempt. Success false with a
// nil error means the charge was declined, not that the call failed.
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message"`
}

// RefundResult is the gateway's answer to a refund attempt.
type RefundResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Gateway is the payment capability consumed by the lending engine.
// Production and simulated implementations sit behind the same contract.
type Gateway interface {
	ProcessPayment(ctx context.Context, patronID string, amount float64, description string) (Result, error)
	RefundPayment(ctx context.Context, transactionID string, amount float64) (RefundResult, error)
}
