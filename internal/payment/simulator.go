package payment

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Simulator is a deterministic in-process gateway: every well-formed charge
// succeeds and transaction ids follow the txn_<patronID>_<sequence> shape.
type Simulator struct {
	seq atomic.Int64
}

func NewSimulator() *Simulator {
	return &Simulator{}
}

func (g *Simulator) ProcessPayment(_ context.Context, patronID string, amount float64, _ string) (Result, error) {
	if patronID == "" {
		return Result{Success: false, Message: "Invalid patron ID"}, nil
	}
	if amount <= 0 {
		return Result{Success: false, Message: "Invalid payment amount"}, nil
	}

	txnID := fmt.Sprintf("txn_%s_%d", patronID, g.seq.Add(1))
	return Result{
		Success:       true,
		TransactionID: txnID,
		Message:       fmt.Sprintf("Payment of $%.2f processed successfully", amount),
	}, nil
}

func (g *Simulator) RefundPayment(_ context.Context, transactionID string, amount float64) (RefundResult, error) {
	if transactionID == "" {
		return RefundResult{Success: false, Message: "Invalid transaction ID"}, nil
	}
	if amount <= 0 {
		return RefundResult{Success: false, Message: "Invalid refund amount"}, nil
	}

	return RefundResult{
		Success: true,
		Message: fmt.Sprintf("Refund of $%.2f processed successfully", amount),
	}, nil
}
