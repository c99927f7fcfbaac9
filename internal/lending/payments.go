package lending

import (
	"context"
	"fmt"
	"strings"
)

// transactionIDPrefix is the marker every gateway transaction id carries.
const transactionIDPrefix = "txn_"

// PaymentOutcome reports a charge attempt. A declined payment is a domain
// outcome, not an error, so these operations never return one: gateway
// faults are caught at this boundary and folded into the message.
type PaymentOutcome struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// RefundOutcome reports a refund attempt.
type RefundOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PayLateFees charges the patron's outstanding late fee for one book
// through the payment gateway. The gateway is never called for a malformed
// patron id or a zero fee.
func (s *Service) PayLateFees(ctx context.Context, patronID string, bookID int64) PaymentOutcome {
	if err := ValidatePatronID(patronID); err != nil {
		return PaymentOutcome{Message: "Invalid patron ID"}
	}

	quote, err := s.LateFee(ctx, patronID, bookID)
	if err != nil {
		return PaymentOutcome{Message: "Payment processing error: " + err.Error()}
	}
	if quote.FeeAmount <= 0 {
		return PaymentOutcome{Message: "No late fees to pay"}
	}

	book, err := s.store.GetBookByID(ctx, bookID)
	if err != nil {
		return PaymentOutcome{Message: "Payment processing error: " + err.Error()}
	}

	description := fmt.Sprintf("Late fees for '%s'", book.Title)
	result, err := s.gateway.ProcessPayment(ctx, patronID, quote.FeeAmount, description)
	if err != nil {
		return PaymentOutcome{Message: "Payment processing error: " + err.Error()}
	}
	if !result.Success {
		return PaymentOutcome{Message: "Payment failed: " + result.Message}
	}

	return PaymentOutcome{
		Success:       true,
		Message:       "Payment successful: " + result.Message,
		TransactionID: result.TransactionID,
	}
}

// RefundPayment refunds a prior late-fee payment. The transaction id must
// carry the gateway's prefix and the amount must be positive and within
// the fee cap before the gateway is consulted.
func (s *Service) RefundPayment(ctx context.Context, transactionID string, amount float64) RefundOutcome {
	if !strings.HasPrefix(transactionID, transactionIDPrefix) {
		return RefundOutcome{Message: "Invalid transaction ID."}
	}
	if amount <= 0 {
		return RefundOutcome{Message: "Refund amount must be greater than 0."}
	}
	if amount > MaxLateFee {
		return RefundOutcome{Message: "Refund amount exceeds maximum late fee."}
	}

	result, err := s.gateway.RefundPayment(ctx, transactionID, amount)
	if err != nil {
		return RefundOutcome{Message: "Refund processing error: " + err.Error()}
	}
	return RefundOutcome{Success: result.Success, Message: result.Message}
}
