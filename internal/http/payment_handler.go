package http

import (
	"encoding/json"
	"net/http"

	"libraryapi/internal/lending"
)

type PaymentHandler struct {
	svc *lending.Service
}

func NewPaymentHandler(svc *lending.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type PayFeesRequest struct {
	PatronID string `json:"patron_id" validate:"required"`
	BookID   int64  `json:"book_id" validate:"required,gt=0"`
}

type RefundRequest struct {
	TransactionID string  `json:"transaction_id" validate:"required"`
	Amount        float64 `json:"amount"`
}

// Pay charges the outstanding late fee for one loan. Outcomes, including
// declines, come back with the engine's message; only the HTTP status
// distinguishes them.
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req PayFeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		JSONError(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	outcome := h.svc.PayLateFees(r.Context(), req.PatronID, req.BookID)
	if !outcome.Success {
		JSONError(w, http.StatusPaymentRequired, outcome.Message, nil)
		return
	}
	JSONSuccess(w, outcome.Message, map[string]string{"transaction_id": outcome.TransactionID})
}

func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		JSONError(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	outcome := h.svc.RefundPayment(r.Context(), req.TransactionID, req.Amount)
	if !outcome.Success {
		JSONError(w, http.StatusBadRequest, outcome.Message, nil)
		return
	}
	JSONSuccess(w, outcome.Message, nil)
}
