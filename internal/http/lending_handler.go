package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"libraryapi/internal/lending"
)

type LendingHandler struct {
	svc *lending.Service
}

func NewLendingHandler(svc *lending.Service) *LendingHandler {
	return &LendingHandler{svc: svc}
}

type LoanRequest struct {
	PatronID string `json:"patron_id" validate:"required,patron_id"`
	BookID   int64  `json:"book_id" validate:"required,gt=0"`
}

func (h *LendingHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		JSONError(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	msg, err := h.svc.Borrow(r.Context(), req.PatronID, req.BookID)
	if err != nil {
		JSONError(w, statusForEngineError(err), err.Error(), nil)
		return
	}
	JSONSuccess(w, msg, nil)
}

func (h *LendingHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		JSONError(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	msg, err := h.svc.Return(r.Context(), req.PatronID, req.BookID)
	if err != nil {
		JSONError(w, statusForEngineError(err), err.Error(), nil)
		return
	}
	JSONSuccess(w, msg, nil)
}

// LateFee serves GET /api/late_fee/{patron_id}/{book_id}. The quote is
// returned bare, not in the envelope, so the fields match the engine's
// FeeQuote exactly.
func (h *LendingHandler) LateFee(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/late_fee/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.NotFound(w, r)
		return
	}
	patronID := parts[0]
	bookID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "invalid book id", nil)
		return
	}

	quote, err := h.svc.LateFee(r.Context(), patronID, bookID)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "server error", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(quote)
}

// PatronStatus serves GET /patrons/{patron_id}/status.
func (h *LendingHandler) PatronStatus(w http.ResponseWriter, r *http.Request) {
	const prefix = "/patrons/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	patronID, ok := strings.CutSuffix(rest, "/status")
	if !ok || patronID == "" || strings.Contains(patronID, "/") {
		http.NotFound(w, r)
		return
	}

	report, err := h.svc.PatronStatus(r.Context(), patronID)
	if err != nil {
		JSONError(w, statusForEngineError(err), err.Error(), nil)
		return
	}
	JSONSuccess(w, "", report)
}
