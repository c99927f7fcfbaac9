package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"libraryapi/internal/catalog"
	"libraryapi/internal/lending"
)

type CatalogHandler struct {
	svc *lending.Service
}

func NewCatalogHandler(svc *lending.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type AddBookRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=100"`
	ISBN        string `json:"isbn" validate:"required,isbn13"`
	TotalCopies int    `json:"total_copies" validate:"required,gt=0"`
}

func (h *CatalogHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		JSONError(w, http.StatusBadRequest, "validation failed", details)
		return
	}

	msg, err := h.svc.AddBook(r.Context(), req.Title, req.Author, req.ISBN, req.TotalCopies)
	if err != nil {
		JSONError(w, statusForEngineError(err), err.Error(), nil)
		return
	}
	JSONSuccessCreated(w, msg, nil)
}

type catalogEntry struct {
	catalog.Book
	Availability string `json:"availability"`
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "server error", nil)
		return
	}

	entries := make([]catalogEntry, 0, len(books))
	for _, b := range books {
		entries = append(entries, catalogEntry{Book: b, Availability: b.Availability()})
	}
	JSONSuccess(w, "", entries)
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	field := r.URL.Query().Get("field")
	if field == "" {
		field = lending.SearchByTitle
	}

	books, err := h.svc.SearchBooks(r.Context(), query, field)
	if err != nil {
		JSONError(w, statusForEngineError(err), err.Error(), nil)
		return
	}
	JSONSuccess(w, "", books)
}

// statusForEngineError maps engine failure messages onto HTTP statuses.
// The engine is the source of truth for the message text; the transport
// only picks the code.
func statusForEngineError(err error) int {
	switch {
	case errors.Is(err, lending.ErrInvalidPatronID),
		errors.Is(err, lending.ErrInvalidISBN),
		errors.Is(err, lending.ErrInvalidSearchField):
		return http.StatusBadRequest
	case strings.Contains(err.Error(), "already exists"):
		return http.StatusConflict
	case strings.Contains(err.Error(), "not found"):
		return http.StatusNotFound
	case strings.Contains(err.Error(), "database error"):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
