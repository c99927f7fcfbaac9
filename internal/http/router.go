package http

import "net/http"

// NewRouter mounts all handlers on a ServeMux. Health endpoints stay in
// cmd/api where the DB pool lives.
func NewRouter(catalogH *CatalogHandler, lendingH *LendingHandler, paymentH *PaymentHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/books", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			catalogH.List(w, r)
		case http.MethodPost:
			catalogH.AddBook(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/search", requireMethod(http.MethodGet, catalogH.Search))
	mux.HandleFunc("/loans", requireMethod(http.MethodPost, lendingH.Borrow))
	mux.HandleFunc("/returns", requireMethod(http.MethodPost, lendingH.Return))
	mux.HandleFunc("/api/late_fee/", requireMethod(http.MethodGet, lendingH.LateFee))
	mux.HandleFunc("/patrons/", requireMethod(http.MethodGet, lendingH.PatronStatus))
	mux.HandleFunc("/payments", requireMethod(http.MethodPost, paymentH.Pay))
	mux.HandleFunc("/refunds", requireMethod(http.MethodPost, paymentH.Refund))

	return mux
}

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
