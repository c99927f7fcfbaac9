package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"libraryapi/internal/catalog"
)

// TestBook is a catalog fixture shared by handler tests.
var TestBook = catalog.Book{
	ID:              1,
	Title:           "Test Book Title",
	Author:          "Test Author",
	ISBN:            "1234567890123",
	TotalCopies:     5,
	AvailableCopies: 3,
	CreatedAt:       time.Now(),
	UpdatedAt:       time.Now(),
}

// OpenLoan builds an open-loan fixture with the given overdue age.
func OpenLoan(bookID int64, title string, daysOverdue int) catalog.Loan {
	now := time.Now()
	return catalog.Loan{
		RecordID:   bookID,
		BookID:     bookID,
		Title:      title,
		Author:     "Test Author",
		BorrowDate: now.AddDate(0, 0, -(14 + daysOverdue)),
		DueDate:    now.AddDate(0, 0, -daysOverdue),
		IsOverdue:  daysOverdue > 0,
	}
}

// NewRequest creates a JSON test request.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordedResponse is a decoded HTTP response for assertions.
type RecordedResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse drains a recorder into a RecordedResponse.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordedResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordedResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
