package catalog

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is returned when inserting a book whose ISBN is already
// in the catalog.
var ErrDuplicateISBN = errors.New("isbn already exists")

// Book represents a catalog entry. AvailableCopies never exceeds
// TotalCopies and never goes negative; the store enforces both.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Availability renders the "2/5 Available" summary shown in catalog listings.
func (b Book) Availability() string {
	return fmt.Sprintf("%d/%d Available", b.AvailableCopies, b.TotalCopies)
}

// BorrowRecord is one loan. A nil ReturnDate means the book is still
// checked out; at most one open record exists per (patron, book) pair.
type BorrowRecord struct {
	ID         int64      `json:"id"`
	PatronID   string     `json:"patron_id"`
	BookID     int64      `json:"book_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// Loan is an open borrow record joined with its book, as returned by
// GetPatronBorrowedBooks.
type Loan struct {
	RecordID   int64     `json:"record_id"`
	BookID     int64     `json:"book_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	IsOverdue  bool      `json:"is_overdue"`
}

// HistoryEntry is a closed borrow record joined with its book.
type HistoryEntry struct {
	BookID     int64     `json:"book_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	ReturnDate time.Time `json:"return_date"`
}
