package catalog

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mocks/store_mock.go -package=mocks

// Store defines the contract for catalog persistence. The lending engine
// consumes it as an injected capability so tests can substitute a mock.
type Store interface {
	GetBookByID(ctx context.Context, id int64) (Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (Book, error)
	GetAllBooks(ctx context.Context) ([]Book, error)
	InsertBook(ctx context.Context, b *Book) error

	// DecrementAvailableCopies only succeeds while available_copies > 0;
	// IncrementAvailableCopies only while available_copies < total_copies.
	// Both report whether a row was actually changed, so check-then-write
	// races cannot push availability out of range.
	DecrementAvailableCopies(ctx context.Context, bookID int64) (bool, error)
	IncrementAvailableCopies(ctx context.Context, bookID int64) (bool, error)

	GetPatronBorrowedBooks(ctx context.Context, patronID string) ([]Loan, error)
	GetPatronBorrowCount(ctx context.Context, patronID string) (int, error)
	GetPatronBorrowHistory(ctx context.Context, patronID string) ([]HistoryEntry, error)
	InsertBorrowRecord(ctx context.Context, patronID string, bookID int64, borrowDate, dueDate time.Time) error
	UpdateBorrowRecordReturnDate(ctx context.Context, recordID int64, returnDate time.Time) error
}
