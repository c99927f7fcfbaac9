package lending

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"libraryapi/internal/catalog"
	"libraryapi/internal/payment"
)

const (
	maxTitleLength  = 200
	maxAuthorLength = 100
)

// Service is the lending rules engine. It validates identifiers, enforces
// borrow limits and availability, computes late fees, and orchestrates
// payments, all through injected store and gateway capabilities.
//
// Mutating operations return a human-readable confirmation message on
// success; failures carry their message in the returned error.
type Service struct {
	store   catalog.Store
	gateway payment.Gateway
}

func NewService(store catalog.Store, gateway payment.Gateway) *Service {
	return &Service{store: store, gateway: gateway}
}

// AddBook validates and inserts a new catalog entry with all copies
// available. Validation order: title, author, ISBN, copies, then ISBN
// uniqueness; nothing is written until every check passes.
func (s *Service) AddBook(ctx context.Context, title, author, isbn string, totalCopies int) (string, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return "", errors.New("title is required")
	}
	if len(title) > maxTitleLength {
		return "", fmt.Errorf("title must be at most %d characters", maxTitleLength)
	}
	if author == "" {
		return "", errors.New("author is required")
	}
	if len(author) > maxAuthorLength {
		return "", fmt.Errorf("author must be at most %d characters", maxAuthorLength)
	}
	if err := ValidateISBN(isbn); err != nil {
		return "", err
	}
	if totalCopies <= 0 {
		return "", errors.New("total copies must be a positive integer")
	}

	_, err := s.store.GetBookByISBN(ctx, isbn)
	if err == nil {
		return "", fmt.Errorf("a book with ISBN %s already exists in the catalog", isbn)
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		return "", fmt.Errorf("database error checking ISBN: %w", err)
	}

	book := catalog.Book{
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		TotalCopies:     totalCopies,
		AvailableCopies: totalCopies,
	}
	if err := s.store.InsertBook(ctx, &book); err != nil {
		if errors.Is(err, catalog.ErrDuplicateISBN) {
			return "", fmt.Errorf("a book with ISBN %s already exists in the catalog", isbn)
		}
		return "", fmt.Errorf("database error adding book: %w", err)
	}

	return fmt.Sprintf("Book '%s' successfully added to the catalog", title), nil
}

// Borrow checks the patron id, the book's availability, and the patron's
// open-loan count, then creates the borrow record before decrementing
// availability so a failed insert never loses a copy.
func (s *Service) Borrow(ctx context.Context, patronID string, bookID int64) (string, error) {
	if err := ValidatePatronID(patronID); err != nil {
		return "", err
	}

	book, err := s.store.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return "", errors.New("book not found")
		}
		return "", fmt.Errorf("database error looking up book: %w", err)
	}

	if book.AvailableCopies <= 0 {
		return "", fmt.Errorf("'%s' is currently not available", book.Title)
	}

	count, err := s.store.GetPatronBorrowCount(ctx, patronID)
	if err != nil {
		return "", fmt.Errorf("database error checking borrow count: %w", err)
	}
	if count >= MaxActiveBorrows {
		return "", fmt.Errorf("patron has reached the maximum borrowing limit of %d books", MaxActiveBorrows)
	}

	now := time.Now()
	dueDate := now.AddDate(0, 0, LoanPeriodDays)
	if err := s.store.InsertBorrowRecord(ctx, patronID, bookID, now, dueDate); err != nil {
		return "", fmt.Errorf("database error creating borrow record: %w", err)
	}

	decremented, err := s.store.DecrementAvailableCopies(ctx, bookID)
	if err != nil {
		return "", fmt.Errorf("database error updating book availability: %w", err)
	}
	if !decremented {
		// A concurrent borrow took the last copy between the check and
		// the decrement.
		return "", fmt.Errorf("'%s' is currently not available", book.Title)
	}

	return fmt.Sprintf("Successfully borrowed '%s'. Due date: %s", book.Title, dueDate.Format("2006-01-02")), nil
}

// Return closes the patron's open loan of the book, restores availability,
// and reports any late fee in the confirmation message. The return-date
// update and the availability increment are separate writes with no
// rollback; a failure in between is reported but not compensated.
func (s *Service) Return(ctx context.Context, patronID string, bookID int64) (string, error) {
	if err := ValidatePatronID(patronID); err != nil {
		return "", err
	}

	book, err := s.store.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return "", errors.New("book not found")
		}
		return "", fmt.Errorf("database error looking up book: %w", err)
	}

	loans, err := s.store.GetPatronBorrowedBooks(ctx, patronID)
	if err != nil {
		return "", fmt.Errorf("database error looking up borrowed books: %w", err)
	}
	loan, ok := findLoan(loans, bookID)
	if !ok {
		return "", fmt.Errorf("'%s' is not borrowed by this patron", book.Title)
	}

	now := time.Now()
	quote := quoteForLoan(loan, now)

	if err := s.store.UpdateBorrowRecordReturnDate(ctx, loan.RecordID, now); err != nil {
		return "", fmt.Errorf("database error updating return date: %w", err)
	}

	incremented, err := s.store.IncrementAvailableCopies(ctx, bookID)
	if err != nil {
		return "", fmt.Errorf("database error updating book availability: %w", err)
	}
	if !incremented {
		return "", errors.New("database error updating book availability: all copies already accounted for")
	}

	if quote.FeeAmount > 0 {
		return fmt.Sprintf("Returned '%s'. Late fee: $%.2f (%d days overdue)",
			book.Title, quote.FeeAmount, quote.DaysOverdue), nil
	}
	return fmt.Sprintf("Returned '%s'.", book.Title), nil
}

// ListBooks returns the full catalog ordered by title.
func (s *Service) ListBooks(ctx context.Context) ([]catalog.Book, error) {
	return s.store.GetAllBooks(ctx)
}
