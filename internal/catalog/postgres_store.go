package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type PostgresStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresStore(db *pgxpool.Pool, timeout time.Duration) *PostgresStore {
	return &PostgresStore{db: db, timeout: timeout}
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PostgresStore) GetBookByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, title, author, isbn, total_copies, available_copies, created_at, updated_at
		FROM books
		WHERE id = $1
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	var b Book
	err := s.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (s *PostgresStore) GetBookByISBN(ctx context.Context, isbn string) (Book, error) {
	const query = `
		SELECT id, title, author, isbn, total_copies, available_copies, created_at, updated_at
		FROM books
		WHERE isbn = $1
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	var b Book
	err := s.db.QueryRow(timeoutCtx, query, isbn).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (s *PostgresStore) GetAllBooks(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT id, title, author, isbn, total_copies, available_copies, created_at, updated_at
		FROM books
		ORDER BY title ASC
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *PostgresStore) InsertBook(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, isbn, total_copies, available_copies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	err := s.db.QueryRow(timeoutCtx, query,
		b.Title, b.Author, b.ISBN, b.TotalCopies, b.AvailableCopies,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateISBN
		}
		return err
	}
	return nil
}

func (s *PostgresStore) DecrementAvailableCopies(ctx context.Context, bookID int64) (bool, error) {
	const query = `
		UPDATE books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE id = $1 AND available_copies > 0
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	tag, err := s.db.Exec(timeoutCtx, query, bookID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) IncrementAvailableCopies(ctx context.Context, bookID int64) (bool, error) {
	const query = `
		UPDATE books
		SET available_copies = available_copies + 1, updated_at = NOW()
		WHERE id = $1 AND available_copies < total_copies
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	tag, err := s.db.Exec(timeoutCtx, query, bookID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) GetPatronBorrowedBooks(ctx context.Context, patronID string) ([]Loan, error) {
	const query = `
		SELECT br.id, b.id, b.title, b.author, br.borrow_date, br.due_date, br.due_date < NOW()
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		WHERE br.patron_id = $1 AND br.return_date IS NULL
		ORDER BY br.due_date ASC
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.db.Query(timeoutCtx, query, patronID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []Loan
	for rows.Next() {
		var l Loan
		if err := rows.Scan(
			&l.RecordID, &l.BookID, &l.Title, &l.Author, &l.BorrowDate, &l.DueDate, &l.IsOverdue,
		); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (s *PostgresStore) GetPatronBorrowCount(ctx context.Context, patronID string) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM borrow_records
		WHERE patron_id = $1 AND return_date IS NULL
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	var count int
	err := s.db.QueryRow(timeoutCtx, query, patronID).Scan(&count)
	return count, err
}

func (s *PostgresStore) GetPatronBorrowHistory(ctx context.Context, patronID string) ([]HistoryEntry, error) {
	const query = `
		SELECT b.id, b.title, b.author, br.borrow_date, br.due_date, br.return_date
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		WHERE br.patron_id = $1 AND br.return_date IS NOT NULL
		ORDER BY br.return_date DESC
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.db.Query(timeoutCtx, query, patronID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(
			&h.BookID, &h.Title, &h.Author, &h.BorrowDate, &h.DueDate, &h.ReturnDate,
		); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

func (s *PostgresStore) InsertBorrowRecord(ctx context.Context, patronID string, bookID int64, borrowDate, dueDate time.Time) error {
	const query = `
		INSERT INTO borrow_records (patron_id, book_id, borrow_date, due_date)
		VALUES ($1, $2, $3, $4)
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	_, err := s.db.Exec(timeoutCtx, query, patronID, bookID, borrowDate, dueDate)
	return err
}

func (s *PostgresStore) UpdateBorrowRecordReturnDate(ctx context.Context, recordID int64, returnDate time.Time) error {
	const query = `
		UPDATE borrow_records
		SET return_date = $2
		WHERE id = $1 AND return_date IS NULL
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	tag, err := s.db.Exec(timeoutCtx, query, recordID, returnDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
