package lending

import (
	"context"
	"time"

	"libraryapi/internal/catalog"
)

// StatusReport summarizes a patron's current loans, outstanding late fees,
// and borrowing history. Derived on demand, never persisted.
type StatusReport struct {
	PatronID           string                 `json:"patron_id"`
	CurrentBorrows     []catalog.Loan         `json:"current_borrows"`
	TotalLateFees      float64                `json:"total_late_fees"`
	CurrentBorrowCount int                    `json:"current_borrow_count"`
	History            []catalog.HistoryEntry `json:"history"`
}

// PatronStatus builds the status report for a patron. A malformed patron
// id surfaces as ErrInvalidPatronID rather than a status field on the
// report. The borrow count comes from the store's own counter and must
// agree with len(CurrentBorrows).
func (s *Service) PatronStatus(ctx context.Context, patronID string) (StatusReport, error) {
	if err := ValidatePatronID(patronID); err != nil {
		return StatusReport{}, err
	}

	loans, err := s.store.GetPatronBorrowedBooks(ctx, patronID)
	if err != nil {
		return StatusReport{}, err
	}

	count, err := s.store.GetPatronBorrowCount(ctx, patronID)
	if err != nil {
		return StatusReport{}, err
	}

	history, err := s.store.GetPatronBorrowHistory(ctx, patronID)
	if err != nil {
		return StatusReport{}, err
	}

	now := time.Now()
	var totalFees float64
	for _, loan := range loans {
		totalFees += quoteForLoan(loan, now).FeeAmount
	}

	if loans == nil {
		loans = []catalog.Loan{}
	}
	if history == nil {
		history = []catalog.HistoryEntry{}
	}

	return StatusReport{
		PatronID:           patronID,
		CurrentBorrows:     loans,
		TotalLateFees:      round2(totalFees),
		CurrentBorrowCount: count,
		History:            history,
	}, nil
}
