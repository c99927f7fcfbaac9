package lending

import (
	"context"
	"math"
	"time"

	"libraryapi/internal/catalog"
)

const (
	// LoanPeriodDays is the fixed loan period applied on borrow.
	LoanPeriodDays = 14

	// MaxActiveBorrows caps open loans per patron. A borrow is rejected
	// once the open-loan count reaches the cap, i.e. the comparison is
	// count >= MaxActiveBorrows. The ">" variant would let a sixth loan
	// through.
	MaxActiveBorrows = 5

	// MaxLateFee caps the fee for a single loan no matter how overdue.
	MaxLateFee = 15.00

	firstTierDays      = 7
	firstTierDailyRate = 0.50
	laterDailyRate     = 1.00
)

// Fee quote statuses.
const (
	FeeStatusOK            = "ok"
	FeeStatusNoActiveLoan  = "no_active_loan"
	FeeStatusInvalidPatron = "invalid_patron"
)

// FeeQuote is the computed late fee for one active loan at a point in
// time. It is derived, never persisted.
type FeeQuote struct {
	FeeAmount   float64 `json:"fee_amount"`
	DaysOverdue int     `json:"days_overdue"`
	Status      string  `json:"status"`
}

// LateFee quotes the late fee for the patron's active loan of the given
// book. A malformed patron id or a missing active loan yields a zero-fee
// quote with a non-"ok" status rather than an error; errors are reserved
// for store failures.
func (s *Service) LateFee(ctx context.Context, patronID string, bookID int64) (FeeQuote, error) {
	if err := ValidatePatronID(patronID); err != nil {
		return FeeQuote{Status: FeeStatusInvalidPatron}, nil
	}

	loans, err := s.store.GetPatronBorrowedBooks(ctx, patronID)
	if err != nil {
		return FeeQuote{}, err
	}

	loan, ok := findLoan(loans, bookID)
	if !ok {
		return FeeQuote{Status: FeeStatusNoActiveLoan}, nil
	}

	return quoteForLoan(loan, time.Now()), nil
}

func findLoan(loans []catalog.Loan, bookID int64) (catalog.Loan, bool) {
	for _, l := range loans {
		if l.BookID == bookID {
			return l, true
		}
	}
	return catalog.Loan{}, false
}

func quoteForLoan(loan catalog.Loan, now time.Time) FeeQuote {
	days := daysOverdue(loan.DueDate, now)
	return FeeQuote{
		FeeAmount:   lateFeeForDays(days),
		DaysOverdue: days,
		Status:      FeeStatusOK,
	}
}

// daysOverdue counts whole days past the due date, clamped at zero for
// due dates in the future.
func daysOverdue(due, now time.Time) int {
	days := int(now.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// lateFeeForDays applies the tiered schedule: $0.50/day for the first 7
// overdue days, $1.00/day after that, capped at MaxLateFee.
func lateFeeForDays(days int) float64 {
	if days <= 0 {
		return 0
	}

	var fee float64
	if days <= firstTierDays {
		fee = float64(days) * firstTierDailyRate
	} else {
		fee = float64(firstTierDays)*firstTierDailyRate + float64(days-firstTierDays)*laterDailyRate
	}
	if fee > MaxLateFee {
		fee = MaxLateFee
	}
	return round2(fee)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
