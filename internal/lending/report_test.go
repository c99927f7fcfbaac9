package lending

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/catalog"
	"libraryapi/internal/catalog/mocks"
)

func TestServicePatronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	svc := NewService(mockStore, nil)
	ctx := context.Background()

	t.Run("two current borrows, one overdue", func(t *testing.T) {
		overdue := activeLoan(1, 8)
		overdue.Title = "Clean Code"
		onTime := activeLoan(2, 0)
		onTime.Title = "Dune"
		onTime.DueDate = time.Now().AddDate(0, 0, 10)

		mockStore.EXPECT().
			GetPatronBorrowedBooks(ctx, "123456").
			Return([]catalog.Loan{overdue, onTime}, nil)
		mockStore.EXPECT().
			GetPatronBorrowCount(ctx, "123456").
			Return(2, nil)
		mockStore.EXPECT().
			GetPatronBorrowHistory(ctx, "123456").
			Return(nil, nil)

		report, err := svc.PatronStatus(ctx, "123456")

		require.NoError(t, err)
		require.Len(t, report.CurrentBorrows, 2)
		assert.Equal(t, 2, report.CurrentBorrowCount)
		assert.Len(t, report.CurrentBorrows, report.CurrentBorrowCount)
		assert.Equal(t, 4.50, report.TotalLateFees)

		titles := map[string]bool{}
		for _, loan := range report.CurrentBorrows {
			titles[loan.Title] = true
		}
		assert.True(t, titles["Clean Code"])
		assert.True(t, titles["Dune"])
		assert.NotNil(t, report.History)
	})

	t.Run("overdue flags preserved per loan", func(t *testing.T) {
		mockStore.EXPECT().
			GetPatronBorrowedBooks(ctx, "123456").
			Return([]catalog.Loan{activeLoan(1, 1), activeLoan(2, 0)}, nil)
		mockStore.EXPECT().
			GetPatronBorrowCount(ctx, "123456").
			Return(2, nil)
		mockStore.EXPECT().
			GetPatronBorrowHistory(ctx, "123456").
			Return(nil, nil)

		report, err := svc.PatronStatus(ctx, "123456")

		require.NoError(t, err)
		require.Len(t, report.CurrentBorrows, 2)
		assert.True(t, report.CurrentBorrows[0].IsOverdue)
		assert.False(t, report.CurrentBorrows[1].IsOverdue)
	})

	t.Run("no current borrows", func(t *testing.T) {
		mockStore.EXPECT().
			GetPatronBorrowedBooks(ctx, "123456").
			Return(nil, nil)
		mockStore.EXPECT().
			GetPatronBorrowCount(ctx, "123456").
			Return(0, nil)
		mockStore.EXPECT().
			GetPatronBorrowHistory(ctx, "123456").
			Return(nil, nil)

		report, err := svc.PatronStatus(ctx, "123456")

		require.NoError(t, err)
		assert.Equal(t, 0, report.CurrentBorrowCount)
		assert.Equal(t, 0.0, report.TotalLateFees)
		assert.NotNil(t, report.CurrentBorrows)
		assert.Empty(t, report.CurrentBorrows)
		assert.NotNil(t, report.History)
		assert.Empty(t, report.History)
	})

	t.Run("history newest first, straight from the store", func(t *testing.T) {
		now := time.Now()
		history := []catalog.HistoryEntry{
			{BookID: 2, Title: "Dune", ReturnDate: now.AddDate(0, 0, -1)},
			{BookID: 1, Title: "Clean Code", ReturnDate: now.AddDate(0, 0, -30)},
		}
		mockStore.EXPECT().
			GetPatronBorrowedBooks(ctx, "123456").
			Return(nil, nil)
		mockStore.EXPECT().
			GetPatronBorrowCount(ctx, "123456").
			Return(0, nil)
		mockStore.EXPECT().
			GetPatronBorrowHistory(ctx, "123456").
			Return(history, nil)

		report, err := svc.PatronStatus(ctx, "123456")

		require.NoError(t, err)
		require.Len(t, report.History, 2)
		assert.Equal(t, "Dune", report.History[0].Title)
		assert.True(t, report.History[0].ReturnDate.After(report.History[1].ReturnDate))
	})

	t.Run("invalid patron id - store never touched", func(t *testing.T) {
		_, err := svc.PatronStatus(ctx, "12345")

		assert.ErrorIs(t, err, ErrInvalidPatronID)
	})
}
