package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/catalog"
	"libraryapi/internal/catalog/mocks"
	"libraryapi/internal/lending"
	"libraryapi/internal/payment"
	paymentmocks "libraryapi/internal/payment/mocks"
	"libraryapi/internal/testutil"
)

func newPaymentFixture(t *testing.T) (*mocks.MockStore, *paymentmocks.MockGateway, *PaymentHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)
	mockGateway := paymentmocks.NewMockGateway(ctrl)
	svc := lending.NewService(mockStore, mockGateway)
	return mockStore, mockGateway, NewPaymentHandler(svc)
}

func TestPaymentHandler_Pay(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockStore, mockGateway, handler := newPaymentFixture(t)
		mockStore.EXPECT().
			GetPatronBorrowedBooks(gomock.Any(), "123456").
			Return([]catalog.Loan{testutil.OpenLoan(1, "Test Book Title", 8)}, nil)
		mockStore.EXPECT().
			GetBookByID(gomock.Any(), int64(1)).
			Return(testutil.TestBook, nil)
		mockGateway.EXPECT().
			ProcessPayment(gomock.Any(), "123456", 4.50, "Late fees for 'Test Book Title'").
			Return(payment.Result{
				Success:       true,
				TransactionID: "txn_123456_1",
				Message:       "Payment of $4.50 processed successfully",
			}, nil)

		w := httptest.NewRecorder()
		handler.Pay(w, testutil.NewRequest(http.MethodPost, "/payments", PayFeesRequest{
			PatronID: "123456",
			BookID:   1,
		}))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body["message"], "Payment successful")
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "txn_123456_1", data["transaction_id"])
	})

	t.Run("declined", func(t *testing.T) {
		mockStore, mockGateway, handler := newPaymentFixture(t)
		mockStore.EXPECT().
			GetPatronBorrowedBooks(gomock.Any(), "123456").
			Return([]catalog.Loan{testutil.OpenLoan(1, "Test Book Title", 8)}, nil)
		mockStore.EXPECT().
			GetBookByID(gomock.Any(), int64(1)).
			Return(testutil.TestBook, nil)
		mockGateway.EXPECT().
			ProcessPayment(gomock.Any(), "123456", 4.50, "Late fees for 'Test Book Title'").
			Return(payment.Result{Success: false, Message: "Card declined"}, nil)

		w := httptest.NewRecorder()
		handler.Pay(w, testutil.NewRequest(http.MethodPost, "/payments", PayFeesRequest{
			PatronID: "123456",
			BookID:   1,
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusPaymentRequired, resp.Code)
		errBody := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "Payment failed: Card declined", errBody["message"])
	})

	t.Run("no fees to pay - gateway untouched", func(t *testing.T) {
		mockStore, _, handler := newPaymentFixture(t)
		mockStore.EXPECT().
			GetPatronBorrowedBooks(gomock.Any(), "123456").
			Return(nil, nil)

		w := httptest.NewRecorder()
		handler.Pay(w, testutil.NewRequest(http.MethodPost, "/payments", PayFeesRequest{
			PatronID: "123456",
			BookID:   1,
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusPaymentRequired, resp.Code)
		errBody := resp.Body["error"].(map[string]interface{})
		assert.Contains(t, errBody["message"], "No late fees to pay")
	})
}

func TestPaymentHandler_Refund(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, mockGateway, handler := newPaymentFixture(t)
		mockGateway.EXPECT().
			RefundPayment(gomock.Any(), "txn_123456_1", 5.0).
			Return(payment.RefundResult{Success: true, Message: "Refund of $5.00 processed successfully"}, nil)

		w := httptest.NewRecorder()
		handler.Refund(w, testutil.NewRequest(http.MethodPost, "/refunds", RefundRequest{
			TransactionID: "txn_123456_1",
			Amount:        5.0,
		}))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body["message"], "Refund of $5.00 processed successfully")
	})

	t.Run("amount above the fee cap - gateway untouched", func(t *testing.T) {
		_, _, handler := newPaymentFixture(t)

		w := httptest.NewRecorder()
		handler.Refund(w, testutil.NewRequest(http.MethodPost, "/refunds", RefundRequest{
			TransactionID: "txn_valid_123",
			Amount:        20.0,
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		errBody := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "Refund amount exceeds maximum late fee.", errBody["message"])
	})

	t.Run("unrecognized transaction id - gateway untouched", func(t *testing.T) {
		_, _, handler := newPaymentFixture(t)

		w := httptest.NewRecorder()
		handler.Refund(w, testutil.NewRequest(http.MethodPost, "/refunds", RefundRequest{
			TransactionID: "abc123",
			Amount:        5.0,
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		errBody := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "Invalid transaction ID.", errBody["message"])
	})
}
