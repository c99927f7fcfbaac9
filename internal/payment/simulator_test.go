package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatorProcessPayment(t *testing.T) {
	gateway := NewSimulator()
	ctx := context.Background()

	t.Run("success - well-formed charge", func(t *testing.T) {
		res, err := gateway.ProcessPayment(ctx, "123456", 10.0, "Late fees")

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, strings.HasPrefix(res.TransactionID, "txn_123456_"))
		assert.Contains(t, res.Message, "Payment of $10.00 processed successfully")
	})

	t.Run("transaction ids are sequential per gateway", func(t *testing.T) {
		g := NewSimulator()
		first, _ := g.ProcessPayment(ctx, "123456", 1.0, "fee")
		second, _ := g.ProcessPayment(ctx, "123456", 1.0, "fee")

		assert.Equal(t, "txn_123456_1", first.TransactionID)
		assert.Equal(t, "txn_123456_2", second.TransactionID)
	})

	t.Run("declined - empty patron id", func(t *testing.T) {
		res, err := gateway.ProcessPayment(ctx, "", 10.0, "Late fees")

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid patron ID", res.Message)
		assert.Empty(t, res.TransactionID)
	})

	t.Run("declined - non-positive amount", func(t *testing.T) {
		res, err := gateway.ProcessPayment(ctx, "123456", 0, "Late fees")

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid payment amount", res.Message)
	})
}

func TestSimulatorRefundPayment(t *testing.T) {
	gateway := NewSimulator()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		res, err := gateway.RefundPayment(ctx, "txn_123456_1", 5.0)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Contains(t, res.Message, "Refund of $5.00 processed successfully")
	})

	t.Run("invalid - empty transaction id", func(t *testing.T) {
		res, err := gateway.RefundPayment(ctx, "", 5.0)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid transaction ID", res.Message)
	})

	t.Run("invalid - non-positive amount", func(t *testing.T) {
		res, err := gateway.RefundPayment(ctx, "txn_123456_1", -1.0)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid refund amount", res.Message)
	})
}
