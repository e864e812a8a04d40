package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/models"
)

func TestProcess_SucceedsAfterDelay(t *testing.T) {
	g := NewSimulated(10 * time.Millisecond)

	start := time.Now()
	err := g.Process(context.Background(), models.PaymentMethodUPI, 500)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestProcess_UnknownMethod(t *testing.T) {
	g := NewSimulated(time.Millisecond)

	err := g.Process(context.Background(), models.PaymentMethod("cheque"), 500)
	require.ErrorIs(t, err, common.ErrorUnknownPaymentMethod)
}

func TestProcess_NonPositiveAmount(t *testing.T) {
	g := NewSimulated(time.Millisecond)

	for _, amount := range []float64{0, -50} {
		err := g.Process(context.Background(), models.PaymentMethodCard, amount)
		require.ErrorIs(t, err, common.ErrorInvalidAmount)
	}
}

func TestProcess_HonorsCancellation(t *testing.T) {
	g := NewSimulated(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := g.Process(ctx, models.PaymentMethodNetbanking, 500)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
