// Package gateway provides the payment-processing collaborator. The real
// corporation gateway does not exist in this app: processing is a fixed
// delay that always succeeds for a known payment method.
package gateway

import (
	"context"
	"time"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/models"
)

// Gateway accepts a payment for processing and reports success or failure.
type Gateway interface {
	Process(ctx context.Context, method models.PaymentMethod, amount float64) error
}

// Simulated is a Gateway that waits a fixed delay and succeeds. The wait
// honors context cancellation so a shutdown does not hang on an in-flight
// payment.
type Simulated struct {
	Delay time.Duration
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay}
}

func (g *Simulated) Process(ctx context.Context, method models.PaymentMethod, amount float64) error {
	if !method.Valid() {
		return common.ErrorUnknownPaymentMethod
	}
	if amount <= 0 {
		return common.ErrorInvalidAmount
	}

	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
