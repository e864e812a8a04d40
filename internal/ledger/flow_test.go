package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicpay/civicpay/internal/models"
	"github.com/civicpay/civicpay/internal/session"
	"github.com/civicpay/civicpay/internal/storage"
	"github.com/civicpay/civicpay/internal/views"
)

// Register, pay a water bill, inspect the dashboard views, log out: the full
// path a resident takes through the app, against real managers and a real
// store.
func TestFlow_RegisterPayAndLogout(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	sessions := session.NewManager(store, testLogger())
	sessions.Initialize(ctx)

	user, err := sessions.Register(ctx, session.RegisterParams{
		FullName:   "Asha Verma",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		PropertyID: "PID-1",
		Address:    "12 Mall Road, Dharamshala",
	})
	require.NoError(t, err)

	payments := NewManager(store, sessions, testLogger())
	payments.Load(ctx)

	paid, err := payments.Append(ctx, Draft{
		PropertyID: user.PropertyID,
		Type:       models.PaymentTypeWaterCharges,
		Amount:     500,
		Period:     "monthly",
		Method:     models.PaymentMethodUPI,
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, paid.UserID)

	assert.Equal(t, 0.0, payments.PendingTotal())

	recent := payments.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, 500.0, recent[0].Amount)
	assert.Equal(t, "Water Charges", views.PaymentTypeLabel(recent[0].Type))
	assert.Equal(t, "₹500", views.FormatCurrency(recent[0].Amount))

	require.NoError(t, sessions.Logout(ctx))
	payments.Load(ctx)

	assert.False(t, sessions.IsAuthenticated())
	assert.Empty(t, payments.Recent(1))
	for _, key := range []string{storage.KeyUser, storage.KeyPayments, storage.KeyAuthToken} {
		v, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, v, "key %s must be cleared after logout", key)
	}
}
