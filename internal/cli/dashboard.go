package cli

import (
	"context"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/views"
)

// Home prints the dashboard: the property card, the pending amount, and the
// most recent payments.
func (a *App) Home(ctx context.Context) error {
	user := a.sessions.CurrentUser()
	if user == nil {
		printlnFn(errorStyle.Render("Please log in first"))
		return common.ErrorNoActiveSession
	}

	printlnFn(titleStyle.Render("Hello, " + user.FullName))
	printlnFn(labelStyle.Render("Property ID") + user.PropertyID)
	printlnFn(labelStyle.Render("Address") + user.Address)
	printlnFn(labelStyle.Render("Pending dues") + amountStyle.Render(views.FormatCurrency(a.payments.PendingTotal())))

	recent := a.payments.Recent(3)
	if len(recent) == 0 {
		printlnFn("No payments yet. Type 'pay' to make your first payment.")
		return nil
	}

	printlnFn(headingStyle.Render("Recent payments"))
	for _, p := range recent {
		printlnFn("  " + views.FormatDate(p.CreatedAt.Local()) + "  " +
			amountStyle.Render(views.FormatCurrency(p.Amount)) + "  " +
			views.PaymentTypeLabel(p.Type) + "  " + p.TransactionID)
	}
	return nil
}
