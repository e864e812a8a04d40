package cli

import (
	"context"
	"errors"
	"time"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/views"
)

// History prints the payment history, most recent first, grouped by month.
// An optional args[0] narrows the listing to a time window: this_month,
// last_3_months or this_year. Without an argument all payments are shown.
func (a *App) History(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn(errorStyle.Render("Please log in first"))
		return common.ErrorNoActiveSession
	}

	window := views.WindowAll
	if len(args) > 0 {
		w, err := views.ParseWindow(args[0])
		if err != nil {
			if errors.Is(err, views.ErrUnknownWindow) {
				printlnFn("Unknown filter:", args[0])
				printlnFn("Filters: this_month, last_3_months, this_year")
			}
			return err
		}
		window = w
	}

	filtered := views.Filter(a.payments.All(), window, time.Now())

	printlnFn(titleStyle.Render("Payment History: " + window.Label()))
	if len(filtered) == 0 {
		printlnFn("No payments in this period")
		return nil
	}

	for _, group := range views.GroupByMonth(filtered) {
		printlnFn(headingStyle.Render(group.Label))
		for _, p := range group.Payments {
			printlnFn("  " + views.FormatDate(p.CreatedAt.Local()) + "  " +
				amountStyle.Render(views.FormatCurrency(p.Amount)) + "  " +
				views.PaymentTypeLabel(p.Type) + "  " + p.TransactionID)
		}
	}
	return nil
}
