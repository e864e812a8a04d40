package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/models"
	"github.com/civicpay/civicpay/internal/views"
)

// Receipt looks up a payment by its transaction reference and prints its
// receipt. args[0] is the reference, as printed on the original receipt.
func (a *App) Receipt(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn(errorStyle.Render("Please log in first"))
		return common.ErrorNoActiveSession
	}

	payment, err := a.payments.FindByTransactionID(args[0])
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn(errorStyle.Render("No payment found for reference " + args[0]))
		} else {
			printlnFn(errorStyle.Render("Receipt lookup failed: " + err.Error()))
		}
		return err
	}

	printlnFn(renderReceipt(payment))
	return nil
}

func renderReceipt(p *models.Payment) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Payment Receipt") + "\n\n")
	b.WriteString(labelStyle.Render("Reference") + p.TransactionID + "\n")
	b.WriteString(labelStyle.Render("Paid to") + "Municipal Corporation of Dharamshala\n")
	b.WriteString(labelStyle.Render("Charge") + views.PaymentTypeLabel(p.Type) + "\n")
	b.WriteString(labelStyle.Render("Property") + p.PropertyID + "\n")
	b.WriteString(labelStyle.Render("Amount") + amountStyle.Render(views.FormatCurrency(p.Amount)) + "\n")
	b.WriteString(labelStyle.Render("Period") + p.Period + "\n")
	b.WriteString(labelStyle.Render("Method") + strings.ToUpper(string(p.PaymentMethod)) + "\n")
	b.WriteString(labelStyle.Render("Status") + string(p.Status) + "\n")
	b.WriteString(labelStyle.Render("Date") + views.FormatDateTime(p.CreatedAt.Local()))
	if p.Notes != "" {
		b.WriteString("\n" + labelStyle.Render("Notes") + p.Notes)
	}
	return receiptStyle.Render(b.String())
}
