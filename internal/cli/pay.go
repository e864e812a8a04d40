package cli

import (
	"context"
	"os"
	"strings"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/ledger"
	"github.com/civicpay/civicpay/internal/models"
	"github.com/civicpay/civicpay/internal/views"
)

var paymentTypes = []models.PaymentType{
	models.PaymentTypeHouseRent,
	models.PaymentTypePropertyTax,
	models.PaymentTypeWaterCharges,
	models.PaymentTypeSewageTax,
	models.PaymentTypeOther,
}

var paymentPeriods = []string{"monthly", "quarterly", "yearly"}

var paymentMethods = []models.PaymentMethod{
	models.PaymentMethodUPI,
	models.PaymentMethodCard,
	models.PaymentMethodNetbanking,
}

// Pay runs the payment form: charge type, amount, billing period, optional
// notes and payment method. The charge is sent through the gateway and, on
// confirmation, recorded in the ledger. A receipt is printed on success.
func (a *App) Pay(ctx context.Context) error {
	user := a.sessions.CurrentUser()
	if user == nil {
		printlnFn(errorStyle.Render("Please log in first"))
		return common.ErrorNoActiveSession
	}

	printlnFn(headingStyle.Render("Pay a civic charge"))

	typeLabels := make([]string, len(paymentTypes))
	for i, t := range paymentTypes {
		typeLabels[i] = views.PaymentTypeLabel(t)
	}
	typeIdx, err := GetChoice(a.reader, "What are you paying for?", typeLabels, os.Stdout)
	if err != nil {
		return err
	}

	amount, err := GetAmount(a.reader, "Amount (₹)", os.Stdout)
	if err != nil {
		return err
	}

	periodIdx, err := GetChoice(a.reader, "Billing period", paymentPeriods, os.Stdout)
	if err != nil {
		return err
	}

	notes, err := getSimpleText(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	methodLabels := make([]string, len(paymentMethods))
	for i, m := range paymentMethods {
		methodLabels[i] = strings.ToUpper(string(m))
	}
	methodIdx, err := GetChoice(a.reader, "Payment method", methodLabels, os.Stdout)
	if err != nil {
		return err
	}

	printlnFn("Paying " + amountStyle.Render(views.FormatCurrency(amount)) +
		" towards " + typeLabels[typeIdx] + " for property " + user.PropertyID)

	confirm, err := getSimpleText(a.reader, "Confirm payment? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
		printlnFn("Payment cancelled")
		return nil
	}

	printlnFn("Processing payment...")
	if err := a.gateway.Process(ctx, paymentMethods[methodIdx], amount); err != nil {
		printlnFn(errorStyle.Render("Payment failed: " + err.Error()))
		return err
	}

	payment, err := a.payments.Append(ctx, ledger.Draft{
		PropertyID: user.PropertyID,
		Type:       paymentTypes[typeIdx],
		Amount:     amount,
		Period:     paymentPeriods[periodIdx],
		Notes:      notes,
		Method:     paymentMethods[methodIdx],
	})
	if err != nil {
		printlnFn(errorStyle.Render("Could not record payment: " + err.Error()))
		return err
	}

	printlnFn(successStyle.Render("Payment successful!"))
	printlnFn(renderReceipt(payment))
	return nil
}
