package views

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/civicpay/civicpay/internal/models"
)

// Receipts and dashboards render amounts the way the corporation bills them:
// Indian-English digit grouping, rupee symbol, no paise.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders an amount as a zero-decimal INR string, rounding to
// the nearest rupee.
func FormatCurrency(amount float64) string {
	return inr.Sprintf("₹%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// FormatDate renders a short date, e.g. "2 Apr 2025".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// FormatDateTime renders a date with time, e.g. "2 Apr 2025, 09:30".
func FormatDateTime(t time.Time) string {
	return t.Format("2 Jan 2006, 15:04")
}

var paymentTypeLabels = map[models.PaymentType]string{
	models.PaymentTypeHouseRent:    "House Rent",
	models.PaymentTypePropertyTax:  "Property Tax",
	models.PaymentTypeWaterCharges: "Water Charges",
	models.PaymentTypeSewageTax:    "Sewage Tax",
	models.PaymentTypeOther:        "Other",
}

// PaymentTypeLabel returns the display string for a payment type. Unknown
// values fall back to "Other".
func PaymentTypeLabel(t models.PaymentType) string {
	if label, ok := paymentTypeLabels[t]; ok {
		return label
	}
	return "Other"
}
