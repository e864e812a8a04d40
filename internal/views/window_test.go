package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicpay/civicpay/internal/models"
)

func paymentAt(id string, at time.Time) models.Payment {
	return models.Payment{ID: id, Type: models.PaymentTypeOther, Amount: 100, CreatedAt: at}
}

func ids(payments []models.Payment) []string {
	out := make([]string, len(payments))
	for i, p := range payments {
		out[i] = p.ID
	}
	return out
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    Window
		wantErr bool
	}{
		{in: "", want: WindowAll},
		{in: "all", want: WindowAll},
		{in: "this_month", want: WindowThisMonth},
		{in: "last_3_months", want: WindowLast3Months},
		{in: "this_year", want: WindowThisYear},
		{in: "bogus", wantErr: true},
	}
	for _, tt := range tests {
		w, err := ParseWindow(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrUnknownWindow, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, w)
	}
}

func TestFilter_All_PreservesEverything(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	input := []models.Payment{
		paymentAt("a", now),
		paymentAt("b", now.AddDate(-2, 0, 0)),
	}

	got := Filter(input, WindowAll, now)
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilter_ThisMonth_Boundaries(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	firstOfMonth := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	endOfPrevMonth := time.Date(2025, 3, 28, 23, 59, 0, 0, time.UTC)
	sameMonthLastYear := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	input := []models.Payment{
		paymentAt("first", firstOfMonth),
		paymentAt("prev", endOfPrevMonth),
		paymentAt("lastyear", sameMonthLastYear),
	}

	got := Filter(input, WindowThisMonth, now)
	assert.Equal(t, []string{"first"}, ids(got))
}

func TestFilter_LastThreeMonths_NaturalRollover(t *testing.T) {
	// Three months before mid-February lands in mid-November of the prior year.
	now := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)

	input := []models.Payment{
		paymentAt("in-window", time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)),
		paymentAt("on-threshold", time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)),
		paymentAt("too-old", time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)),
	}

	got := Filter(input, WindowLast3Months, now)
	assert.Equal(t, []string{"in-window", "on-threshold"}, ids(got))
}

func TestFilter_ThisYear(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	input := []models.Payment{
		paymentAt("jan", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		paymentAt("dec-prev", time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)),
	}

	got := Filter(input, WindowThisYear, now)
	assert.Equal(t, []string{"jan"}, ids(got))
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	input := []models.Payment{
		paymentAt("newest", time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)),
		paymentAt("middle", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)),
		paymentAt("oldest", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := Filter(input, WindowThisMonth, now)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, ids(got))
}
