package views

import (
	"github.com/civicpay/civicpay/internal/models"
)

// MonthGroup is one history section: a "January 2006" style label and the
// payments that fall in that month, in input order.
type MonthGroup struct {
	Label    string
	Payments []models.Payment
}

// GroupByMonth partitions payments into month-labelled groups. Group order
// follows the first occurrence of each month in the input (not calendar
// order), and each group inherits the input's internal order.
func GroupByMonth(payments []models.Payment) []MonthGroup {
	groups := make([]MonthGroup, 0)
	index := make(map[string]int)

	for _, p := range payments {
		label := p.CreatedAt.Format("January 2006")
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, MonthGroup{Label: label})
		}
		groups[i].Payments = append(groups[i].Payments, p)
	}
	return groups
}
