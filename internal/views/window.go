// Package views computes read-only projections of a payment sequence:
// time-window filtering, month grouping, and display formatting. Everything
// here is a pure function over an immutable snapshot; nothing is persisted.
package views

import (
	"errors"
	"time"

	"github.com/civicpay/civicpay/internal/models"
)

// Window selects a time range of the payment history relative to "now".
type Window string

const (
	WindowAll         Window = "all"
	WindowThisMonth   Window = "this_month"
	WindowLast3Months Window = "last_3_months"
	WindowThisYear    Window = "this_year"
)

var ErrUnknownWindow = errors.New("unknown history filter")

// ParseWindow maps a filter keyword to a Window. An empty string selects
// WindowAll.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case "", WindowAll:
		return WindowAll, nil
	case WindowThisMonth:
		return WindowThisMonth, nil
	case WindowLast3Months:
		return WindowLast3Months, nil
	case WindowThisYear:
		return WindowThisYear, nil
	}
	return "", ErrUnknownWindow
}

// Label returns the display name shown for the filter.
func (w Window) Label() string {
	switch w {
	case WindowThisMonth:
		return "This Month"
	case WindowLast3Months:
		return "Last 3 Months"
	case WindowThisYear:
		return "This Year"
	default:
		return "All"
	}
}

// Windows lists the selectable filters in display order.
func Windows() []Window {
	return []Window{WindowAll, WindowThisMonth, WindowLast3Months, WindowThisYear}
}

// Filter retains the payments falling inside w relative to now, preserving
// the input order.
//
// Semantics per window:
//   - this_month:    same calendar month and year as now
//   - last_3_months: createdAt >= now minus three calendar months (month
//     subtraction with natural year rollover)
//   - this_year:     same calendar year as now
//   - all:           everything
func Filter(payments []models.Payment, w Window, now time.Time) []models.Payment {
	if w == WindowAll || w == "" {
		out := make([]models.Payment, len(payments))
		copy(out, payments)
		return out
	}

	threeMonthsAgo := now.AddDate(0, -3, 0)

	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		switch w {
		case WindowThisMonth:
			if p.CreatedAt.Month() == now.Month() && p.CreatedAt.Year() == now.Year() {
				out = append(out, p)
			}
		case WindowLast3Months:
			if !p.CreatedAt.Before(threeMonthsAgo) {
				out = append(out, p)
			}
		case WindowThisYear:
			if p.CreatedAt.Year() == now.Year() {
				out = append(out, p)
			}
		}
	}
	return out
}
