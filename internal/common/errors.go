// Package common defines shared constants and sentinel errors used across
// CivicPay components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/lookup errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrorNoActiveSession = errors.New("no active session")

	// Payment validation errors.
	ErrorInvalidAmount        = errors.New("amount must be positive")
	ErrorInvalidPaymentType   = errors.New("invalid payment type")
	ErrorUnknownPaymentMethod = errors.New("unknown payment method")

	// Registration errors.
	ErrorEmailRequired = errors.New("email is required")
)
