package models

import "time"

// PaymentType classifies what a payment was for.
type PaymentType string

const (
	PaymentTypeHouseRent    PaymentType = "house_rent"
	PaymentTypePropertyTax  PaymentType = "property_tax"
	PaymentTypeWaterCharges PaymentType = "water_charges"
	PaymentTypeSewageTax    PaymentType = "sewage_tax"
	PaymentTypeOther        PaymentType = "other"
)

// Valid reports whether t is one of the known payment types.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeHouseRent, PaymentTypePropertyTax, PaymentTypeWaterCharges,
		PaymentTypeSewageTax, PaymentTypeOther:
		return true
	}
	return false
}

// PaymentStatus is the processing state of a payment. The current flow always
// records payments as completed; pending and failed exist for forward
// compatibility of the persisted format.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentMethod is the instrument selected at checkout.
type PaymentMethod string

const (
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCard, PaymentMethodNetbanking:
		return true
	}
	return false
}

// Payment represents one completed (simulated) transaction. Payments are
// immutable after creation: no update or delete path exists, corrections
// would be modeled as compensating entries.
type Payment struct {
	// ID is an opaque unique identifier.
	ID string `json:"id"`

	// UserID is the owning session's user id.
	UserID string `json:"userId"`

	PropertyID string      `json:"propertyId"`
	Type       PaymentType `json:"type"`

	// Amount is a positive decimal in rupees.
	Amount float64 `json:"amount"`

	// Period is free-form; the payment form offers monthly/quarterly/yearly.
	Period string `json:"period"`

	Notes  string        `json:"notes"`
	Status PaymentStatus `json:"status"`

	// TransactionID is the human-readable receipt reference, distinct from ID.
	TransactionID string `json:"transactionId"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
}
