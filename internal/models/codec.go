package models

import (
	"encoding/json"
	"fmt"
)

// EncodeUser serializes a user to the stored JSON representation.
func EncodeUser(u *User) ([]byte, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}
	return b, nil
}

// DecodeUser deserializes a stored user blob. An absent (nil or empty) blob
// decodes to nil.
func DecodeUser(data []byte) (*User, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &u, nil
}

// EncodePayments serializes a payment list to the stored JSON representation.
// The stored order is the in-memory order (most-recent-first).
func EncodePayments(payments []Payment) ([]byte, error) {
	if payments == nil {
		payments = []Payment{}
	}
	b, err := json.Marshal(payments)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payments: %w", err)
	}
	return b, nil
}

// DecodePayments deserializes a stored payment list. An absent (nil or empty)
// blob decodes to an empty list.
func DecodePayments(data []byte) ([]Payment, error) {
	if len(data) == 0 {
		return []Payment{}, nil
	}
	var payments []Payment
	if err := json.Unmarshal(data, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	if payments == nil {
		payments = []Payment{}
	}
	return payments, nil
}
