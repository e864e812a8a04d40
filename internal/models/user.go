// Package models defines the persisted CivicPay entities and their JSON
// encoding, plus the identifier generators used when creating them.
package models

import "time"

// User represents the single registered resident/ratepayer on this device.
// At most one User is persisted at a time.
type User struct {
	// ID is an opaque unique identifier, immutable once created.
	ID string `json:"id"`

	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PropertyID string `json:"propertyId"`
	Address    string `json:"address"`

	// CreatedAt is the registration timestamp, immutable once created.
	CreatedAt time.Time `json:"createdAt"`

	// ProfileImage is an optional image URI.
	ProfileImage *string `json:"profileImage,omitempty"`
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.ProfileImage != nil {
		img := *u.ProfileImage
		c.ProfileImage = &img
	}
	return &c
}
