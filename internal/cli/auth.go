package cli

import (
	"context"
	"errors"
	"os"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the resident profile and creates the account. On
// success the new account becomes the active session immediately.
//
// The password is collected to mirror the registration form but is not
// stored; it is securely wiped before returning. At most one account exists
// on a device, so registering again replaces the previous resident.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}
	propertyID, err := getSimpleText(a.reader, "Property ID", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.sessions.Register(ctx, session.RegisterParams{
		FullName:   fullName,
		Email:      email,
		Phone:      phone,
		PropertyID: propertyID,
		Address:    address,
	})
	if err != nil {
		if errors.Is(err, common.ErrorEmailRequired) {
			printlnFn(errorStyle.Render("Email is required"))
			return err
		}
		printlnFn(errorStyle.Render("Registration failed: " + err.Error()))
		return err
	}

	a.payments.Load(ctx)
	printlnFn(successStyle.Render("Welcome, " + user.FullName + "!"))
	return nil
}

// Login prompts for credentials and tries to start a session for the
// registered resident. The email match is case-insensitive; there is no
// server to verify the password against, so any password is accepted for
// the registered email.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.sessions.Login(ctx, email, string(password)) {
		printlnFn(errorStyle.Render("Login failed: no account registered for that email"))
		return nil
	}

	a.payments.Load(ctx)
	printlnFn(successStyle.Render("Logged in"))
	return nil
}

// Logout ends the session and removes the persisted account, payment
// history, and token from the local store.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		printlnFn(errorStyle.Render("Logout failed: " + err.Error()))
		return err
	}
	a.payments.Load(ctx)
	printlnFn("Logged out")
	return nil
}
