package cli

import (
	"context"
	"os"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/session"
	"github.com/civicpay/civicpay/internal/views"
)

// Profile prints the resident profile for the active session.
func (a *App) Profile(ctx context.Context) error {
	user := a.sessions.CurrentUser()
	if user == nil {
		printlnFn(errorStyle.Render("Please log in first"))
		return common.ErrorNoActiveSession
	}

	printlnFn(titleStyle.Render("Resident Profile"))
	printlnFn(labelStyle.Render("Name") + user.FullName)
	printlnFn(labelStyle.Render("Email") + user.Email)
	printlnFn(labelStyle.Render("Phone") + user.Phone)
	printlnFn(labelStyle.Render("Property ID") + user.PropertyID)
	printlnFn(labelStyle.Render("Address") + user.Address)
	printlnFn(labelStyle.Render("Member since") + views.FormatDate(user.CreatedAt.Local()))
	return nil
}

// EditProfile prompts for updated profile fields. Pressing Enter on a field
// keeps its current value. The account id and registration date never change.
func (a *App) EditProfile(ctx context.Context) error {
	user := a.sessions.CurrentUser()
	if user == nil {
		printlnFn(errorStyle.Render("Please log in first"))
		return common.ErrorNoActiveSession
	}

	printlnFn(headingStyle.Render("Edit profile (press Enter to keep the current value)"))

	upd := session.UserUpdate{}
	fields := []struct {
		prompt  string
		current string
		target  **string
	}{
		{"Full name", user.FullName, &upd.FullName},
		{"Email", user.Email, &upd.Email},
		{"Phone", user.Phone, &upd.Phone},
		{"Property ID", user.PropertyID, &upd.PropertyID},
		{"Address", user.Address, &upd.Address},
	}
	for _, f := range fields {
		answer, err := getSimpleText(a.reader, f.prompt+" ["+f.current+"]", os.Stdout)
		if err != nil {
			return err
		}
		if answer != "" {
			v := answer
			*f.target = &v
		}
	}

	image, err := getSimpleText(a.reader, "Profile image URI (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if image != "" {
		upd.ProfileImage = &image
	}

	updated, err := a.sessions.UpdateUser(ctx, upd)
	if err != nil {
		printlnFn(errorStyle.Render("Profile update failed: " + err.Error()))
		return err
	}

	printlnFn(successStyle.Render("Profile updated for " + updated.FullName))
	return nil
}
